package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	playersAdded       int
	duplicatesRejected int
	playersUpdated     int
	playersRemoved     int
	notFound           int
	storageErrors      int
	operations         map[string]int
	rosterSize         int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		operations: make(map[string]int),
	}
}

func (m *Mock) IncPlayersAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersAdded++
}

func (m *Mock) IncDuplicatesRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duplicatesRejected++
}

func (m *Mock) IncPlayersUpdated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersUpdated++
}

func (m *Mock) IncPlayersRemoved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersRemoved++
}

func (m *Mock) IncNotFound() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notFound++
}

func (m *Mock) IncStorageErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storageErrors++
}

func (m *Mock) ObserveOperationDuration(operation string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations[operation]++
}

func (m *Mock) SetRosterSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosterSize = size
}

// PlayersAdded returns the number of times IncPlayersAdded was called.
func (m *Mock) PlayersAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersAdded
}

// DuplicatesRejected returns the number of times IncDuplicatesRejected was called.
func (m *Mock) DuplicatesRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duplicatesRejected
}

// PlayersUpdated returns the number of times IncPlayersUpdated was called.
func (m *Mock) PlayersUpdated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersUpdated
}

// PlayersRemoved returns the number of times IncPlayersRemoved was called.
func (m *Mock) PlayersRemoved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersRemoved
}

// NotFound returns the number of times IncNotFound was called.
func (m *Mock) NotFound() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notFound
}

// StorageErrors returns the number of times IncStorageErrors was called.
func (m *Mock) StorageErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storageErrors
}

// Operations returns how many durations were observed for the operation.
func (m *Mock) Operations(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.operations[operation]
}

// RosterSize returns the last value passed to SetRosterSize.
func (m *Mock) RosterSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rosterSize
}
