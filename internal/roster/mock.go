package roster

import (
	"sync"

	"github.com/mauv0809/nhl-tracker/internal/player"
)

// MockStore is a mock implementation of the RosterStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddFunc        func(p player.Player) bool
	FindByNameFunc func(name string) (player.Player, bool)
	GetAllFunc     func() []player.Player
	UpdateFunc     func(p player.Player) bool
	RemoveFunc     func(name string) bool
	CountFunc      func() int

	// Call records
	AddCalls        []player.Player
	FindByNameCalls []string
	GetAllCalls     int
	UpdateCalls     []player.Player
	RemoveCalls     []string
	CloseCalls      int
}

var _ RosterStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Add records the call and executes the mock function if provided.
func (m *MockStore) Add(p player.Player) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, p)
	if m.AddFunc != nil {
		return m.AddFunc(p)
	}
	return true
}

// FindByName records the call and executes the mock function if provided.
func (m *MockStore) FindByName(name string) (player.Player, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByNameCalls = append(m.FindByNameCalls, name)
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(name)
	}
	return player.Player{}, false
}

// GetAll records the call and executes the mock function if provided.
func (m *MockStore) GetAll() []player.Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllCalls++
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return []player.Player{}
}

// Update records the call and executes the mock function if provided.
func (m *MockStore) Update(p player.Player) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, p)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(p)
	}
	return true
}

// Remove records the call and executes the mock function if provided.
func (m *MockStore) Remove(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, name)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return true
}

// Count executes the mock function if provided.
func (m *MockStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0
}

// Close records the call.
func (m *MockStore) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
}
