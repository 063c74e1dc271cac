package metrics

// Metrics defines the interface for collecting roster metrics.
// This decouples the store from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPlayersAdded()
	IncDuplicatesRejected()
	IncPlayersUpdated()
	IncPlayersRemoved()
	IncNotFound()
	IncStorageErrors()
	ObserveOperationDuration(operation string, duration float64)
	SetRosterSize(size int)
}
