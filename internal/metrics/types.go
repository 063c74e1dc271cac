package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PlayersAdded       prometheus.Counter
	DuplicatesRejected prometheus.Counter
	PlayersUpdated     prometheus.Counter
	PlayersRemoved     prometheus.Counter
	NotFound           prometheus.Counter
	StorageErrors      prometheus.Counter
	OperationDuration  *prometheus.HistogramVec
	RosterSize         prometheus.Gauge

	gatherer prometheus.Gatherer
}
