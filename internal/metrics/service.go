package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registry is provided, a fresh one is used so repeated construction never collides.
func NewService(registry ...*prometheus.Registry) *Service {
	reg := prometheus.NewRegistry()
	if len(registry) > 0 && registry[0] != nil {
		reg = registry[0]
	}

	s := &Service{
		PlayersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhltracker_players_added_total",
			Help: "The total number of players added to the roster.",
		}),
		DuplicatesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhltracker_duplicates_rejected_total",
			Help: "The total number of add requests rejected because the name already exists.",
		}),
		PlayersUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhltracker_players_updated_total",
			Help: "The total number of player rows updated.",
		}),
		PlayersRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhltracker_players_removed_total",
			Help: "The total number of player rows removed.",
		}),
		NotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhltracker_not_found_total",
			Help: "The total number of lookups, updates or removals that matched no player.",
		}),
		StorageErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhltracker_storage_errors_total",
			Help: "The total number of storage failures converted into failed operations.",
		}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nhltracker_store_operation_duration_seconds",
			Help:    "The duration of individual store operations.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		RosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nhltracker_roster_size",
			Help: "The number of players currently stored.",
		}),
		gatherer: reg,
	}

	reg.MustRegister(
		s.PlayersAdded,
		s.DuplicatesRejected,
		s.PlayersUpdated,
		s.PlayersRemoved,
		s.NotFound,
		s.StorageErrors,
		s.OperationDuration,
		s.RosterSize,
	)

	return s
}

// WriteTextfile dumps the current metrics in the text exposition format,
// ready for a node_exporter textfile collector.
func (s *Service) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

func (s *Service) IncPlayersAdded() {
	s.PlayersAdded.Inc()
}

func (s *Service) IncDuplicatesRejected() {
	s.DuplicatesRejected.Inc()
}

func (s *Service) IncPlayersUpdated() {
	s.PlayersUpdated.Inc()
}

func (s *Service) IncPlayersRemoved() {
	s.PlayersRemoved.Inc()
}

func (s *Service) IncNotFound() {
	s.NotFound.Inc()
}

func (s *Service) IncStorageErrors() {
	s.StorageErrors.Inc()
}

func (s *Service) ObserveOperationDuration(operation string, duration float64) {
	s.OperationDuration.WithLabelValues(operation).Observe(duration)
}

func (s *Service) SetRosterSize(size int) {
	s.RosterSize.Set(float64(size))
}
