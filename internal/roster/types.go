package roster

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/nhl-tracker/internal/metrics"
)

// store handles all database operations for the roster.
type store struct {
	db       *sql.DB
	teardown func()
	metrics  metrics.Metrics
	mu       sync.RWMutex
	closed   bool
}

const selectColumns = "name, team, goals, assists, plus_minus"
