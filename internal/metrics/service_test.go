package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncPlayersAdded()
	svc.IncPlayersAdded()
	svc.IncDuplicatesRejected()
	svc.IncPlayersUpdated()
	svc.IncPlayersRemoved()
	svc.IncNotFound()
	svc.IncStorageErrors()
	svc.SetRosterSize(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.PlayersAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.DuplicatesRejected))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.PlayersUpdated))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.PlayersRemoved))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.NotFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.StorageErrors))
	assert.Equal(t, 7.0, testutil.ToFloat64(svc.RosterSize))
}

func TestServiceWithoutRegistry(t *testing.T) {
	// Each call owns its registry, so building twice must not panic.
	assert.NotPanics(t, func() {
		NewService()
		NewService()
	})
}

func TestWriteTextfile(t *testing.T) {
	svc := NewService(prometheus.NewRegistry())
	svc.IncPlayersAdded()
	svc.ObserveOperationDuration("add", 0.002)

	path := filepath.Join(t.TempDir(), "nhltracker.prom")
	require.NoError(t, svc.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nhltracker_players_added_total 1")
	assert.Contains(t, string(data), `nhltracker_store_operation_duration_seconds_count{operation="add"} 1`)
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.IncPlayersAdded()
	m.IncNotFound()
	m.ObserveOperationDuration("remove", 0.1)
	m.ObserveOperationDuration("remove", 0.2)
	m.SetRosterSize(3)

	assert.Equal(t, 1, m.PlayersAdded())
	assert.Equal(t, 1, m.NotFound())
	assert.Equal(t, 2, m.Operations("remove"))
	assert.Equal(t, 0, m.Operations("add"))
	assert.Equal(t, 3, m.RosterSize())
}
