package main

import (
	"testing"

	"github.com/mauv0809/nhl-tracker/internal/database"
	"github.com/mauv0809/nhl-tracker/internal/player"
	"github.com/mauv0809/nhl-tracker/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	store := roster.NewMock()
	seen := map[string]bool{}
	store.AddFunc = func(p player.Player) bool {
		if seen[p.Key()] {
			return false
		}
		seen[p.Key()] = true
		return true
	}

	added, skipped := seed(store, sampleRoster)
	assert.Equal(t, len(sampleRoster), added)
	assert.Zero(t, skipped)

	added, skipped = seed(store, sampleRoster)
	assert.Zero(t, added)
	assert.Equal(t, len(sampleRoster), skipped)
}

func TestSampleRosterHasUniqueNames(t *testing.T) {
	keys := map[string]bool{}
	for _, p := range sampleRoster {
		assert.False(t, keys[p.Key()], "duplicate sample player %q", p.Name)
		keys[p.Key()] = true
	}
}

func TestRunSeedsDatabaseOnce(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NHL_METRICS_TEXTFILE", "")
	dbPath := "seed.db"

	require.NoError(t, run(dbPath))
	require.NoError(t, run(dbPath))

	db, teardown, err := database.InitDB(dbPath, "", "")
	require.NoError(t, err)
	store := roster.New(db, teardown, nil)
	defer store.Close()
	assert.Equal(t, len(sampleRoster), store.Count())
}
