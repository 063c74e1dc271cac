package player_test

import (
	"testing"

	"github.com/mauv0809/nhl-tracker/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestPoints(t *testing.T) {
	p := player.New("Connor McDavid", "Edmonton", 35, 60, 25)
	assert.Equal(t, 95, p.Points())

	// Points follow the fields, nothing is cached.
	p.Goals = 40
	assert.Equal(t, 100, p.Points())

	p.Assists = -5
	assert.Equal(t, 35, p.Points())
}

func TestSameName(t *testing.T) {
	p := player.New("Connor McDavid", "Edmonton", 35, 60, 25)

	assert.True(t, p.SameName("connor mcdavid"))
	assert.True(t, p.SameName("CONNOR MCDAVID"))
	assert.False(t, p.SameName("Connor"))
	assert.Equal(t, "connor mcdavid", p.Key())
}

func TestString(t *testing.T) {
	p := player.New("Sidney Crosby", "Pittsburgh", 30, 50, -4)
	want := "Sidney Crosby        Pittsburgh      Goals: 30  Assists: 50  Points: 80  +/-: -4 "
	assert.Equal(t, want, p.String())
}

func TestSerializedFieldNames(t *testing.T) {
	p := player.New("Connor McDavid", "Edmonton", 35, 60, -4)
	want := []string{"name", "team", "goals", "assists", "plus_minus"}

	out, err := yaml.Marshal(p)
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Len(t, fromYAML, len(want))
	for _, key := range want {
		assert.Contains(t, fromYAML, key)
	}

	packed, err := msgpack.Marshal(p)
	require.NoError(t, err)
	var fromMsgpack map[string]any
	require.NoError(t, msgpack.Unmarshal(packed, &fromMsgpack))
	assert.Len(t, fromMsgpack, len(want))
	for _, key := range want {
		assert.Contains(t, fromMsgpack, key)
	}
}
