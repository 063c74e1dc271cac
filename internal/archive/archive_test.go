package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/nhl-tracker/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlayers() []player.Player {
	return []player.Player{
		player.New("Connor McDavid", "Edmonton", 35, 60, 25),
		player.New("Quinn Hughes", "Vancouver", 17, 75, 38),
		player.New("Erik Karlsson", "Pittsburgh", 11, 45, -23),
	}
}

func TestReadText(t *testing.T) {
	input := strings.Join([]string{
		"Connor McDavid, Edmonton, 35, 60, 25",
		"",
		"Only,Three,Fields",
		"Bad Number,Team,ten,1,1",
		"Too,Many,1,2,3,4",
		"Quinn Hughes,Vancouver,17,75,38",
	}, "\n")

	players, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []player.Player{
		player.New("Connor McDavid", "Edmonton", 35, 60, 25),
		player.New("Quinn Hughes", "Vancouver", 17, 75, 38),
	}, players)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, samplePlayers()))

	want := "Connor McDavid,Edmonton,35,60,25\n" +
		"Quinn Hughes,Vancouver,17,75,38\n" +
		"Erik Karlsson,Pittsburgh,11,45,-23\n"
	assert.Equal(t, want, buf.String())
}

func TestLoadMissingFile(t *testing.T) {
	for _, format := range []Format{FormatText, FormatMsgpack, FormatYAML} {
		players, err := Load(filepath.Join(t.TempDir(), "nope"), format)
		require.NoError(t, err, format)
		assert.Empty(t, players, format)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []Format{FormatText, FormatMsgpack, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "roster."+string(format))
			require.NoError(t, Save(path, format, samplePlayers()))

			players, err := Load(path, format)
			require.NoError(t, err)
			assert.Equal(t, samplePlayers(), players)
		})
	}
}

func TestSaveEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, Save(path, FormatYAML, nil))

	players, err := Load(path, FormatYAML)
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.txt")
	require.NoError(t, Save(path, FormatText, samplePlayers()))
	require.NoError(t, Save(path, FormatText, samplePlayers()[:1]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "players.txt", entries[0].Name())

	players, err := Load(path, FormatText)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "players.txt"), FormatText, samplePlayers())
	assert.Error(t, err)
}

func TestLoadRejectsNewerSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 99\nplayers: []\n"), 0o644))

	_, err := Load(path, FormatYAML)
	assert.ErrorContains(t, err, "newer than supported")
}

func TestLoadCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.msgpack")
	require.NoError(t, os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644))

	_, err := Load(path, FormatMsgpack)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"text": FormatText, "CSV": FormatText, "msgpack": FormatMsgpack, "yml": FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatText, FormatFromPath("players.txt"))
	assert.Equal(t, FormatText, FormatFromPath("players"))
	assert.Equal(t, FormatMsgpack, FormatFromPath("backup.MSGPACK"))
	assert.Equal(t, FormatYAML, FormatFromPath("roster.yml"))
}
