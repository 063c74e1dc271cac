// Package archive reads and writes roster files outside the database: the
// legacy comma-separated text file and two snapshot formats (msgpack, yaml).
package archive

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/nhl-tracker/internal/player"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies an on-disk roster encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatMsgpack Format = "msgpack"
	FormatYAML    Format = "yaml"
)

// snapshotVersion is bumped whenever the snapshot layout changes.
const snapshotVersion = 1

// Snapshot is the envelope written by the msgpack and yaml formats.
type Snapshot struct {
	Version int             `yaml:"version" msgpack:"version"`
	Players []player.Player `yaml:"players" msgpack:"players"`
}

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "csv":
		return FormatText, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown archive format %q (want text, msgpack or yaml)", s)
	}
}

// FormatFromPath guesses the format from the file extension, defaulting to text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return FormatMsgpack
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads players from path. A missing file is an empty roster, not an error.
func Load(path string, format Format) ([]player.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("No data file found. A new one will be created on save.", "path", path)
			return []player.Player{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatText:
		return ReadText(f)
	case FormatMsgpack, FormatYAML:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return decodeSnapshot(data, format)
	default:
		return nil, fmt.Errorf("unknown archive format %q", format)
	}
}

// Save writes players to path. The file is replaced only after a complete write.
func Save(path string, format Format, players []player.Player) error {
	var buf bytes.Buffer
	switch format {
	case FormatText:
		if err := WriteText(&buf, players); err != nil {
			return err
		}
	case FormatMsgpack, FormatYAML:
		data, err := encodeSnapshot(players, format)
		if err != nil {
			return err
		}
		buf.Write(data)
	default:
		return fmt.Errorf("unknown archive format %q", format)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	log.Info("Saved roster file", "path", path, "format", format, "players", len(players))
	return nil
}

// ReadText parses the legacy name,team,goals,assists,plusMinus format.
// Lines without exactly five fields, or with non-integer stats, are skipped.
func ReadText(r io.Reader) ([]player.Player, error) {
	players := []player.Player{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		parts := strings.Split(line, ",")
		if len(parts) != 5 {
			if strings.TrimSpace(line) != "" {
				log.Warn("Skipping malformed roster line", "line", lineNo, "fields", len(parts))
			}
			continue
		}
		stats := make([]int, 3)
		ok := true
		for i, raw := range parts[2:] {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				log.Warn("Skipping roster line with bad number", "line", lineNo, "value", raw)
				ok = false
				break
			}
			stats[i] = n
		}
		if !ok {
			continue
		}
		players = append(players, player.New(
			strings.TrimSpace(parts[0]),
			strings.TrimSpace(parts[1]),
			stats[0], stats[1], stats[2],
		))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading roster file: %w", err)
	}
	return players, nil
}

// WriteText writes one name,team,goals,assists,plusMinus line per player.
// Commas inside names are not escaped.
func WriteText(w io.Writer, players []player.Player) error {
	bw := bufio.NewWriter(w)
	for _, p := range players {
		if _, err := fmt.Fprintf(bw, "%s,%s,%d,%d,%d\n", p.Name, p.Team, p.Goals, p.Assists, p.PlusMinus); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeSnapshot(players []player.Player, format Format) ([]byte, error) {
	snap := Snapshot{Version: snapshotVersion, Players: players}
	if snap.Players == nil {
		snap.Players = []player.Player{}
	}
	var (
		data []byte
		err  error
	)
	if format == FormatMsgpack {
		data, err = msgpack.Marshal(snap)
	} else {
		data, err = yaml.Marshal(snap)
	}
	if err != nil {
		log.Error("Snapshot marshal error", "error", err, "format", format)
		return nil, fmt.Errorf("failed to encode %s snapshot: %w", format, err)
	}
	return data, nil
}

func decodeSnapshot(data []byte, format Format) ([]player.Player, error) {
	var snap Snapshot
	var err error
	if format == FormatMsgpack {
		err = msgpack.Unmarshal(data, &snap)
	} else {
		err = yaml.Unmarshal(data, &snap)
	}
	if err != nil {
		log.Error("Snapshot unmarshal error", "error", err, "format", format)
		return nil, fmt.Errorf("failed to decode %s snapshot: %w", format, err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, snapshotVersion)
	}
	if snap.Players == nil {
		snap.Players = []player.Player{}
	}
	return snap.Players, nil
}
