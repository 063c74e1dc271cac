package roster

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/nhl-tracker/internal/metrics"
	"github.com/mauv0809/nhl-tracker/internal/player"
)

var errClosed = errors.New("roster store is closed")

// New creates a new RosterStore on top of an initialized database.
// teardown releases the database and is invoked once by Close; it may be nil.
func New(db *sql.DB, teardown func(), m metrics.Metrics) RosterStore {
	if m == nil {
		m = metrics.NewMock()
	}
	if teardown == nil && db != nil {
		teardown = func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", "error", err)
			}
		}
	}
	s := &store{
		db:       db,
		teardown: teardown,
		metrics:  m,
		closed:   db == nil,
	}
	s.refreshSize()
	return s
}

// Add inserts a new player unless one with the same name (ignoring case) already exists.
// The check and the insert run in one transaction so a failed write leaves no trace.
func (s *store) Add(p player.Player) bool {
	defer s.observe("add", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.storageFailure("add", errClosed, "name", p.Name)
		return false
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.storageFailure("add", err, "name", p.Name)
		return false
	}

	var exists bool
	err = tx.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE name_key = ?)", p.Key()).Scan(&exists)
	if err != nil {
		tx.Rollback()
		s.storageFailure("add", err, "name", p.Name)
		return false
	}
	if exists {
		tx.Rollback()
		log.Info("Rejected duplicate player", "name", p.Name)
		s.metrics.IncDuplicatesRejected()
		return false
	}

	_, err = tx.Exec(`
		INSERT INTO players (id, name, name_key, team, goals, assists, plus_minus)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), p.Name, p.Key(), p.Team, p.Goals, p.Assists, p.PlusMinus)
	if err != nil {
		tx.Rollback()
		s.storageFailure("add", err, "name", p.Name)
		return false
	}

	if err := tx.Commit(); err != nil {
		s.storageFailure("add", err, "name", p.Name)
		return false
	}

	log.Info("Added player to the roster", "name", p.Name, "team", p.Team)
	s.metrics.IncPlayersAdded()
	s.refreshSizeLocked()
	return true
}

// FindByName looks a player up by name, ignoring case.
func (s *store) FindByName(name string) (player.Player, bool) {
	defer s.observe("find", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.storageFailure("find", errClosed, "name", name)
		return player.Player{}, false
	}

	row := s.db.QueryRow("SELECT "+selectColumns+" FROM players WHERE name_key = ?", player.NameKey(name))
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("No player found", "name", name)
			s.metrics.IncNotFound()
			return player.Player{}, false
		}
		s.storageFailure("find", err, "name", name)
		return player.Player{}, false
	}
	return p, true
}

// GetAll returns every stored player ordered by name (SQLite BINARY collation).
func (s *store) GetAll() []player.Player {
	defer s.observe("get_all", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := []player.Player{}
	if s.closed {
		s.storageFailure("get_all", errClosed)
		return players
	}

	rows, err := s.db.Query("SELECT " + selectColumns + " FROM players ORDER BY name ASC")
	if err != nil {
		s.storageFailure("get_all", err)
		return players
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			s.storageFailure("get_all", err)
			return []player.Player{}
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		s.storageFailure("get_all", err)
		return []player.Player{}
	}
	return players
}

// Update overwrites the team and stat columns of the player matching p's name.
// The stored name itself is never rewritten.
func (s *store) Update(p player.Player) bool {
	defer s.observe("update", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.storageFailure("update", errClosed, "name", p.Name)
		return false
	}

	res, err := s.db.Exec(`
		UPDATE players
		SET team = ?, goals = ?, assists = ?, plus_minus = ?
		WHERE name_key = ?
	`, p.Team, p.Goals, p.Assists, p.PlusMinus, p.Key())
	if err != nil {
		s.storageFailure("update", err, "name", p.Name)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		s.storageFailure("update", err, "name", p.Name)
		return false
	}
	if affected == 0 {
		log.Info("No player to update", "name", p.Name)
		s.metrics.IncNotFound()
		return false
	}

	log.Info("Updated player", "name", p.Name, "team", p.Team)
	s.metrics.IncPlayersUpdated()
	return true
}

// Remove deletes the player matching name, ignoring case.
func (s *store) Remove(name string) bool {
	defer s.observe("remove", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.storageFailure("remove", errClosed, "name", name)
		return false
	}

	res, err := s.db.Exec("DELETE FROM players WHERE name_key = ?", player.NameKey(name))
	if err != nil {
		s.storageFailure("remove", err, "name", name)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		s.storageFailure("remove", err, "name", name)
		return false
	}
	if affected == 0 {
		log.Info("No player to remove", "name", name)
		s.metrics.IncNotFound()
		return false
	}

	log.Info("Removed player", "name", name)
	s.metrics.IncPlayersRemoved()
	s.refreshSizeLocked()
	return true
}

// Count returns the number of stored players, or 0 if storage fails.
func (s *store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, err := s.countLocked()
	if err != nil {
		s.storageFailure("count", err)
		return 0
	}
	return n
}

// Close releases the database. Calling it again is a no-op.
func (s *store) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.teardown != nil {
		log.Debug("Closing roster database")
		s.teardown()
	}
}

func (s *store) countLocked() (int, error) {
	if s.closed {
		return 0, errClosed
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

func (s *store) refreshSize() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.refreshSizeLocked()
}

func (s *store) refreshSizeLocked() {
	n, err := s.countLocked()
	if err != nil {
		log.Debug("Could not refresh roster size", "error", err)
		return
	}
	s.metrics.SetRosterSize(n)
}

func (s *store) storageFailure(operation string, err error, keyvals ...interface{}) {
	log.Error("Roster storage failure", append([]interface{}{"operation", operation, "error", err}, keyvals...)...)
	s.metrics.IncStorageErrors()
}

func (s *store) observe(operation string, start time.Time) {
	s.metrics.ObserveOperationDuration(operation, time.Since(start).Seconds())
}

// scanPlayer is a helper function to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (player.Player, error) {
	var p player.Player
	err := scanner.Scan(&p.Name, &p.Team, &p.Goals, &p.Assists, &p.PlusMinus)
	return p, err
}
