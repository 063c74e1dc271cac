package roster

import "github.com/mauv0809/nhl-tracker/internal/player"

// RosterStore defines the interface for interacting with the roster's data.
// Failures are reported as false or not-found results; the cause is logged.
type RosterStore interface {
	Add(p player.Player) bool
	FindByName(name string) (player.Player, bool)
	GetAll() []player.Player
	Update(p player.Player) bool
	Remove(name string) bool
	Count() int
	Close()
}
