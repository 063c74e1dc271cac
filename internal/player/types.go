package player

import (
	"fmt"
	"strings"
)

// Player represents one player's stat line in the roster.
type Player struct {
	Name      string `yaml:"name" msgpack:"name"`
	Team      string `yaml:"team" msgpack:"team"`
	Goals     int    `yaml:"goals" msgpack:"goals"`
	Assists   int    `yaml:"assists" msgpack:"assists"`
	PlusMinus int    `yaml:"plus_minus" msgpack:"plus_minus"`
}

// New builds a Player from all five stat fields.
func New(name, team string, goals, assists, plusMinus int) Player {
	return Player{
		Name:      name,
		Team:      team,
		Goals:     goals,
		Assists:   assists,
		PlusMinus: plusMinus,
	}
}

// Points is goals plus assists. It is never stored.
func (p Player) Points() int {
	return p.Goals + p.Assists
}

// Key returns the case-insensitive lookup key for the player's name.
func (p Player) Key() string {
	return NameKey(p.Name)
}

// SameName reports whether name refers to this player, ignoring case.
func (p Player) SameName(name string) bool {
	return p.Key() == NameKey(name)
}

// String renders the player as a single display line.
func (p Player) String() string {
	return fmt.Sprintf("%-20s %-15s Goals: %-3d Assists: %-3d Points: %-3d +/-: %-3d",
		p.Name, p.Team, p.Goals, p.Assists, p.Points(), p.PlusMinus)
}

// NameKey normalizes a player name for uniqueness checks and lookups.
func NameKey(name string) string {
	return strings.ToLower(name)
}
