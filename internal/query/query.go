// Package query derives filtered, searched and sorted views of the roster.
// Every function here is read-only; nothing writes back to the store.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mauv0809/nhl-tracker/internal/player"
)

// Service answers roster queries against the full record set of a Source.
type Service struct {
	source Source
}

// New creates a query Service reading from source.
func New(source Source) *Service {
	return &Service{source: source}
}

// FilterByMinGoals keeps players with at least n goals.
func (s *Service) FilterByMinGoals(n int) []player.Player {
	return FilterFunc(s.source.GetAll(), func(p player.Player) bool { return p.Goals >= n })
}

// FilterByMinAssists keeps players with at least n assists.
func (s *Service) FilterByMinAssists(n int) []player.Player {
	return FilterFunc(s.source.GetAll(), func(p player.Player) bool { return p.Assists >= n })
}

// FilterByMinPoints keeps players with at least n points.
func (s *Service) FilterByMinPoints(n int) []player.Player {
	return FilterFunc(s.source.GetAll(), func(p player.Player) bool { return p.Points() >= n })
}

// FilterByTeam keeps players whose team matches, ignoring case.
func (s *Service) FilterByTeam(team string) []player.Player {
	return FilterFunc(s.source.GetAll(), func(p player.Player) bool { return strings.EqualFold(p.Team, team) })
}

// SearchByName returns the single player with that name, or nothing.
func (s *Service) SearchByName(name string) []player.Player {
	p, ok := s.source.FindByName(name)
	if !ok {
		return []player.Player{}
	}
	return []player.Player{p}
}

// SortBy returns the whole roster ordered by field.
// Ties keep the name order GetAll produced.
func (s *Service) SortBy(field SortField, dir Direction) ([]player.Player, error) {
	return Sort(s.source.GetAll(), field, dir)
}

// FilterFunc returns the players for which keep reports true, in input order.
func FilterFunc(players []player.Player, keep func(player.Player) bool) []player.Player {
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy of players. The input slice is left alone.
func Sort(players []player.Player, field SortField, dir Direction) ([]player.Player, error) {
	value, err := fieldValue(field)
	if err != nil {
		return nil, err
	}
	if dir != Ascending && dir != Descending {
		return nil, fmt.Errorf("unknown sort direction %q", dir)
	}

	out := slices.Clone(players)
	if out == nil {
		out = []player.Player{}
	}
	slices.SortStableFunc(out, func(a, b player.Player) int {
		c := cmp.Compare(value(a), value(b))
		if dir == Descending {
			return -c
		}
		return c
	})
	return out, nil
}

// FormatList renders players one per line, in the order given.
func FormatList(players []player.Player) string {
	if len(players) == 0 {
		return EmptyResult
	}
	var sb strings.Builder
	for _, p := range players {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseSortField maps user input such as "Points" to a SortField.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByGoals, SortByAssists, SortByPoints:
		return f, nil
	default:
		return "", fmt.Errorf("unknown sort field %q (want goals, assists or points)", s)
	}
}

// ParseDirection maps user input such as "desc" or "descending" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q (want asc or desc)", s)
	}
}

func fieldValue(field SortField) (func(player.Player) int, error) {
	switch field {
	case SortByGoals:
		return func(p player.Player) int { return p.Goals }, nil
	case SortByAssists:
		return func(p player.Player) int { return p.Assists }, nil
	case SortByPoints:
		return player.Player.Points, nil
	default:
		return nil, fmt.Errorf("unknown sort field %q", field)
	}
}
