package query

import "github.com/mauv0809/nhl-tracker/internal/player"

// Source is the read side of the roster store the query layer works from.
type Source interface {
	GetAll() []player.Player
	FindByName(name string) (player.Player, bool)
}

// SortField selects the stat a roster view is ordered by.
type SortField string

const (
	SortByGoals   SortField = "goals"
	SortByAssists SortField = "assists"
	SortByPoints  SortField = "points"
)

// Direction is the order of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// EmptyResult is what FormatList renders for an empty roster view.
const EmptyResult = "No players found for your criteria."
