// Package league holds the directory of leagues housed in the building along with
// the projections used to display them.
package league

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroundFloor is the floor value used for the ground floor (rez-de-chaussée).
const GroundFloor = "RDC"

// League is a single directory entry. Floor and Office are free text.
type League struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Floor  string `json:"floor"`
	Office string `json:"office"`
}

// Seed returns the directory written on first run.
func Seed() []League {
	return []League{
		{ID: 1, Name: "Comité Régional Olympique (CROS)", Floor: "2", Office: "201-205"},
		{ID: 2, Name: "Ligue Grand Est de Football", Floor: "1", Office: "110-120"},
		{ID: 3, Name: "Ligue Régionale de Basketball", Floor: GroundFloor, Office: "A04"},
		{ID: 4, Name: "Comité Régional Handisport", Floor: "1", Office: "105"},
		{ID: 5, Name: "Ligue Grand Est de Judo", Floor: GroundFloor, Office: "A02"},
	}
}

// FloorLabel converts a raw floor value into the label shown on the public board.
func FloorLabel(floor string) string {
	if floor == GroundFloor {
		return "Rez-de-chaussée"
	}

	return floor + "ème Étage"
}

// Sorter orders leagues by name using the collation rules of a locale.
// It is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

func NewSorter(locale string) *Sorter {
	tag, errTag := language.Parse(locale)
	if errTag != nil {
		tag = language.French
	}

	return &Sorter{collator: collate.New(tag)}
}

// Sort returns a copy of leagues ordered by name ascending. Equal names keep their relative order.
func (s *Sorter) Sort(leagues []League) []League {
	sorted := slices.Clone(leagues)
	slices.SortStableFunc(sorted, func(a, b League) int {
		return s.collator.CompareString(a.Name, b.Name)
	})

	return sorted
}

type PublicRow struct {
	Name       string
	FloorLabel string
	Office     string
}

type AdminRow struct {
	ID    int64
	Name  string
	Floor string
}

func PublicRows(sorted []League) []PublicRow {
	rows := make([]PublicRow, len(sorted))
	for idx, league := range sorted {
		rows[idx] = PublicRow{Name: league.Name, FloorLabel: FloorLabel(league.Floor), Office: league.Office}
	}

	return rows
}

func AdminRows(sorted []League) []AdminRow {
	rows := make([]AdminRow, len(sorted))
	for idx, league := range sorted {
		rows[idx] = AdminRow{ID: league.ID, Name: league.Name, Floor: league.Floor}
	}

	return rows
}
