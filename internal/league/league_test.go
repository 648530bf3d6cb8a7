package league_test

import (
	"testing"

	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/stretchr/testify/require"
)

func TestFloorLabel(t *testing.T) {
	cases := []struct {
		floor string
		want  string
	}{
		{floor: "RDC", want: "Rez-de-chaussée"},
		{floor: "2", want: "2ème Étage"},
		{floor: "3", want: "3ème Étage"},
		{floor: "", want: "ème Étage"},
		{floor: "rdc", want: "rdcème Étage"},
	}

	for _, tc := range cases {
		t.Run(tc.floor, func(t *testing.T) {
			require.Equal(t, tc.want, league.FloorLabel(tc.floor))
		})
	}
}

func TestSortLocaleAware(t *testing.T) {
	sorter := league.NewSorter("fr-FR")
	input := []league.League{
		{ID: 1, Name: "Football"},
		{ID: 2, Name: "Éducation physique"},
		{ID: 3, Name: "aviron"},
		{ID: 4, Name: "Basket"},
		{ID: 5, Name: "Danse"},
	}

	sorted := sorter.Sort(input)
	names := make([]string, len(sorted))
	for idx, entry := range sorted {
		names[idx] = entry.Name
	}

	require.Equal(t, []string{"aviron", "Basket", "Danse", "Éducation physique", "Football"}, names)
	// Input is untouched.
	require.Equal(t, "Football", input[0].Name)
}

func TestSortSeed(t *testing.T) {
	sorted := league.NewSorter("fr-FR").Sort(league.Seed())
	for idx := 1; idx < len(sorted); idx++ {
		require.LessOrEqual(t, sorted[idx-1].Name, sorted[idx].Name)
	}
	require.Equal(t, "Comité Régional Handisport", sorted[0].Name)
	require.Equal(t, "Ligue Régionale de Basketball", sorted[len(sorted)-1].Name)
}

func TestSorterInvalidLocale(t *testing.T) {
	sorted := league.NewSorter("not a locale!!").Sort([]league.League{{Name: "b"}, {Name: "a"}})
	require.Equal(t, "a", sorted[0].Name)
}

func TestRows(t *testing.T) {
	sorted := league.NewSorter("fr-FR").Sort(league.Seed())

	public := league.PublicRows(sorted)
	require.Len(t, public, len(sorted))
	require.Equal(t, league.PublicRow{Name: "Comité Régional Handisport", FloorLabel: "1ème Étage", Office: "105"}, public[0])

	admin := league.AdminRows(sorted)
	require.Len(t, admin, len(sorted))
	require.Equal(t, league.AdminRow{ID: 3, Name: "Ligue Régionale de Basketball", Floor: "RDC"}, admin[len(admin)-1])
}
