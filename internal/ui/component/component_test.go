package component_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/leighmacdonald/mrs-board/internal/clock"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/component"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestStatusBarMessages(t *testing.T) {
	bar := component.NewStatusBarModel("v1.0.0")
	bar, _ = bar.Update(model.ViewState{Page: model.PageBoard, Width: 100})
	bar, _ = bar.Update(command.LeaguesMsg{Leagues: league.Seed()})
	require.Contains(t, bar.View(), "5 ligues")

	bar, cmd := bar.Update(command.StatusMsg{Message: "Entrée ajoutée"})
	require.NotNil(t, cmd)

	msg, isErr := bar.Message()
	require.Equal(t, "Entrée ajoutée", msg)
	require.False(t, isErr)

	bar, _ = bar.Update(command.ClearStatusMessageMsg{})
	msg, _ = bar.Message()
	require.Empty(t, msg)
}

func TestHeaderClockFollowsLocale(t *testing.T) {
	zone.NewGlobal()

	fake := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 15, 5, 0, 0, time.UTC))
	header := component.NewHeaderModel("Maison Régionale des Sports",
		clock.New(fake, "fr-FR").WithLocation(time.UTC))

	header, _ = header.Update(command.ClockTickMsg{Time: fake.Now()})
	require.Equal(t, "15:05", header.Time())

	header, _ = header.Update(config.Config{Title: "MRS", Locale: "en-US"})
	require.Equal(t, "3:05 PM", header.Time())
	require.Contains(t, header.View(), "MRS")
}

func TestAdminTableKeyboardDelete(t *testing.T) {
	table := component.NewAdminTableModel(league.NewSorter("fr-FR"))
	table, _ = table.Update(command.LeaguesMsg{Leagues: league.Seed()})
	require.Len(t, table.Rows(), 5)

	// Keys are ignored until the table has focus.
	_, cmd := table.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)

	table.SetFocused(true)
	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, table.Selected())

	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyUp})
	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 4, table.Selected())

	_, cmd = table.Update(tea.KeyMsg{Type: tea.KeyDelete})
	require.NotNil(t, cmd)

	row := table.Rows()[4]
	require.Equal(t, command.ConfirmDeleteMsg{ID: row.ID, Name: row.Name}, cmd())
}

func TestDirectoryTableEmpty(t *testing.T) {
	directory := component.NewDirectoryTableModel(league.NewSorter("fr-FR"))
	directory, _ = directory.Update(command.LeaguesMsg{Leagues: []league.League{}})

	require.Empty(t, directory.Rows())
	require.Contains(t, directory.Render(80, 10), "Aucune ligue enregistrée")
}
