package pages_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/pages"
	"github.com/stretchr/testify/require"
)

func TestBoardSortsAndLabels(t *testing.T) {
	board := pages.NewBoard(league.NewSorter("fr-FR"))
	board, _ = board.Update(model.ViewState{Page: model.PageBoard, Width: 120, Height: 30, Content: 28})
	board, _ = board.Update(command.LeaguesMsg{Leagues: league.Seed()})

	rows := board.Rows()
	require.Len(t, rows, 5)
	require.Equal(t, "Comité Régional Handisport", rows[0].Name)
	require.Equal(t, "1ème Étage", rows[0].FloorLabel)
	require.Equal(t, "Ligue Régionale de Basketball", rows[4].Name)
	require.Equal(t, "Rez-de-chaussée", rows[4].FloorLabel)

	view := board.View()
	require.Contains(t, view, "Annuaire")
	require.Contains(t, view, "Rez-de-chaussée")
}

func TestBoardResortsOnLocaleChange(t *testing.T) {
	board := pages.NewBoard(league.NewSorter("fr-FR"))
	board, _ = board.Update(command.LeaguesMsg{Leagues: []league.League{
		{ID: 1, Name: "Éducation", Floor: "1", Office: "1"},
		{ID: 2, Name: "Football", Floor: "1", Office: "2"},
	}})
	require.Equal(t, "Éducation", board.Rows()[0].Name)

	board, _ = board.Update(config.Config{Locale: "en-US"})
	require.Equal(t, "Éducation", board.Rows()[0].Name)
	require.Len(t, board.Rows(), 2)
}

func TestHelpReturnsToBoard(t *testing.T) {
	page := pages.NewHelp("v1.0.0", "2025-03-14", "0123456789abcdef", "/tmp/mrs-board.yaml", "")
	page, _ = page.Update(model.ViewState{Page: model.PageHelp, Width: 140, Height: 40, Content: 38})
	page, _ = page.Update(command.UpdatedOnMsg{UpdatedOn: time.Now().Add(-3 * time.Minute)})

	view := page.View()
	require.Contains(t, view, "01234567")
	require.NotContains(t, view, "0123456789abcdef")
	require.Contains(t, view, "3 minutes ago")
	require.Contains(t, view, "(mémoire)")

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	require.Equal(t, model.PageBoard, msgs[0].(model.ViewState).Page) //nolint:forcetypeassert
}
