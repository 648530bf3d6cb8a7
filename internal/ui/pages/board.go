package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/component"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
)

// Board is the public directory shown to visitors.
type Board struct {
	directory component.DirectoryTableModel
	viewState model.ViewState
}

func NewBoard(sorter *league.Sorter) Board {
	return Board{directory: component.NewDirectoryTableModel(sorter)}
}

func (m Board) Init() tea.Cmd {
	return m.directory.Init()
}

func (m Board) Update(msg tea.Msg) (Board, tea.Cmd) {
	if msg, ok := msg.(model.ViewState); ok {
		m.viewState = msg
	}

	var cmd tea.Cmd
	m.directory, cmd = m.directory.Update(msg)

	return m, cmd
}

func (m Board) Rows() []league.PublicRow {
	return m.directory.Rows()
}

func (m Board) View() string {
	return m.directory.Render(m.viewState.Width-2, m.viewState.Content-2)
}
