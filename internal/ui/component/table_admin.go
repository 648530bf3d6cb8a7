package component

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	colAdminFloorSize  = 8
	colAdminDeleteSize = 13
	deleteLabel        = "[Supprimer]"
)

// AdminTableModel lists leagues with a delete control on every row. Rows are rebuilt on every
// change and each delete control is marked with a zone derived from the league id.
type AdminTableModel struct {
	id        string
	sorter    *league.Sorter
	leagues   []league.League
	rows      []league.AdminRow
	selected  int
	focused   bool
	viewState model.ViewState
}

func NewAdminTableModel(sorter *league.Sorter) AdminTableModel {
	return AdminTableModel{id: zone.NewPrefix(), sorter: sorter}
}

func (m AdminTableModel) Init() tea.Cmd {
	return nil
}

func (m AdminTableModel) Update(msg tea.Msg) (AdminTableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.sorter = league.NewSorter(msg.Locale)
		m.rebuild()
	case command.LeaguesMsg:
		m.leagues = msg.Leagues
		m.rebuild()
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for idx, row := range m.rows {
			if zone.Get(m.zoneID(row.ID)).InBounds(msg) {
				m.selected = idx

				return m, command.ConfirmDelete(row.ID, row.Name)
			}
		}
	case tea.KeyMsg:
		if !m.focused || len(m.rows) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Up):
			m.selected = input.Previous.Step(m.selected, len(m.rows))
		case key.Matches(msg, input.Default.Down):
			m.selected = input.Next.Step(m.selected, len(m.rows))
		case key.Matches(msg, input.Default.Delete):
			row := m.rows[m.selected]

			return m, command.ConfirmDelete(row.ID, row.Name)
		}
	}

	return m, nil
}

func (m *AdminTableModel) rebuild() {
	m.rows = league.AdminRows(m.sorter.Sort(m.leagues))
	m.selected = min(m.selected, max(len(m.rows)-1, 0))
}

func (m *AdminTableModel) SetFocused(focused bool) {
	m.focused = focused
}

func (m AdminTableModel) Focused() bool {
	return m.focused
}

func (m AdminTableModel) Rows() []league.AdminRow {
	return m.rows
}

func (m AdminTableModel) Selected() int {
	return m.selected
}

func (m AdminTableModel) zoneID(leagueID int64) string {
	return m.id + strconv.FormatInt(leagueID, 10)
}

func (m AdminTableModel) Render(width int, height int) string {
	var content string
	if len(m.rows) == 0 {
		content = styles.InfoMessage.Width(width - 2).Render("Aucune ligue enregistrée")
	} else {
		nameWidth := max(width-colAdminFloorSize-colAdminDeleteSize-2, 8)
		rows := make([][]string, len(m.rows))
		for idx, row := range m.rows {
			rows[idx] = []string{
				fit(row.Name, nameWidth-1),
				fit(row.Floor, colAdminFloorSize-1),
				zone.Mark(m.zoneID(row.ID), styles.DeleteButton.Render(deleteLabel)),
			}
		}

		content = NewUnstyledTable("Nom", "Étage", "").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = styles.TableHeading
				case m.focused && row == m.selected:
					style = styles.TableRowSelected
				case row%2 == 0:
					style = styles.TableRowValuesEven
				default:
					style = styles.TableRowValuesOdd
				}

				switch col {
				case 0:
					return style.Width(nameWidth)
				case 1:
					return style.Width(colAdminFloorSize)
				default:
					return style.Width(colAdminDeleteSize)
				}
			}).Render()
	}

	return model.Container("Ligues", width, height, content, m.focused)
}
