package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
)

type directoryTableCol int

const (
	colName directoryTableCol = iota
	colFloor
	colOffice
)

const (
	colFloorSize  = 18
	colOfficeSize = 12
)

// DirectoryTableModel is the public, read only listing of leagues.
type DirectoryTableModel struct {
	sorter    *league.Sorter
	leagues   []league.League
	rows      []league.PublicRow
	viewState model.ViewState
}

func NewDirectoryTableModel(sorter *league.Sorter) DirectoryTableModel {
	return DirectoryTableModel{sorter: sorter}
}

func (m DirectoryTableModel) Init() tea.Cmd {
	return nil
}

func (m DirectoryTableModel) Update(msg tea.Msg) (DirectoryTableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.sorter = league.NewSorter(msg.Locale)
		m.rows = league.PublicRows(m.sorter.Sort(m.leagues))
	case command.LeaguesMsg:
		m.leagues = msg.Leagues
		m.rows = league.PublicRows(m.sorter.Sort(msg.Leagues))
	}

	return m, nil
}

func (m DirectoryTableModel) Rows() []league.PublicRow {
	return m.rows
}

func (m DirectoryTableModel) Render(width int, height int) string {
	var content string
	if len(m.rows) == 0 {
		content = styles.InfoMessage.Width(width - 2).Render("Aucune ligue enregistrée " + styles.IconEmpty)
	} else {
		nameWidth := max(width-colFloorSize-colOfficeSize-2, 8)
		rows := make([][]string, len(m.rows))
		for idx, row := range m.rows {
			rows[idx] = []string{fit(row.Name, nameWidth-1), row.FloorLabel, fit(row.Office, colOfficeSize-1)}
		}

		content = NewUnstyledTable("Ligue", "Étage", "Bureau").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = styles.TableHeading
				case row%2 == 0:
					style = styles.TableRowValuesEven
				default:
					style = styles.TableRowValuesOdd
				}

				switch directoryTableCol(col) {
				case colName:
					if row != table.HeaderRow {
						style = style.Inherit(styles.LeagueName)
					}

					return style.Width(nameWidth)
				case colFloor:
					if row != table.HeaderRow {
						style = style.Inherit(styles.FloorLabel)
					}

					return style.Width(colFloorSize)
				case colOffice:
					return style.Inherit(styles.Office).Width(colOfficeSize)
				default:
					return style
				}
			}).Render()
	}

	return model.Container("Annuaire", width, height, content, false)
}
