package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	version     string
	entries     int
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case command.LeaguesMsg:
		m.entries = len(msg.Leagues)
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m StatusBarModel) Message() (string, bool) {
	return m.statusMsg, m.statusError
}

func (m StatusBarModel) View() string {
	help := input.Default.Help.Help()
	if m.viewState.Page.AdminOpen() {
		help = input.Default.Back.Help()
	}

	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", help.Key, help.Desc)),
		styles.StatusHelp.PaddingLeft(2).Render(fmt.Sprintf("%d ligues", m.entries)),
	}

	if m.statusMsg != "" {
		if m.statusError {
			args = append(args, styles.StatusError.PaddingLeft(2).Render(m.statusMsg))
		} else {
			args = append(args, styles.StatusMessage.PaddingLeft(2).Render(m.statusMsg))
		}
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}
