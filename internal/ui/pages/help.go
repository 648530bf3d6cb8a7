package pages

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, dbPath string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		dbPath:       dbPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	dbPath       string
	updatedOn    time.Time
	entries      int
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewState.Page == model.PageHelp && key.Matches(msg, input.Default.Back, input.Default.Help) {
			m.viewState.Page = model.PageBoard

			return m, command.SetViewState(m.viewState)
		}
	case model.ViewState:
		m.viewState = msg
	case command.UpdatedOnMsg:
		m.updatedOn = msg.UpdatedOn
	case command.LeaguesMsg:
		m.entries = len(msg.Leagues)
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Help,
			input.Default.Admin,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Logout,
			input.Default.Config,
			input.Default.Delete,
			input.Default.Confirm,
			input.Default.Cancel,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Accept,
			input.Default.NextField,
			input.Default.PrevField,
			input.Default.Up,
			input.Default.Down,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Configuration", m.configPath),
		styles.DetailRow("Base de données", m.dbPath+" "+m.dbSize()),
		styles.DetailRow("Entrées", humanize.Comma(int64(m.entries))),
		styles.DetailRow("Enregistré", m.lastSaved()),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Content, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}

func (m Help) dbSize() string {
	if m.dbPath == "" {
		return "(mémoire)"
	}

	info, err := os.Stat(m.dbPath)
	if err != nil {
		return ""
	}

	return "(" + humanize.Bytes(uint64(info.Size())) + ")" //nolint:gosec
}

func (m Help) lastSaved() string {
	if m.updatedOn.IsZero() {
		return "jamais"
	}

	return humanize.Time(m.updatedOn)
}
