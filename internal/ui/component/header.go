package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/clock"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// HeaderModel shows the board title, the clock and the clickable admin trigger.
type HeaderModel struct {
	id        string
	title     string
	clock     clock.Clock
	now       string
	viewState model.ViewState
}

func NewHeaderModel(title string, clk clock.Clock) HeaderModel {
	return HeaderModel{id: zone.NewPrefix(), title: title, clock: clk, now: clk.Now()}
}

func (m HeaderModel) Init() tea.Cmd {
	return nil
}

func (m HeaderModel) Update(msg tea.Msg) (HeaderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.title = msg.Title
		m.clock = m.clock.WithLocale(msg.Locale)
		m.now = m.clock.Now()
	case command.ClockTickMsg:
		m.now = m.clock.Format(msg.Time)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if m.viewState.Page == model.PageBoard && zone.Get(m.id+"admin").InBounds(msg) {
			return m, command.OpenAdmin()
		}
	}

	return m, nil
}

// Time is the currently displayed clock value.
func (m HeaderModel) Time() string {
	return m.now
}

func (m HeaderModel) View() string {
	trigger := styles.AdminTrigger.Render("Admin " + styles.IconLock)
	if m.viewState.Page.AdminOpen() {
		trigger = styles.AdminTriggerActive.Render("Admin " + styles.IconUnlock)
	}

	left := styles.Title.Render(m.title)
	right := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(m.id+"admin", trigger),
		styles.Clock.Render(m.now))

	gap := max(m.viewState.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
