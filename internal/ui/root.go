package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/admin"
	"github.com/leighmacdonald/mrs-board/internal/clock"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/idle"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/component"
	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/pages"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// Dependencies are the services the ui talks to.
type Dependencies struct {
	Directory command.Directory
	Fetcher   command.BackdropFetcher
	Verifier  admin.Verifier
	Clock     clock.Clock
	Loader    config.Writer
	DBPath    string
}

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	ctx          context.Context //nolint:containedctx
	deps         Dependencies
	config       config.Config
	idle         *idle.Controller
	viewState    model.ViewState
	header       component.HeaderModel
	status       component.StatusBarModel
	screensaver  component.ScreensaverModel
	board        pages.Board
	admin        *pages.Admin
	configPage   *pages.Config
	help         pages.Help
	headerHeight int
	footerHeight int
}

func newRootModel(ctx context.Context, cfg config.Config, deps Dependencies, buildVersion string, buildDate string, buildCommit string) rootModel {
	sorter := league.NewSorter(cfg.Locale)

	return rootModel{
		ctx:          ctx,
		deps:         deps,
		config:       cfg,
		idle:         idle.New(idleSettings(cfg)),
		viewState:    model.ViewState{Page: model.PageBoard},
		header:       component.NewHeaderModel(cfg.Title, deps.Clock),
		status:       component.NewStatusBarModel(buildVersion),
		screensaver:  component.NewScreensaverModel(),
		board:        pages.NewBoard(sorter),
		admin:        pages.NewAdmin(ctx, deps.Directory, deps.Verifier, sorter),
		configPage:   pages.NewConfig(cfg, deps.Loader),
		help:         pages.NewHelp(buildVersion, buildDate, buildCommit, deps.Loader.Path(), deps.DBPath),
		headerHeight: 1,
		footerHeight: 1,
	}
}

func idleSettings(cfg config.Config) idle.Settings {
	return idle.Settings{
		Limit:       cfg.IdleLimit,
		RotateEvery: cfg.RotateEvery,
		FadeDelay:   cfg.FadeDelay(),
		Opacity:     cfg.FadeOpacity,
		Images:      cfg.Backgrounds,
	}
}

func (m rootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle(m.config.Title),
		textinput.Blink,
		m.admin.Init(),
		m.configPage.Init(),
		command.LoadLeagues(m.ctx, m.deps.Directory),
		command.IdleTick(),
		command.ClockTick(),
	}

	// Backgrounds are fetched up front so the first rotation does not wait on the network.
	if m.deps.Fetcher != nil {
		for _, url := range m.config.Backgrounds {
			cmds = append(cmds, command.FetchBackdrop(m.ctx, m.deps.Fetcher, url))
		}
	}

	return tea.Batch(cmds...)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Content = msg.Height - m.headerHeight - m.footerHeight

		return m.propagate(m.viewState)
	case model.ViewState:
		m.viewState = msg
		next, cmd := m.propagate(msg)
		if msg.Page == model.PageHelp {
			return next, tea.Batch(cmd, command.LoadUpdatedOn(m.ctx, m.deps.Directory))
		}

		return next, cmd
	case tea.KeyMsg:
		if m.idle.Interact().Hide {
			// The event that wakes the board is consumed.
			return m, nil
		}

		return m.onKey(msg)
	case tea.MouseMsg:
		if m.idle.Interact().Hide {
			return m, nil
		}
	case command.IdleTickMsg:
		effect := m.idle.Tick(m.viewState.Page.AdminOpen())
		cmds := []tea.Cmd{command.IdleTick()}
		if effect.FadeOut {
			cmds = append(cmds, command.SwapBackdropAfter(m.idle.Settings().FadeDelay))
		}

		return m, tea.Batch(cmds...)
	case command.SwapBackdropMsg:
		url := m.idle.Swap()
		if url != "" && m.deps.Fetcher != nil && !m.screensaver.Known(url) {
			return m, command.FetchBackdrop(m.ctx, m.deps.Fetcher, url)
		}

		return m, nil
	case command.ClockTickMsg:
		next, cmd := m.propagate(msg)

		return next, tea.Batch(cmd, command.ClockTick())
	case config.Config:
		m.config = msg
		m.idle.Configure(idleSettings(msg))
	case command.OpenAdminMsg:
		m.viewState.Page = model.PageAdmin
		next, cmdView := m.propagate(m.viewState)
		next, cmdOpen := next.propagate(msg)

		return next, tea.Batch(cmdView, cmdOpen)
	}

	return m.propagate(inMsg)
}

func (m rootModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.viewState.Page == model.PageBoard {
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			m.viewState.Page = model.PageHelp

			return m, command.SetViewState(m.viewState)
		case key.Matches(msg, input.Default.Admin):
			return m, command.OpenAdmin()
		}
	}

	return m.propagate(msg)
}

func (m rootModel) View() string {
	if m.viewState.Width == 0 || m.viewState.Height == 0 {
		return ""
	}

	if m.idle.Visible() {
		return m.screensaver.Render(m.idle.Background(), m.idle.Opacity(),
			m.viewState.Width, m.viewState.Height, m.config.Title, m.header.Time())
	}

	hdr := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.header.View())
	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.status.View())

	var content string
	switch m.viewState.Page {
	case model.PageAdmin:
		content = m.admin.View()
	case model.PageConfig:
		content = m.configPage.View()
	case model.PageHelp:
		content = m.help.View()
	case model.PageBoard:
		content = m.board.View()
	}

	ctr := styles.ContentContainerStyle.Height(m.viewState.Content).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) propagate(msg tea.Msg) (rootModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 7)

	m.header, cmds[0] = m.header.Update(msg)
	m.status, cmds[1] = m.status.Update(msg)
	m.screensaver, cmds[2] = m.screensaver.Update(msg)
	m.board, cmds[3] = m.board.Update(msg)
	m.admin, cmds[4] = m.admin.Update(msg)
	m.configPage, cmds[5] = m.configPage.Update(msg)
	m.help, cmds[6] = m.help.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/mrs-board/mrs-board.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch msg := inMsg.(type) {
	case command.IdleTickMsg:
	case command.ClockTickMsg:
	case command.BackdropLoadedMsg:
		slog.Debug("tea.Msg", slog.String("backdrop", msg.URL), slog.Bool("ok", msg.Err == nil))
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionMotion {
			slog.Debug("tea.Msg", slog.Any("msg", inMsg))
		}
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
