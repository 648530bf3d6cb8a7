package pages

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/admin"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/component"
	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
)

type loginIdx int

const (
	fieldUser loginIdx = iota
	fieldPassword
	loginFieldCount
)

type dashboardIdx int

const (
	focusTable dashboardIdx = iota
	fieldName
	fieldFloor
	fieldOffice
	fieldSubmit
	dashboardFieldCount
)

const loginFailedMessage = "Identifiants incorrects"

// Admin is the password gated panel used to manage the directory.
type Admin struct {
	ctx        context.Context //nolint:containedctx
	directory  command.Directory
	session    *admin.Session
	login      []*component.LabeledInputModel
	form       []*component.LabeledInputModel
	table      component.AdminTableModel
	loginFocus loginIdx
	focus      dashboardIdx
	pending    *command.ConfirmDeleteMsg
	viewState  model.ViewState
}

func NewAdmin(ctx context.Context, directory command.Directory, verifier admin.Verifier, sorter *league.Sorter) *Admin {
	return &Admin{
		ctx:       ctx,
		directory: directory,
		session:   admin.NewSession(verifier),
		login: []*component.LabeledInputModel{
			component.NewLabeledInput("Identifiant", component.NewTextInputModel("", "admin")),
			component.NewLabeledInput("Mot de passe", component.NewPasswordInputModel("")),
		},
		form: []*component.LabeledInputModel{
			component.NewLabeledInput("Nom", component.NewTextInputModel("", "Ligue Grand Est de ...")),
			component.NewLabeledInput("Étage", component.NewTextInputModel("", "RDC, 1, 2 ...")),
			component.NewLabeledInput("Bureau", component.NewTextInputModel("", "A04")),
		},
		table: component.NewAdminTableModel(sorter),
	}
}

func (m *Admin) Init() tea.Cmd {
	return m.table.Init()
}

func (m *Admin) Session() *admin.Session {
	return m.session
}

// Pending returns the league awaiting delete confirmation, if any.
func (m *Admin) Pending() *command.ConfirmDeleteMsg {
	return m.pending
}

func (m *Admin) Table() component.AdminTableModel {
	return m.table
}

func (m *Admin) Update(msg tea.Msg) (*Admin, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case command.OpenAdminMsg:
		return m, m.open()
	case command.ConfirmDeleteMsg:
		if m.session.LoggedIn() {
			m.pending = &msg
		}

		return m, nil
	case tea.MouseMsg:
		if m.viewState.Page != model.PageAdmin || !m.session.LoggedIn() || m.pending != nil {
			return m, nil
		}
	case tea.KeyMsg:
		if m.viewState.Page != model.PageAdmin {
			return m, nil
		}

		return m.onKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// open resets the panel to the login form, clearing the credential fields.
func (m *Admin) open() tea.Cmd {
	m.session.Open()
	m.pending = nil
	for _, field := range m.login {
		field.Reset()
	}
	m.table.SetFocused(false)
	m.loginFocus = fieldUser

	return m.focusLogin()
}

func (m *Admin) onKey(msg tea.KeyMsg) (*Admin, tea.Cmd) {
	if m.pending != nil {
		switch {
		case key.Matches(msg, input.Default.Confirm):
			pending := *m.pending
			m.pending = nil

			return m, command.RemoveLeague(m.ctx, m.directory, pending.ID)
		case key.Matches(msg, input.Default.Cancel):
			m.pending = nil
		}

		return m, nil
	}

	if key.Matches(msg, input.Default.Back) {
		// Closing leaves the session as is, the next open resets it.
		m.viewState.Page = model.PageBoard

		return m, command.SetViewState(m.viewState)
	}

	if m.session.LoggedIn() {
		return m.onDashboardKey(msg)
	}

	return m.onLoginKey(msg)
}

func (m *Admin) onLoginKey(msg tea.KeyMsg) (*Admin, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.NextField, input.Default.Down):
		m.loginFocus = loginIdx(input.Next.Step(int(m.loginFocus), int(loginFieldCount)))

		return m, m.focusLogin()
	case key.Matches(msg, input.Default.PrevField, input.Default.Up):
		m.loginFocus = loginIdx(input.Previous.Step(int(m.loginFocus), int(loginFieldCount)))

		return m, m.focusLogin()
	case key.Matches(msg, input.Default.Accept):
		if m.loginFocus == fieldUser {
			m.loginFocus = fieldPassword

			return m, m.focusLogin()
		}

		return m, m.submitLogin()
	}

	var cmd tea.Cmd
	m.login[m.loginFocus], cmd = m.login[m.loginFocus].Update(msg)

	return m, cmd
}

func (m *Admin) submitLogin() tea.Cmd {
	if !m.session.Login(m.login[fieldUser].Value(), m.login[fieldPassword].Value()) {
		return nil
	}

	for _, field := range m.login {
		field.Reset()
		field.Blur()
	}

	m.focus = focusTable

	return tea.Batch(m.focusDashboard(), command.LoadLeagues(m.ctx, m.directory))
}

func (m *Admin) onDashboardKey(msg tea.KeyMsg) (*Admin, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Logout):
		return m, m.open()
	case key.Matches(msg, input.Default.Config):
		m.viewState.Page = model.PageConfig

		return m, command.SetViewState(m.viewState)
	case key.Matches(msg, input.Default.NextField):
		m.focus = dashboardIdx(input.Next.Step(int(m.focus), int(dashboardFieldCount)))

		return m, m.focusDashboard()
	case key.Matches(msg, input.Default.PrevField):
		m.focus = dashboardIdx(input.Previous.Step(int(m.focus), int(dashboardFieldCount)))

		return m, m.focusDashboard()
	case key.Matches(msg, input.Default.Accept) && m.focus != focusTable:
		if m.focus == fieldName || m.focus == fieldFloor {
			m.focus++

			return m, m.focusDashboard()
		}

		return m, m.submitForm()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTable:
		m.table, cmd = m.table.Update(msg)
	case fieldName, fieldFloor, fieldOffice:
		idx := m.focus - fieldName
		m.form[idx], cmd = m.form[idx].Update(msg)
	case fieldSubmit, dashboardFieldCount:
	}

	return m, cmd
}

// submitForm adds a league from the three free text fields. No validation is applied.
func (m *Admin) submitForm() tea.Cmd {
	name := m.form[fieldName-fieldName].Value()
	floor := m.form[fieldFloor-fieldName].Value()
	office := m.form[fieldOffice-fieldName].Value()

	for _, field := range m.form {
		field.Reset()
	}

	m.focus = fieldName

	return tea.Batch(command.AddLeague(m.ctx, m.directory, name, floor, office), m.focusDashboard())
}

func (m *Admin) focusLogin() tea.Cmd {
	var cmd tea.Cmd
	for idx, field := range m.login {
		if loginIdx(idx) == m.loginFocus {
			cmd = field.Focus()
		} else {
			field.Blur()
		}
	}

	return cmd
}

func (m *Admin) focusDashboard() tea.Cmd {
	m.table.SetFocused(m.focus == focusTable)

	var cmd tea.Cmd
	for idx, field := range m.form {
		if dashboardIdx(idx)+fieldName == m.focus {
			cmd = field.Focus()
		} else {
			field.Blur()
		}
	}

	return cmd
}

func (m *Admin) View() string {
	width := m.viewState.Width - 2
	height := m.viewState.Content - 2

	if !m.session.LoggedIn() {
		return model.Container("Administration", width, height, m.loginView(), true)
	}

	return m.dashboardView(width, height)
}

func (m *Admin) loginView() string {
	rows := []string{
		styles.Subtitle.Render("Connexion requise"),
		"",
		m.login[fieldUser].View(),
		m.login[fieldPassword].View(),
	}

	if m.session.ErrorVisible() {
		rows = append(rows, "", styles.ErrorBanner.Render(loginFailedMessage))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Admin) dashboardView(width int, height int) string {
	submit := styles.BlurredSubmitButton
	if m.focus == fieldSubmit {
		submit = styles.FocusedSubmitButton
	}

	formRows := []string{styles.Subtitle.Render("Ajouter une ligue")}
	for _, field := range m.form {
		formRows = append(formRows, field.View())
	}
	formRows = append(formRows, submit)
	form := lipgloss.JoinVertical(lipgloss.Left, formRows...)

	var footer string
	if m.pending != nil {
		footer = styles.ConfirmBanner.Render(fmt.Sprintf("Confirmer la suppression ? %s  [o]ui / [n]on", m.pending.Name))
	} else {
		footer = styles.Subtitle.Render(fmt.Sprintf("%s %s · %s %s · %s %s",
			input.Default.Logout.Help().Key, input.Default.Logout.Help().Desc,
			input.Default.Config.Help().Key, input.Default.Config.Help().Desc,
			input.Default.Delete.Help().Key, input.Default.Delete.Help().Desc))
	}

	formHeight := lipgloss.Height(form)
	tableHeight := max(height-formHeight-lipgloss.Height(footer)-2, 3)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.table.Render(width, tableHeight),
		form,
		footer)
}
