package pages

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/component"
	"github.com/leighmacdonald/mrs-board/internal/ui/input"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
)

type configIdx int

const (
	fieldTitle configIdx = iota
	fieldLocale
	fieldIdleLimit
	fieldRotateEvery
	fieldSave
	configFieldCount
)

type Config struct {
	fields     []*component.LabeledInputModel
	focusIndex configIdx
	config     config.Config
	viewState  model.ViewState
	loader     config.Writer
}

func NewConfig(cfg config.Config, loader config.Writer) *Config {
	page := &Config{
		config: cfg,
		fields: []*component.LabeledInputModel{
			component.NewLabeledInput("Titre", component.NewTextInputModel(cfg.Title, "Maison Régionale des Sports"),
				component.NotEmptyValidator{}),
			component.NewLabeledInput("Langue", component.NewTextInputModel(cfg.Locale, "fr-FR"),
				component.LocaleValidator{}),
			component.NewLabeledInput("Veille (s)", component.NewTextInputModel(strconv.Itoa(cfg.IdleLimit), "10"),
				component.PositiveIntValidator{}),
			component.NewLabeledInput("Rotation (s)", component.NewTextInputModel(strconv.Itoa(cfg.RotateEvery), "5"),
				component.PositiveIntValidator{}),
		},
		focusIndex: fieldTitle,
		loader:     loader,
	}

	return page
}

func (m *Config) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Config) Update(msg tea.Msg) (*Config, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		entering := msg.Page == model.PageConfig && m.viewState.Page != model.PageConfig
		m.viewState = msg
		if entering {
			m.reset()

			return m, m.focus()
		}
	case config.Config:
		m.config = msg
	case tea.KeyMsg:
		if m.viewState.Page != model.PageConfig {
			return m, nil
		}

		return m.onKey(msg)
	}

	return m, nil
}

func (m *Config) onKey(msg tea.KeyMsg) (*Config, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Back):
		m.viewState.Page = model.PageAdmin

		return m, command.SetViewState(m.viewState)
	case key.Matches(msg, input.Default.Up, input.Default.PrevField):
		m.focusIndex = configIdx(input.Previous.Step(int(m.focusIndex), int(configFieldCount)))

		return m, m.focus()
	case key.Matches(msg, input.Default.Down, input.Default.NextField):
		m.focusIndex = configIdx(input.Next.Step(int(m.focusIndex), int(configFieldCount)))

		return m, m.focus()
	case key.Matches(msg, input.Default.Accept):
		if m.focusIndex != fieldSave {
			m.focusIndex++

			return m, m.focus()
		}

		return m, m.save()
	}

	if m.focusIndex == fieldSave {
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focusIndex], cmd = m.fields[m.focusIndex].Update(msg)

	return m, cmd
}

func (m *Config) save() tea.Cmd {
	for _, field := range m.fields {
		if field.Input.Err != nil {
			return command.SetStatusMessage("Configuration invalide, enregistrement impossible", true)
		}
	}

	idleLimit, errIdle := strconv.Atoi(m.fields[fieldIdleLimit].Value())
	rotateEvery, errRotate := strconv.Atoi(m.fields[fieldRotateEvery].Value())
	if errIdle != nil || errRotate != nil {
		return command.SetStatusMessage("Configuration invalide, enregistrement impossible", true)
	}

	cfg := m.config
	cfg.Title = m.fields[fieldTitle].Value()
	cfg.Locale = m.fields[fieldLocale].Value()
	cfg.IdleLimit = idleLimit
	cfg.RotateEvery = rotateEvery

	if err := m.loader.Write(cfg); err != nil {
		return command.SetStatusMessage(err.Error(), true)
	}

	m.config = cfg
	m.viewState.Page = model.PageAdmin

	return tea.Batch(
		command.SetConfig(cfg),
		command.SetStatusMessage("Configuration enregistrée", false),
		command.SetViewState(m.viewState))
}

// reset loads the current config values into the fields.
func (m *Config) reset() {
	values := []string{
		m.config.Title,
		m.config.Locale,
		strconv.Itoa(m.config.IdleLimit),
		strconv.Itoa(m.config.RotateEvery),
	}

	for idx, field := range m.fields {
		field.Reset()
		field.Input.SetValue(values[idx])
	}

	m.focusIndex = fieldTitle
}

func (m *Config) focus() tea.Cmd {
	var cmd tea.Cmd
	for idx, field := range m.fields {
		if configIdx(idx) == m.focusIndex {
			cmd = field.Focus()
		} else {
			field.Blur()
		}
	}

	return cmd
}

func (m *Config) View() string {
	fields := make([]string, 0, len(m.fields)+2)
	for _, field := range m.fields {
		fields = append(fields, field.View())
	}

	fields = append(fields, "")
	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	if path := m.loader.Path(); path != "" {
		fields = append(fields, "", styles.DetailRow("Fichier", path))
	}

	return model.Container("Configuration", m.viewState.Width-2, m.viewState.Content-2,
		lipgloss.JoinVertical(lipgloss.Left, fields...), true)
}
