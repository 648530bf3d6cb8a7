package component

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
	"golang.org/x/text/language"
)

var (
	errLocaleInvalid = errors.New("invalid locale")
	errNumberInvalid = errors.New("invalid number")
	errEmpty         = errors.New("cannot be empty")
)

type InputValidator interface {
	Validate(string) error
}

// NewLabeledInput returns a text input with a label. Validators are optional, the add form
// accepts any free text.
func NewLabeledInput(label string, input textinput.Model, validators ...InputValidator) *LabeledInputModel {
	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &LabeledInputModel{Input: input, Label: label}
}

type LabeledInputModel struct {
	Label string
	Input textinput.Model
}

func (m *LabeledInputModel) Init() tea.Cmd {
	return nil
}

func (m *LabeledInputModel) Update(msg tea.Msg) (*LabeledInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *LabeledInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Erreur: " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PanelLabel.Render(m.Label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

func (m *LabeledInputModel) Value() string {
	return m.Input.Value()
}

func (m *LabeledInputModel) Reset() {
	m.Input.Reset()
	m.Input.Err = nil
}

func (m *LabeledInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *LabeledInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

type LocaleValidator struct{}

func (v LocaleValidator) Validate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: %w", errLocaleInvalid, errEmpty)
	}

	if _, err := language.Parse(value); err != nil {
		return errors.Join(err, errLocaleInvalid)
	}

	return nil
}

type PositiveIntValidator struct{}

func (v PositiveIntValidator) Validate(value string) error {
	number, err := strconv.Atoi(value)
	if err != nil {
		return errors.Join(err, errNumberInvalid)
	}

	if number <= 0 {
		return fmt.Errorf("%w: must be greater than 0", errNumberInvalid)
	}

	return nil
}

type NotEmptyValidator struct{}

func (v NotEmptyValidator) Validate(value string) error {
	if value == "" {
		return errEmpty
	}

	return nil
}
