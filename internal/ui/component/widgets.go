package component

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

func NewTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewPasswordInputModel(placeholder string) textinput.Model {
	input := NewTextInputModel("", placeholder)
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'

	return input
}

func NewUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}

// fit truncates value so it occupies at most width cells.
func fit(value string, width int) string {
	if width <= 0 {
		return ""
	}

	return truncate.StringWithTail(value, uint(width), "…") //nolint:gosec
}
