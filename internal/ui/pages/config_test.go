package pages_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
	"github.com/leighmacdonald/mrs-board/internal/ui/pages"
	"github.com/stretchr/testify/require"
)

type memoryWriter struct {
	written []config.Config
}

func (w *memoryWriter) Write(cfg config.Config) error {
	w.written = append(w.written, cfg)

	return nil
}

func (w *memoryWriter) Path() string {
	return ""
}

func testConfig() config.Config {
	return config.Config{
		Title:       "Maison Régionale des Sports",
		Locale:      "fr-FR",
		StorageKey:  config.DefaultStorageKey,
		IdleLimit:   10,
		RotateEvery: 5,
		FadeDelayMs: 500,
		FadeOpacity: 0.6,
	}
}

func openConfig(writer config.Writer) *pages.Config {
	page := pages.NewConfig(testConfig(), writer)
	page, _ = page.Update(model.ViewState{Page: model.PageConfig, Width: 100, Height: 40, Content: 38})

	return page
}

func clearField(page *pages.Config, count int) *pages.Config {
	for range count {
		page, _ = page.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}

	return page
}

func TestConfigSave(t *testing.T) {
	writer := &memoryWriter{}
	page := openConfig(writer)

	// Title is left as is, the idle limit is changed to 30.
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page = clearField(page, 2)
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("30")})
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, writer.written, 1)
	require.Equal(t, 30, writer.written[0].IdleLimit)
	require.Equal(t, "Maison Régionale des Sports", writer.written[0].Title)

	var (
		gotConfig bool
		gotView   model.ViewState
	)

	for _, msg := range collect(cmd) {
		switch msg := msg.(type) {
		case config.Config:
			gotConfig = true
			require.Equal(t, 30, msg.IdleLimit)
		case model.ViewState:
			gotView = msg
		case command.StatusMsg:
			require.False(t, msg.Err)
		}
	}

	require.True(t, gotConfig)
	require.Equal(t, model.PageAdmin, gotView.Page)
}

func TestConfigRejectsInvalid(t *testing.T) {
	writer := &memoryWriter{}
	page := openConfig(writer)

	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page = clearField(page, 2)
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-1")})
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Empty(t, writer.written)

	msgs := collect(cmd)
	require.Len(t, msgs, 1)

	status, ok := msgs[0].(command.StatusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
}

func TestConfigEscapeReturnsToAdmin(t *testing.T) {
	page := openConfig(&memoryWriter{})

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	require.Equal(t, model.PageAdmin, msgs[0].(model.ViewState).Page) //nolint:forcetypeassert
}

func TestConfigIgnoresKeysElsewhere(t *testing.T) {
	writer := &memoryWriter{}
	page := pages.NewConfig(testConfig(), writer)
	page, _ = page.Update(model.ViewState{Page: model.PageBoard})

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, cmd)
}
