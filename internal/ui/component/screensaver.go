package component

import (
	"image"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/mrs-board/internal/backdrop"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"github.com/leighmacdonald/mrs-board/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const captionHeight = 3

type renderKey struct {
	url     string
	width   int
	height  int
	opacity float64
	loaded  bool
}

// renderCache is shared between copies of the model so a background is drawn once per change.
type renderCache struct {
	key    renderKey
	output string
}

// ScreensaverModel draws the full screen idle overlay. Images arrive through BackdropLoadedMsg;
// a background that failed to load is drawn as a blank layer.
type ScreensaverModel struct {
	images map[string]image.Image
	failed map[string]bool
	cache  *renderCache
}

func NewScreensaverModel() ScreensaverModel {
	return ScreensaverModel{
		images: map[string]image.Image{},
		failed: map[string]bool{},
		cache:  &renderCache{},
	}
}

func (m ScreensaverModel) Init() tea.Cmd {
	return nil
}

func (m ScreensaverModel) Update(msg tea.Msg) (ScreensaverModel, tea.Cmd) {
	if msg, ok := msg.(command.BackdropLoadedMsg); ok {
		if msg.Err != nil {
			slog.Warn("Failed to load background", slog.String("url", msg.URL), slog.String("error", msg.Err.Error()))
			m.failed[msg.URL] = true

			return m, nil
		}

		m.images[msg.URL] = msg.Image
	}

	return m, nil
}

// Known reports whether url has already been loaded or has failed to load.
func (m ScreensaverModel) Known(url string) bool {
	_, loaded := m.images[url]

	return loaded || m.failed[url]
}

func (m ScreensaverModel) Render(url string, opacity float64, width int, height int, title string, now string) string {
	bgHeight := max(height-captionHeight, 0)
	img := m.images[url]
	key := renderKey{url: url, width: width, height: bgHeight, opacity: opacity, loaded: img != nil}

	if m.cache.key != key || m.cache.output == "" {
		m.cache.key = key
		m.cache.output = backdrop.Render(img, width, bgHeight, opacity)
	}

	caption := lipgloss.JoinVertical(lipgloss.Center,
		styles.ScreensaverClock.Render(now),
		styles.ScreensaverTitle.Render(wordwrap.String(title, max(width-2, 1))),
		styles.ScreensaverCaption.Render("Touchez une touche pour afficher l'annuaire"))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.cache.output,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, caption))
}
