package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mrs-board/internal/config"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, cfg config.Config, deps Dependencies, buildVersion string, buildDate string, buildCommit string) *UI {
	zone.NewGlobal()

	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, cfg, deps, buildVersion, buildDate, buildCommit),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

// Send delivers a message from outside the ui, such as a directory change or a config reload.
func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
