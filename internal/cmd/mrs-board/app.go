package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui"
	"github.com/leighmacdonald/mrs-board/internal/ui/command"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	ui            UI
	config        config.Config
	repo          *league.Repository
	uiUpdates     chan any
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, repo *league.Repository, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		repo:          repo,
		configUpdates: configUpdates,
		uiUpdates:     make(chan any),
	}
}

// Start creates the ui and runs it alongside the background routers until the ui exits.
func (app *App) Start(ctx context.Context, deps ui.Dependencies) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.createUI(ctx, deps)

	// Every write, including the seed on first load, refreshes the ui.
	app.repo.OnChange(func(leagues []league.League) {
		select {
		case app.uiUpdates <- command.LeaguesMsg{Leagues: leagues}:
		case <-ctx.Done():
		}
	})

	tasks, taskCtx := errgroup.WithContext(ctx)

	tasks.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})

	tasks.Go(func() error {
		app.uiSender(taskCtx)

		return nil
	})

	tasks.Go(func() error {
		app.configRouter(taskCtx)

		return nil
	})

	if err := tasks.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Join(err, errApp)
	}

	return nil
}

// configRouter forwards externally edited configs to the ui.
func (app *App) configRouter(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded", slog.String("title", conf.Title), slog.String("locale", conf.Locale))
			app.config = conf
			select {
			case app.uiUpdates <- conf:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// uiSender handles forwarding all events to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case msg := <-app.uiUpdates:
			if app.ui != nil {
				app.ui.Send(msg)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, deps ui.Dependencies) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, deps, BuildVersion, BuildDate, BuildCommit)
	}

	return app.ui
}
