package command

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/mrs-board/internal/config"
	"github.com/leighmacdonald/mrs-board/internal/league"
	"github.com/leighmacdonald/mrs-board/internal/ui/model"
)

// Directory is the league store as seen by the ui.
type Directory interface {
	Load(ctx context.Context) ([]league.League, error)
	Add(ctx context.Context, name string, floor string, office string) (league.League, error)
	Remove(ctx context.Context, leagueID int64) error
	UpdatedOn(ctx context.Context) (time.Time, error)
}

// BackdropFetcher loads screensaver backgrounds.
type BackdropFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}

// LeaguesMsg carries the full, unsorted collection after it was loaded or replaced.
type LeaguesMsg struct {
	Leagues []league.League
}

func LoadLeagues(ctx context.Context, directory Directory) tea.Cmd {
	return func() tea.Msg {
		leagues, err := directory.Load(ctx)
		if err != nil {
			return StatusMsg{Message: err.Error(), Err: true}
		}

		return LeaguesMsg{Leagues: leagues}
	}
}

// AddLeague stores a new entry. The refreshed collection reaches the ui through the
// directory change listener.
func AddLeague(ctx context.Context, directory Directory, name string, floor string, office string) tea.Cmd {
	return func() tea.Msg {
		if _, err := directory.Add(ctx, name, floor, office); err != nil {
			return StatusMsg{Message: err.Error(), Err: true}
		}

		return StatusMsg{Message: "Entrée ajoutée"}
	}
}

func RemoveLeague(ctx context.Context, directory Directory, leagueID int64) tea.Cmd {
	return func() tea.Msg {
		if err := directory.Remove(ctx, leagueID); err != nil {
			return StatusMsg{Message: err.Error(), Err: true}
		}

		return StatusMsg{Message: "Entrée supprimée"}
	}
}

// ConfirmDeleteMsg asks the user to confirm removal of a league.
type ConfirmDeleteMsg struct {
	ID   int64
	Name string
}

func ConfirmDelete(leagueID int64, name string) tea.Cmd {
	return func() tea.Msg { return ConfirmDeleteMsg{ID: leagueID, Name: name} }
}

// UpdatedOnMsg reports when the directory was last written.
type UpdatedOnMsg struct {
	UpdatedOn time.Time
}

func LoadUpdatedOn(ctx context.Context, directory Directory) tea.Cmd {
	return func() tea.Msg {
		updated, err := directory.UpdatedOn(ctx)
		if err != nil {
			return StatusMsg{Message: err.Error(), Err: true}
		}

		return UpdatedOnMsg{UpdatedOn: updated}
	}
}

type IdleTickMsg struct{}

// IdleTick fires once a second to advance the idle counter.
func IdleTick() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return IdleTickMsg{}
	})
}

type ClockTickMsg struct {
	Time time.Time
}

func ClockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg{Time: t}
	})
}

// SwapBackdropMsg completes a background rotation once the fade out delay has elapsed.
type SwapBackdropMsg struct{}

func SwapBackdropAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return SwapBackdropMsg{}
	})
}

type BackdropLoadedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

func FetchBackdrop(ctx context.Context, fetcher BackdropFetcher, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := fetcher.Fetch(ctx, url)

		return BackdropLoadedMsg{URL: url, Image: img, Err: err}
	}
}

// OpenAdminMsg requests the admin panel to be shown, resetting its session.
type OpenAdminMsg struct{}

func OpenAdmin() tea.Cmd {
	return func() tea.Msg { return OpenAdminMsg{} }
}
