package league

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/leighmacdonald/mrs-board/internal/store"
)

var (
	ErrLoad    = errors.New("failed to load leagues")
	ErrReplace = errors.New("failed to save leagues")
)

// Storage is the key/value persistence backing the repository. *store.Queries implements it.
type Storage interface {
	GetValue(ctx context.Context, key string) (string, error)
	GetUpdatedOn(ctx context.Context, key string) (int64, error)
	SetValue(ctx context.Context, arg store.SetValueParams) error
}

// Listener is called with the full collection after every successful write.
type Listener func(leagues []League)

// Repository persists the whole directory as one JSON document under a single key. Every
// mutation reads the full collection and writes it back.
type Repository struct {
	storage   Storage
	key       string
	clock     clockwork.Clock
	mu        sync.Mutex
	listeners []Listener
}

func NewRepository(storage Storage, key string, clock clockwork.Clock) *Repository {
	return &Repository{storage: storage, key: key, clock: clock}
}

// OnChange registers a listener that is notified after each Replace.
func (r *Repository) OnChange(listener Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, listener)
}

// Load returns the stored collection. If nothing has been stored yet, the seed
// collection is written and returned.
func (r *Repository) Load(ctx context.Context) ([]League, error) {
	r.mu.Lock()
	leagues, seeded, err := r.load(ctx)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if seeded {
		r.notify(leagues)
	}

	return leagues, nil
}

func (r *Repository) load(ctx context.Context) ([]League, bool, error) {
	value, errGet := r.storage.GetValue(ctx, r.key)
	if errGet != nil {
		if !errors.Is(errGet, sql.ErrNoRows) {
			return nil, false, errors.Join(errGet, ErrLoad)
		}

		seed := Seed()
		if err := r.write(ctx, seed); err != nil {
			return nil, false, err
		}

		slog.Info("Seeded league directory", slog.String("key", r.key), slog.Int("count", len(seed)))

		return seed, true, nil
	}

	var leagues []League
	if err := json.Unmarshal([]byte(value), &leagues); err != nil {
		return nil, false, errors.Join(err, ErrLoad)
	}

	if leagues == nil {
		leagues = []League{}
	}

	return leagues, false, nil
}

// Replace overwrites the stored collection wholesale and notifies listeners.
func (r *Repository) Replace(ctx context.Context, leagues []League) error {
	r.mu.Lock()
	err := r.write(ctx, leagues)
	r.mu.Unlock()

	if err != nil {
		return err
	}

	r.notify(leagues)

	return nil
}

// Add creates a new league using the current time in milliseconds as its id.
func (r *Repository) Add(ctx context.Context, name string, floor string, office string) (League, error) {
	r.mu.Lock()

	leagues, _, errLoad := r.load(ctx)
	if errLoad != nil {
		r.mu.Unlock()

		return League{}, errLoad
	}

	league := League{
		ID:     r.nextID(leagues),
		Name:   name,
		Floor:  floor,
		Office: office,
	}
	leagues = append(leagues, league)

	if err := r.write(ctx, leagues); err != nil {
		r.mu.Unlock()

		return League{}, err
	}

	r.mu.Unlock()
	r.notify(leagues)

	return league, nil
}

// Remove deletes the league with the given id. Unknown ids are ignored, the
// collection is still written back.
func (r *Repository) Remove(ctx context.Context, leagueID int64) error {
	r.mu.Lock()

	leagues, _, errLoad := r.load(ctx)
	if errLoad != nil {
		r.mu.Unlock()

		return errLoad
	}

	leagues = slices.DeleteFunc(leagues, func(league League) bool {
		return league.ID == leagueID
	})

	if err := r.write(ctx, leagues); err != nil {
		r.mu.Unlock()

		return err
	}

	r.mu.Unlock()
	r.notify(leagues)

	return nil
}

// UpdatedOn returns the time of the last write, or the zero time if nothing was written.
func (r *Repository) UpdatedOn(ctx context.Context) (time.Time, error) {
	updated, err := r.storage.GetUpdatedOn(ctx, r.key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}

		return time.Time{}, errors.Join(err, ErrLoad)
	}

	return time.UnixMilli(updated), nil
}

// nextID uses the current time in milliseconds, stepping forward past any id already in use.
func (r *Repository) nextID(leagues []League) int64 {
	leagueID := r.clock.Now().UnixMilli()
	for slices.ContainsFunc(leagues, func(league League) bool { return league.ID == leagueID }) {
		leagueID++
	}

	return leagueID
}

func (r *Repository) write(ctx context.Context, leagues []League) error {
	if leagues == nil {
		leagues = []League{}
	}

	body, errJSON := json.Marshal(leagues)
	if errJSON != nil {
		return errors.Join(errJSON, ErrReplace)
	}

	if err := r.storage.SetValue(ctx, store.SetValueParams{
		Key:       r.key,
		Value:     string(body),
		UpdatedOn: r.clock.Now().UnixMilli(),
	}); err != nil {
		return errors.Join(err, ErrReplace)
	}

	return nil
}

func (r *Repository) notify(leagues []League) {
	r.mu.Lock()
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(slices.Clone(leagues))
	}
}
