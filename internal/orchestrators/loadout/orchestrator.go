// Package loadout implements the loadout orchestrator: saving live prayer
// state into named loadouts, applying them back, and detecting which saved
// loadout matches what the player currently has
package loadout

//go:generate mockgen -destination=mock/mock_service.go -package=loadoutmock github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/loadout Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/host"
	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
)

// Service defines the interface for loadout operations.
// Operations touching live state run on the executor's designated context.
type Service interface {
	// Save snapshots the current book's order, filters and hidden prayers
	// Returns errors.FailedPrecondition when not in session or the feature is off
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load applies the loadout's data for the current book
	// Returns errors.NotFound when nothing is saved for the current book
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error)

	// ActiveLoadout returns the saved loadout matching the live state, if any
	ActiveLoadout(ctx context.Context, input *ActiveLoadoutInput) (*ActiveLoadoutOutput, error)

	// ResetToDefaults restores the built-in order, shows every prayer and
	// turns every filter off for the current book
	ResetToDefaults(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// UpdateCachedSnapshot re-reads the current book and filter flags
	UpdateCachedSnapshot(ctx context.Context) error

	// Snapshot returns the cached book and filter fingerprint
	Snapshot() CachedSnapshot

	ListNames(ctx context.Context) (*ListNamesOutput, error)
	LastUsed(ctx context.Context) (*LastUsedOutput, error)
}

// Config holds the dependencies for the loadout orchestrator
type Config struct {
	Repository loadouts.Repository
	State      host.LiveState
	Executor   executor.Executor
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.State == nil {
		vb.RequiredField("State")
	}
	if c.Executor == nil {
		vb.RequiredField("Executor")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  loadouts.Repository
	state host.LiveState
	exec  executor.Executor

	mu     sync.RWMutex
	cached CachedSnapshot
}

// NewOrchestrator creates a new loadout orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:  cfg.Repository,
		state: cfg.State,
		exec:  cfg.Executor,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := input.Name
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("loadout name is required")
	}

	var out *SaveOutput
	err := o.exec.Run(ctx, func(ctx context.Context) error {
		if err := o.checkPreconditions(ctx); err != nil {
			return err
		}

		book, data, err := o.readBook(ctx)
		if err != nil {
			return err
		}

		saved, err := o.repo.SaveBook(ctx, loadouts.SaveBookInput{Name: name, Book: book, Data: data})
		if err != nil {
			return err
		}

		if err := o.repo.SetLastUsed(ctx, loadouts.SetLastUsedInput{Name: name}); err != nil {
			return err
		}

		out = &SaveOutput{Book: book, Created: saved.Created}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout %s", name)
	}

	slog.InfoContext(ctx, "saved loadout", "loadout", name, "book", int(out.Book), "created", out.Created)
	return out, nil
}

func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := input.Name
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("loadout name is required")
	}

	var (
		book loadout.BookID
		data *loadout.BookData
	)

	task := executor.Pipeline(
		executor.Step{Name: "check", Run: func(ctx context.Context) error {
			if err := o.checkPreconditions(ctx); err != nil {
				return err
			}
			var err error
			book, err = o.state.Book(ctx)
			if err != nil {
				return err
			}
			loaded, err := o.repo.LoadBook(ctx, loadouts.LoadBookInput{Name: name, Book: book})
			if err != nil {
				return err
			}
			data = loaded.Data
			return nil
		}},
		executor.Step{Name: "order", Run: func(ctx context.Context) error {
			if data.Order.IsDefault() {
				return o.state.ClearOrder(ctx, book)
			}
			return o.state.SetOrder(ctx, book, data.Order.String())
		}},
		executor.Step{Name: "hidden", Run: func(ctx context.Context) error {
			return o.state.ReplaceHiddenItems(ctx, book, data.Hidden)
		}},
		executor.Step{Name: "filters", Run: func(ctx context.Context) error {
			return host.WriteFilters(ctx, o.state, data.Filters)
		}},
		executor.Step{Name: "refresh", Run: o.refresh},
		executor.Step{Name: "redraw", Run: o.state.Redraw},
		executor.Step{Name: "last_used", Run: func(ctx context.Context) error {
			return o.repo.SetLastUsed(ctx, loadouts.SetLastUsedInput{Name: name})
		}},
		executor.Step{Name: "on_applied", Run: notify(input.OnApplied)},
	)

	if err := o.exec.Run(ctx, task); err != nil {
		return nil, errors.Wrapf(err, "failed to load loadout %s", name)
	}

	slog.InfoContext(ctx, "loaded loadout", "loadout", name, "book", int(book))
	return &LoadOutput{Book: book}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Delete(ctx, loadouts.DeleteInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete loadout %s", input.Name)
	}

	slog.InfoContext(ctx, "deleted loadout", "loadout", input.Name, "keys", out.KeysRemoved)
	return &DeleteOutput{}, nil
}

func (o *orchestrator) Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Rename(ctx, loadouts.RenameInput{OldName: input.OldName, NewName: input.NewName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to rename loadout %s", input.OldName)
	}

	slog.InfoContext(ctx, "renamed loadout", "from", input.OldName, "to", input.NewName, "keys", out.KeysMoved)
	return &RenameOutput{}, nil
}

func (o *orchestrator) ActiveLoadout(ctx context.Context, input *ActiveLoadoutInput) (*ActiveLoadoutOutput, error) {
	if input == nil || !input.SessionActive {
		return &ActiveLoadoutOutput{}, nil
	}

	var snap loadout.Snapshot
	err := o.exec.Run(ctx, func(ctx context.Context) error {
		cached := o.Snapshot()
		if !cached.Refreshed {
			if err := o.refresh(ctx); err != nil {
				return err
			}
			cached = o.Snapshot()
		}

		value, ok, err := o.state.Order(ctx, cached.Book)
		if err != nil {
			return err
		}
		hidden, err := o.state.HiddenItems(ctx, cached.Book)
		if err != nil {
			return err
		}

		snap = loadout.Snapshot{
			Book:              cached.Book,
			Order:             loadout.OrderFromLive(value, ok),
			HiddenFingerprint: loadout.HiddenFingerprint(hidden),
			FilterFingerprint: cached.FilterFingerprint,
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read live prayer state")
	}

	last, err := o.repo.GetLastUsed(ctx)
	if err != nil {
		return nil, err
	}
	if last.Found {
		matched, err := o.matches(ctx, last.Name, snap)
		if err != nil {
			return nil, err
		}
		if matched {
			return &ActiveLoadoutOutput{Name: last.Name, Found: true}, nil
		}
	}

	names, err := o.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names.Names {
		if last.Found && name == last.Name {
			continue
		}
		matched, err := o.matches(ctx, name, snap)
		if err != nil {
			return nil, err
		}
		if matched {
			return &ActiveLoadoutOutput{Name: name, Found: true}, nil
		}
	}

	return &ActiveLoadoutOutput{}, nil
}

func (o *orchestrator) ResetToDefaults(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	var onApplied AppliedFunc
	if input != nil {
		onApplied = input.OnApplied
	}

	var book loadout.BookID
	task := executor.Pipeline(
		executor.Step{Name: "check", Run: func(ctx context.Context) error {
			if err := o.checkPreconditions(ctx); err != nil {
				return err
			}
			var err error
			book, err = o.state.Book(ctx)
			return err
		}},
		executor.Step{Name: "order", Run: func(ctx context.Context) error {
			return o.state.ClearOrder(ctx, book)
		}},
		executor.Step{Name: "hidden", Run: func(ctx context.Context) error {
			return o.state.ReplaceHiddenItems(ctx, book, nil)
		}},
		executor.Step{Name: "filters", Run: func(ctx context.Context) error {
			return host.WriteFilters(ctx, o.state, nil)
		}},
		executor.Step{Name: "refresh", Run: o.refresh},
		executor.Step{Name: "last_used", Run: o.repo.ClearLastUsed},
		executor.Step{Name: "redraw", Run: o.state.Redraw},
		executor.Step{Name: "on_applied", Run: notify(onApplied)},
	)

	if err := o.exec.Run(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to reset prayers")
	}

	slog.InfoContext(ctx, "reset prayers to defaults", "book", int(book))
	return &ResetOutput{Book: book}, nil
}

func (o *orchestrator) UpdateCachedSnapshot(ctx context.Context) error {
	return o.exec.Run(ctx, o.refresh)
}

func (o *orchestrator) ListNames(ctx context.Context) (*ListNamesOutput, error) {
	out, err := o.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	return &ListNamesOutput{Names: out.Names}, nil
}

func (o *orchestrator) LastUsed(ctx context.Context) (*LastUsedOutput, error) {
	out, err := o.repo.GetLastUsed(ctx)
	if err != nil {
		return nil, err
	}
	return &LastUsedOutput{Name: out.Name, Found: out.Found}, nil
}

// refresh must run on the designated context
func (o *orchestrator) refresh(ctx context.Context) error {
	book, err := o.state.Book(ctx)
	if err != nil {
		return err
	}
	filters, err := host.ReadFilters(ctx, o.state)
	if err != nil {
		return err
	}

	o.mu.Lock()
	o.cached = CachedSnapshot{
		Book:              book,
		FilterFingerprint: filters.Fingerprint(),
		Refreshed:         true,
	}
	o.mu.Unlock()

	slog.DebugContext(ctx, "refreshed cached snapshot", "book", int(book), "filters", filters.Fingerprint())
	return nil
}

func (o *orchestrator) Snapshot() CachedSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.cached
}

func (o *orchestrator) checkPreconditions(ctx context.Context) error {
	active, err := o.state.SessionActive(ctx)
	if err != nil {
		return err
	}
	if !active {
		return errors.FailedPrecondition("not logged in")
	}

	enabled, err := o.state.FeatureEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return errors.FailedPrecondition("prayer reordering is disabled")
	}
	return nil
}

// readBook snapshots the live state of the current book
func (o *orchestrator) readBook(ctx context.Context) (loadout.BookID, *loadout.BookData, error) {
	book, err := o.state.Book(ctx)
	if err != nil {
		return 0, nil, err
	}

	value, ok, err := o.state.Order(ctx, book)
	if err != nil {
		return 0, nil, err
	}

	filters, err := host.ReadFilters(ctx, o.state)
	if err != nil {
		return 0, nil, err
	}

	hidden, err := o.state.HiddenItems(ctx, book)
	if err != nil {
		return 0, nil, err
	}

	return book, &loadout.BookData{
		Order:   loadout.OrderFromLive(value, ok),
		Filters: filters,
		Hidden:  hidden,
	}, nil
}

func (o *orchestrator) matches(ctx context.Context, name string, snap loadout.Snapshot) (bool, error) {
	out, err := o.repo.LoadBook(ctx, loadouts.LoadBookInput{Name: name, Book: snap.Book})
	if errors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	l := loadout.New(name)
	l.SetBook(snap.Book, out.Data)
	return l.Matches(snap), nil
}

func notify(fn AppliedFunc) executor.Task {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context) error {
		fn(ctx)
		return nil
	}
}
