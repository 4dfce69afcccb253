// Package plugin is the boundary between the client (its events and the
// loadouts panel) and the loadout orchestrators. Nothing below it returns an
// error to the panel: failures are logged and reported as false or a no-op.
package plugin

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/host"
	"github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/exchange"
	loadoutorch "github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/pkg/idgen"
)

// DefaultAutoLoadDelay is how long after login the last loadout is applied
const DefaultAutoLoadDelay = 2 * time.Second

// Panel is the loadouts UI
type Panel interface {
	// Refresh rebuilds the panel from the handler's current answers
	Refresh(ctx context.Context)
}

// PanelFunc adapts a function to Panel
type PanelFunc func(ctx context.Context)

// Refresh calls f
func (f PanelFunc) Refresh(ctx context.Context) {
	f(ctx)
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Loadouts loadoutorch.Service
	Exchange exchange.Service
	State    host.LiveState
	Executor executor.Executor
	// Panel is optional
	Panel Panel
	// AutoLoadDelay defaults to DefaultAutoLoadDelay
	AutoLoadDelay time.Duration
	// IDGenerator names auto-load timers in logs; defaults to UUIDs
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Loadouts == nil {
		vb.RequiredField("Loadouts")
	}
	if c.Exchange == nil {
		vb.RequiredField("Exchange")
	}
	if c.State == nil {
		vb.RequiredField("State")
	}
	if c.Executor == nil {
		vb.RequiredField("Executor")
	}
	if c.AutoLoadDelay < 0 {
		vb.InvalidField("AutoLoadDelay", "cannot be negative")
	}

	return vb.Build()
}

// Handler reacts to client events and serves the panel
type Handler struct {
	loadouts      loadoutorch.Service
	exchange      exchange.Service
	state         host.LiveState
	exec          executor.Executor
	panel         Panel
	autoLoadDelay time.Duration
	ids           idgen.Generator

	loggedIn atomic.Bool

	mu       sync.Mutex
	autoLoad *time.Timer
	pending  sync.WaitGroup
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		loadouts:      cfg.Loadouts,
		exchange:      cfg.Exchange,
		state:         cfg.State,
		exec:          cfg.Executor,
		panel:         cfg.Panel,
		autoLoadDelay: cfg.AutoLoadDelay,
		ids:           cfg.IDGenerator,
	}
	if h.autoLoadDelay == 0 {
		h.autoLoadDelay = DefaultAutoLoadDelay
	}
	if h.ids == nil {
		h.ids = idgen.NewUUID("autoload")
	}
	return h, nil
}

// Startup records whether the client is already in session and, if so,
// primes the cached snapshot
func (h *Handler) Startup(ctx context.Context) error {
	err := h.exec.Run(ctx, func(ctx context.Context) error {
		active, err := h.state.SessionActive(ctx)
		if err != nil {
			return err
		}
		h.loggedIn.Store(active)
		if !active {
			return nil
		}
		return h.loadouts.UpdateCachedSnapshot(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "failed to start prayer loadouts")
	}

	slog.InfoContext(ctx, "prayer loadouts started", "logged_in", h.loggedIn.Load())
	return nil
}

// Shutdown cancels a pending auto-load and waits for a running one
func (h *Handler) Shutdown() {
	h.mu.Lock()
	if h.autoLoad != nil && h.autoLoad.Stop() {
		h.pending.Done()
	}
	h.autoLoad = nil
	h.mu.Unlock()

	h.pending.Wait()
}

// Wait blocks until a scheduled auto-load has run
func (h *Handler) Wait() {
	h.pending.Wait()
}

// LoggedIn reports the session state seen by the last event
func (h *Handler) LoggedIn() bool {
	return h.loggedIn.Load()
}

// OnSessionChanged handles a login or logout. Logging in schedules the last
// used loadout to be applied once the client has settled.
func (h *Handler) OnSessionChanged(ctx context.Context, loggedIn bool) {
	was := h.loggedIn.Swap(loggedIn)
	if was == loggedIn {
		return
	}

	h.refreshPanel(ctx)
	if loggedIn {
		h.scheduleAutoLoad(ctx)
	}
}

// OnVarbitChanged keeps the cached snapshot current when the book or a
// filter flag changes. Other varbits are ignored and return nil.
func (h *Handler) OnVarbitChanged(ctx context.Context, varbit string) *executor.Future {
	if _, ok := loadout.ParseFilterField(varbit); !ok && varbit != host.BookVarbit {
		return nil
	}

	return h.exec.Submit(ctx, func(ctx context.Context) error {
		if err := h.loadouts.UpdateCachedSnapshot(ctx); err != nil {
			slog.WarnContext(ctx, "failed to refresh cached snapshot", "varbit", varbit, "error", err)
			return err
		}
		h.refreshPanel(ctx)
		return nil
	})
}

// OnFeatureChanged handles the prayer reordering feature being toggled
func (h *Handler) OnFeatureChanged(ctx context.Context) {
	h.refreshPanel(ctx)
}

// FeatureEnabled reports whether prayer reordering is on
func (h *Handler) FeatureEnabled(ctx context.Context) bool {
	var enabled bool
	err := h.exec.Run(ctx, func(ctx context.Context) error {
		var err error
		enabled, err = h.state.FeatureEnabled(ctx)
		return err
	})
	return h.report(ctx, "feature_enabled", err) && enabled
}

// SaveLoadout saves the current book under name
func (h *Handler) SaveLoadout(ctx context.Context, name string) bool {
	_, err := h.loadouts.Save(ctx, &loadoutorch.SaveInput{Name: name})
	if err == nil {
		err = h.loadouts.UpdateCachedSnapshot(ctx)
	}
	h.refreshPanel(ctx)
	return h.report(ctx, "save", err, "loadout", name)
}

// LoadLoadout applies name to the current book. False means the load did not
// happen, including when it had no data for the current book or did not
// finish within the await timeout.
func (h *Handler) LoadLoadout(ctx context.Context, name string) bool {
	_, err := h.loadouts.Load(ctx, &loadoutorch.LoadInput{
		Name:      name,
		OnApplied: h.refreshPanel,
	})
	return h.report(ctx, "load", err, "loadout", name)
}

// DeleteLoadout removes name
func (h *Handler) DeleteLoadout(ctx context.Context, name string) bool {
	_, err := h.loadouts.Delete(ctx, &loadoutorch.DeleteInput{Name: name})
	h.refreshPanel(ctx)
	return h.report(ctx, "delete", err, "loadout", name)
}

// RenameLoadout renames oldName, refusing names already in use
func (h *Handler) RenameLoadout(ctx context.Context, oldName, newName string) bool {
	_, err := h.loadouts.Rename(ctx, &loadoutorch.RenameInput{OldName: oldName, NewName: newName})
	h.refreshPanel(ctx)
	return h.report(ctx, "rename", err, "from", oldName, "to", newName)
}

// ExportLoadout copies name to the clipboard
func (h *Handler) ExportLoadout(ctx context.Context, name string) bool {
	_, err := h.exchange.Export(ctx, &exchange.ExportInput{Name: name})
	return h.report(ctx, "export", err, "loadout", name)
}

// ImportLoadout stores the clipboard's loadout, under name when non-blank
func (h *Handler) ImportLoadout(ctx context.Context, name string) bool {
	_, err := h.exchange.Import(ctx, &exchange.ImportInput{Name: name})
	h.refreshPanel(ctx)
	return h.report(ctx, "import", err, "loadout", name)
}

// ResetToDefaults restores default prayer settings for the current book
func (h *Handler) ResetToDefaults(ctx context.Context) bool {
	_, err := h.loadouts.ResetToDefaults(ctx, &loadoutorch.ResetInput{OnApplied: h.refreshPanel})
	return h.report(ctx, "reset", err)
}

// ActiveLoadoutName returns the saved loadout matching the live state
func (h *Handler) ActiveLoadoutName(ctx context.Context) (string, bool) {
	out, err := h.loadouts.ActiveLoadout(ctx, &loadoutorch.ActiveLoadoutInput{SessionActive: h.loggedIn.Load()})
	if !h.report(ctx, "active", err) {
		return "", false
	}
	return out.Name, out.Found
}

// LoadoutNames lists saved loadouts
func (h *Handler) LoadoutNames(ctx context.Context) []string {
	out, err := h.loadouts.ListNames(ctx)
	if !h.report(ctx, "list", err) {
		return nil
	}
	return out.Names
}

// LastLoadoutName returns the most recently saved or loaded loadout
func (h *Handler) LastLoadoutName(ctx context.Context) (string, bool) {
	out, err := h.loadouts.LastUsed(ctx)
	if !h.report(ctx, "last_used", err) {
		return "", false
	}
	return out.Name, out.Found
}

func (h *Handler) scheduleAutoLoad(ctx context.Context) {
	id := h.ids.Generate()
	ctx = context.WithoutCancel(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.autoLoad != nil && h.autoLoad.Stop() {
		h.pending.Done()
	}

	h.pending.Add(1)
	h.autoLoad = time.AfterFunc(h.autoLoadDelay, func() {
		defer h.pending.Done()
		h.runAutoLoad(ctx, id)
	})

	slog.DebugContext(ctx, "scheduled auto-load", "timer_id", id, "delay", h.autoLoadDelay)
}

func (h *Handler) runAutoLoad(ctx context.Context, id string) {
	if !h.loggedIn.Load() {
		slog.DebugContext(ctx, "skipping auto-load after logout", "timer_id", id)
		return
	}

	applied := false
	err := h.exec.Run(ctx, func(ctx context.Context) error {
		if err := h.loadouts.UpdateCachedSnapshot(ctx); err != nil {
			return err
		}

		last, err := h.loadouts.LastUsed(ctx)
		if err != nil || !last.Found {
			return err
		}
		names, err := h.loadouts.ListNames(ctx)
		if err != nil || !slices.Contains(names.Names, last.Name) {
			return err
		}

		_, err = h.loadouts.Load(ctx, &loadoutorch.LoadInput{
			Name:      last.Name,
			OnApplied: h.refreshPanel,
		})
		if err != nil {
			slog.InfoContext(ctx, "auto-load skipped", "timer_id", id, "loadout", last.Name, "error", err)
			return nil
		}
		applied = true
		slog.InfoContext(ctx, "auto-loaded last loadout", "timer_id", id, "loadout", last.Name)
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "auto-load failed", "timer_id", id, "error", err)
	}
	if !applied {
		h.refreshPanel(ctx)
	}
}

func (h *Handler) refreshPanel(ctx context.Context) {
	if h.panel != nil {
		h.panel.Refresh(ctx)
	}
}

// report logs err and converts it to the panel's success flag
func (h *Handler) report(ctx context.Context, op string, err error, attrs ...any) bool {
	if err == nil {
		return true
	}

	attrs = append(attrs, "op", op, "code", errors.GetCode(err).String(), "error", err)
	if meta := errors.GetMeta(err); len(meta) > 0 {
		attrs = append(attrs, "meta", meta)
	}
	switch {
	case errors.IsInternal(err), errors.IsUnavailable(err), errors.IsDeadlineExceeded(err):
		slog.ErrorContext(ctx, "loadout operation failed", attrs...)
	case errors.IsCanceled(err):
		slog.DebugContext(ctx, "loadout operation abandoned", attrs...)
	default:
		slog.InfoContext(ctx, "loadout operation rejected", attrs...)
	}
	return false
}
