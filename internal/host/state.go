// Package host defines the live game state the loadout manager reads and
// writes, and a config-store-backed implementation of it
package host

//go:generate mockgen -destination=mock/mock_state.go -package=hostmock github.com/KirkDiggler/prayer-loadouts/internal/host LiveState

import (
	"context"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
)

// BookVarbit is the varbit holding the active prayer book
const BookVarbit = "prayerbook"

// LiveState is the current prayer state of the game client.
// Every method must be called on the designated context (see executor).
type LiveState interface {
	// Book returns the active prayer book
	Book(ctx context.Context) (loadout.BookID, error)

	// Order returns the custom order for a book; ok is false when the book
	// uses the built-in order
	Order(ctx context.Context, book loadout.BookID) (value string, ok bool, err error)
	SetOrder(ctx context.Context, book loadout.BookID, value string) error
	ClearOrder(ctx context.Context, book loadout.BookID) error

	FilterFlag(ctx context.Context, field loadout.FilterField) (int, error)
	SetFilterFlag(ctx context.Context, field loadout.FilterField, value int) error

	// HiddenItems returns every hidden item of a book with its raw value
	HiddenItems(ctx context.Context, book loadout.BookID) (map[string]string, error)
	// ReplaceHiddenItems clears the book's hidden set and writes items
	ReplaceHiddenItems(ctx context.Context, book loadout.BookID, items map[string]string) error

	SessionActive(ctx context.Context) (bool, error)
	FeatureEnabled(ctx context.Context) (bool, error)

	// Redraw asks the client to re-render the prayer interface
	Redraw(ctx context.Context) error
}

// ReadFilters reads all six filter flags
func ReadFilters(ctx context.Context, state LiveState) (*loadout.FilterSettings, error) {
	f := &loadout.FilterSettings{}
	for _, field := range loadout.FilterFields {
		value, err := state.FilterFlag(ctx, field)
		if err != nil {
			return nil, err
		}
		f.Set(field, value)
	}
	return f, nil
}

// WriteFilters writes all six filter flags; nil writes zeros
func WriteFilters(ctx context.Context, state LiveState, f *loadout.FilterSettings) error {
	for _, field := range loadout.FilterFields {
		if err := state.SetFilterFlag(ctx, field, f.Get(field)); err != nil {
			return err
		}
	}
	return nil
}
