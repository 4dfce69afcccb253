// Package loadouts persists prayer loadouts into the flat config store
package loadouts

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutsmock github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts Repository

import (
	"context"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
)

// Repository defines the interface for loadout persistence.
// Names are matched exactly against the stored display name; two names that
// normalize to the same key address the same storage slot.
type Repository interface {
	// ListNames returns the display names of every stored loadout, sorted
	ListNames(ctx context.Context) (*ListNamesOutput, error)

	// Get returns a whole loadout (every book)
	// Returns errors.NotFound if no loadout has this exact name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// LoadBook returns the data saved for one book
	// Returns errors.NotFound if no order was ever stored for (name, book)
	LoadBook(ctx context.Context, input LoadBookInput) (*LoadBookOutput, error)

	// SaveBook upserts one book of a loadout, creating the loadout if needed.
	// Order, filters and hidden items for the book are written atomically.
	// Returns errors.InvalidArgument for blank names or missing order
	SaveBook(ctx context.Context, input SaveBookInput) (*SaveBookOutput, error)

	// Put replaces a whole loadout, overwriting any loadout stored under the
	// same normalized name
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes every key stored for the loadout
	// Returns errors.NotFound if no loadout has this exact name
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Rename moves every book of a loadout to a new name
	// Returns errors.NotFound if OldName does not exist
	// Returns errors.AlreadyExists if NewName is taken
	Rename(ctx context.Context, input RenameInput) (*RenameOutput, error)

	// GetLastUsed returns the name recorded by SetLastUsed
	GetLastUsed(ctx context.Context) (*GetLastUsedOutput, error)

	// SetLastUsed records the most recently saved or loaded loadout
	SetLastUsed(ctx context.Context, input SetLastUsedInput) error

	// ClearLastUsed forgets the last used loadout
	ClearLastUsed(ctx context.Context) error

	// FindOrphans reports keys in the loadout namespace that belong to no
	// readable loadout book
	FindOrphans(ctx context.Context) (*FindOrphansOutput, error)

	// RemoveKeys unsets raw keys in one batch
	// Returns errors.InvalidArgument for keys outside the loadout namespace
	RemoveKeys(ctx context.Context, input RemoveKeysInput) (*RemoveKeysOutput, error)
}

// ListNamesOutput defines the output for listing loadouts
type ListNamesOutput struct {
	Names []string
}

// GetInput defines the input for getting a loadout
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a loadout
type GetOutput struct {
	Loadout *loadout.Loadout
}

// LoadBookInput defines the input for loading one book of a loadout
type LoadBookInput struct {
	Name string
	Book loadout.BookID
}

// LoadBookOutput defines the output for loading one book of a loadout
type LoadBookOutput struct {
	Data *loadout.BookData
}

// SaveBookInput defines the input for saving one book of a loadout
type SaveBookInput struct {
	Name string
	Book loadout.BookID
	Data *loadout.BookData
}

// SaveBookOutput defines the output for saving one book of a loadout
type SaveBookOutput struct {
	// Created is true when no loadout existed under this key before
	Created bool
}

// PutInput defines the input for replacing a loadout
type PutInput struct {
	Loadout *loadout.Loadout
}

// PutOutput defines the output for replacing a loadout
type PutOutput struct {
	// Replaced is true when an existing loadout was overwritten
	Replaced bool
}

// DeleteInput defines the input for deleting a loadout
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a loadout
type DeleteOutput struct {
	KeysRemoved int
}

// RenameInput defines the input for renaming a loadout
type RenameInput struct {
	OldName string
	NewName string
}

// RenameOutput defines the output for renaming a loadout
type RenameOutput struct {
	KeysMoved int
}

// GetLastUsedOutput defines the output for reading the last used loadout
type GetLastUsedOutput struct {
	Name  string
	Found bool
}

// SetLastUsedInput defines the input for recording the last used loadout
type SetLastUsedInput struct {
	Name string
}
