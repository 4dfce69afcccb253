package loadout

import (
	"context"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
)

// AppliedFunc is called on the designated context once a load or reset has
// written live state and refreshed the cached snapshot
type AppliedFunc func(ctx context.Context)

// SaveInput defines the input for saving the current prayer state
type SaveInput struct {
	Name string
}

// SaveOutput defines the output for saving the current prayer state
type SaveOutput struct {
	Book    loadout.BookID
	Created bool
}

// LoadInput defines the input for applying a loadout
type LoadInput struct {
	Name      string
	OnApplied AppliedFunc
}

// LoadOutput defines the output for applying a loadout
type LoadOutput struct {
	Book loadout.BookID
}

// DeleteInput defines the input for deleting a loadout
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a loadout
type DeleteOutput struct{}

// RenameInput defines the input for renaming a loadout
type RenameInput struct {
	OldName string
	NewName string
}

// RenameOutput defines the output for renaming a loadout
type RenameOutput struct{}

// ActiveLoadoutInput defines the input for active loadout detection
type ActiveLoadoutInput struct {
	SessionActive bool
}

// ActiveLoadoutOutput defines the output for active loadout detection
type ActiveLoadoutOutput struct {
	Name  string
	Found bool
}

// ResetInput defines the input for restoring default prayer settings
type ResetInput struct {
	OnApplied AppliedFunc
}

// ResetOutput defines the output for restoring default prayer settings
type ResetOutput struct {
	Book loadout.BookID
}

// ListNamesOutput defines the output for listing loadouts
type ListNamesOutput struct {
	Names []string
}

// LastUsedOutput defines the output for reading the last used loadout
type LastUsedOutput struct {
	Name  string
	Found bool
}

// CachedSnapshot is the book and filter fingerprint observed by the most
// recent refresh
type CachedSnapshot struct {
	Book              loadout.BookID
	FilterFingerprint string
	Refreshed         bool
}
