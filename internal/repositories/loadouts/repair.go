package loadouts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/prayer-loadouts/internal/configstore"
	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Reasons a key is reported by FindOrphans
const (
	OrphanNoName     = "no name record"
	OrphanNoOrder    = "book has no order"
	OrphanUnknownKey = "unrecognized key"
)

// Orphan is a key in the loadout namespace that no read will ever return
type Orphan struct {
	Key    string
	Reason string
}

// FindOrphansOutput defines the output for scanning the loadout namespace
type FindOrphansOutput struct {
	Checked int
	Orphans []Orphan
}

// RemoveKeysInput defines the input for removing raw keys
type RemoveKeysInput struct {
	Keys []string
}

// RemoveKeysOutput defines the output for removing raw keys
type RemoveKeysOutput struct {
	Removed int
}

func (r *flatKeyRepository) FindOrphans(ctx context.Context) (*FindOrphansOutput, error) {
	keys, err := r.store.ListKeys(ctx, r.group, loadoutKeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loadout keys")
	}

	named := make(map[string]bool)
	ordered := make(map[string]bool)
	for _, storeKey := range keys {
		if key, ok := nameRecordKey(storeKey); ok {
			named[key] = true
			continue
		}
		key, f, ok := splitStoreKey(storeKey)
		if ok && f.rest == orderSuffix {
			ordered[bookPrefix(key, f.book)] = true
		}
	}

	out := &FindOrphansOutput{Checked: len(keys)}
	for _, storeKey := range keys {
		if _, ok := nameRecordKey(storeKey); ok {
			continue
		}

		reason := ""
		key, f, ok := splitStoreKey(storeKey)
		switch {
		case !ok || !knownBookField(f.rest):
			reason = OrphanUnknownKey
		case !named[key]:
			reason = OrphanNoName
		case f.rest != orderSuffix && !ordered[bookPrefix(key, f.book)]:
			reason = OrphanNoOrder
		}

		if reason != "" {
			out.Orphans = append(out.Orphans, Orphan{Key: storeKey, Reason: reason})
		}
	}

	slog.DebugContext(ctx, "scanned loadout keys", "checked", out.Checked, "orphans", len(out.Orphans))
	return out, nil
}

func (r *flatKeyRepository) RemoveKeys(ctx context.Context, input RemoveKeysInput) (*RemoveKeysOutput, error) {
	changes := configstore.NewChanges()
	for _, storeKey := range input.Keys {
		if !strings.HasPrefix(storeKey, loadoutKeyPrefix) {
			return nil, errors.InvalidArgumentf("key %s is outside the loadout namespace", storeKey)
		}
		changes.Unset(storeKey)
	}
	if changes.Empty() {
		return &RemoveKeysOutput{}, nil
	}

	if err := r.store.Apply(ctx, r.group, changes); err != nil {
		return nil, errors.Wrap(err, "failed to remove loadout keys")
	}

	slog.InfoContext(ctx, "removed loadout keys", "count", len(input.Keys))
	return &RemoveKeysOutput{Removed: len(input.Keys)}, nil
}

// splitStoreKey parses "loadout.<key>.book.<n>.<rest>"
func splitStoreKey(storeKey string) (string, bookField, bool) {
	rest, ok := strings.CutPrefix(storeKey, loadoutKeyPrefix)
	if !ok {
		return "", bookField{}, false
	}
	key, relative, ok := strings.Cut(rest, ".")
	if !ok || key == "" {
		return "", bookField{}, false
	}
	f, ok := parseBookField(relative)
	return key, f, ok
}

func knownBookField(rest string) bool {
	switch {
	case rest == orderSuffix:
		return true
	case strings.HasPrefix(rest, filterSegment):
		_, ok := loadout.ParseFilterField(strings.TrimPrefix(rest, filterSegment))
		return ok
	case strings.HasPrefix(rest, hiddenSegment):
		return len(rest) > len(hiddenSegment)
	default:
		return false
	}
}
