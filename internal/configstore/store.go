// Package configstore defines the flat, group-scoped key/value configuration
// store that loadouts and the simulated host persist into, plus its backends.
package configstore

//go:generate mockgen -destination=mock/mock_store.go -package=configstoremock github.com/KirkDiggler/prayer-loadouts/internal/configstore Store

import (
	"context"
	"sort"
)

// Store is a flat string key/value store partitioned into named groups.
type Store interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, group, key string) (string, bool, error)

	// Set stores a single value
	Set(ctx context.Context, group, key, value string) error

	// Unset removes a key; removing a missing key is not an error
	Unset(ctx context.Context, group, key string) error

	// ListKeys returns every key in group starting with prefix, sorted
	ListKeys(ctx context.Context, group, prefix string) ([]string, error)

	// Apply writes a batch of sets and unsets atomically
	Apply(ctx context.Context, group string, changes *Changes) error
}

// Changes is a batch of writes to a single group. A key both set and unset
// ends up set.
type Changes struct {
	sets   map[string]string
	unsets map[string]struct{}
}

// NewChanges returns an empty batch.
func NewChanges() *Changes {
	return &Changes{
		sets:   make(map[string]string),
		unsets: make(map[string]struct{}),
	}
}

// Set records a write.
func (c *Changes) Set(key, value string) *Changes {
	delete(c.unsets, key)
	c.sets[key] = value
	return c
}

// Unset records a removal unless the same key is also being set.
func (c *Changes) Unset(key string) *Changes {
	if _, ok := c.sets[key]; ok {
		return c
	}
	c.unsets[key] = struct{}{}
	return c
}

// Empty reports whether the batch does nothing.
func (c *Changes) Empty() bool {
	return c == nil || (len(c.sets) == 0 && len(c.unsets) == 0)
}

// Sets returns the writes, ordered by key.
func (c *Changes) Sets() []Entry {
	out := make([]Entry, 0, len(c.sets))
	for k, v := range c.sets {
		out = append(out, Entry{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Unsets returns the removals, sorted.
func (c *Changes) Unsets() []string {
	out := make([]string, 0, len(c.unsets))
	for k := range c.unsets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Values reads every key under prefix and returns them as a map.
func Values(ctx context.Context, store Store, group, prefix string) (map[string]string, error) {
	keys, err := store.ListKeys(ctx, group, prefix)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok, err := store.Get(ctx, group, key)
		if err != nil {
			return nil, err
		}
		if ok {
			values[key] = value
		}
	}
	return values, nil
}
