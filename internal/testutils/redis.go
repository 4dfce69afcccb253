// Package testutils provides utilities for testing: in-memory stores and fixtures
package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/prayer-loadouts/internal/configstore"
	"github.com/KirkDiggler/prayer-loadouts/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// NewRedisStore returns a config store backed by a fresh miniredis
func NewRedisStore(t *testing.T) configstore.Store {
	t.Helper()

	client, _ := CreateTestRedisClient(t)
	store, err := configstore.NewRedisStore(&configstore.RedisConfig{Client: client})
	require.NoError(t, err)

	return store
}

// NewSQLiteStore returns a config store backed by a sqlite file in a temp dir
func NewSQLiteStore(t *testing.T) configstore.Store {
	t.Helper()

	store, err := configstore.NewSQLiteStore(context.Background(), &configstore.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "config.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}
