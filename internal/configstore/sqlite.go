package configstore

import (
	"context"
	"database/sql"
	"log/slog"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS config_entries (
	grp   TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (grp, key)
)`

const upsertEntry = `
INSERT INTO config_entries (grp, key, value) VALUES (?, ?, ?)
ON CONFLICT (grp, key) DO UPDATE SET value = excluded.value`

// SQLiteConfig holds the configuration for the SQLite store
type SQLiteConfig struct {
	// Path is the database file; created if missing
	Path string
}

// Validate ensures all required settings are provided
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Path == "" {
		return errors.InvalidArgument("sqlite path is required")
	}
	return nil
}

// SQLiteStore is a Store backed by a single SQLite table
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the database at cfg.Path
func NewSQLiteStore(ctx context.Context, cfg *SQLiteConfig) (*SQLiteStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", cfg.Path)
	}
	// single local writer; one connection also keeps :memory: databases coherent
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to set journal mode")
	}
	if _, err := db.ExecContext(ctx, createEntriesTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create config table")
	}

	return &SQLiteStore{db: db}, nil
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored for group/key
func (s *SQLiteStore) Get(ctx context.Context, group, key string) (string, bool, error) {
	if err := validateGroupKey(group, key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM config_entries WHERE grp = ? AND key = ?", group, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get %s.%s", group, key)
	}
	return value, true, nil
}

// Set stores a single value
func (s *SQLiteStore) Set(ctx context.Context, group, key, value string) error {
	if err := validateGroupKey(group, key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, upsertEntry, group, key, value); err != nil {
		return errors.Wrapf(err, "failed to set %s.%s", group, key)
	}
	return nil
}

// Unset removes a key
func (s *SQLiteStore) Unset(ctx context.Context, group, key string) error {
	if err := validateGroupKey(group, key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM config_entries WHERE grp = ? AND key = ?", group, key); err != nil {
		return errors.Wrapf(err, "failed to unset %s.%s", group, key)
	}
	return nil
}

// ListKeys returns keys in group starting with prefix, sorted
func (s *SQLiteStore) ListKeys(ctx context.Context, group, prefix string) ([]string, error) {
	if group == "" {
		return nil, errors.InvalidArgument(errGroupEmpty)
	}

	// substr comparison instead of LIKE so '_' and '%' in prefixes stay literal
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM config_entries
		 WHERE grp = ? AND substr(key, 1, length(?)) = ?
		 ORDER BY key`, group, prefix, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list keys in %s", group)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, errors.Wrapf(err, "failed to scan key in %s", group)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list keys in %s", group)
	}
	return keys, nil
}

// Apply writes the batch inside one transaction
func (s *SQLiteStore) Apply(ctx context.Context, group string, changes *Changes) error {
	if group == "" {
		return errors.InvalidArgument(errGroupEmpty)
	}
	if changes.Empty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	unsets := changes.Unsets()
	for _, key := range unsets {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM config_entries WHERE grp = ? AND key = ?", group, key); err != nil {
			return errors.Wrapf(err, "failed to unset %s.%s", group, key)
		}
	}

	sets := changes.Sets()
	for _, e := range sets {
		if _, err := tx.ExecContext(ctx, upsertEntry, group, e.Key, e.Value); err != nil {
			return errors.Wrapf(err, "failed to set %s.%s", group, e.Key)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to apply changes to %s", group)
	}

	slog.DebugContext(ctx, "applied config changes",
		"group", group,
		"sets", len(sets),
		"unsets", len(unsets))

	return nil
}
