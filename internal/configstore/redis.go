package configstore

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	redisclient "github.com/KirkDiggler/prayer-loadouts/internal/redis"
)

const (
	// Key pattern: config:{group} holds one hash field per config key
	groupKeyPrefix = "config:"

	errGroupEmpty = "group cannot be empty"
	errKeyEmpty   = "key cannot be empty"
)

// RedisConfig holds the configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisStore struct {
	client redisclient.Client
}

// NewRedisStore creates a Store that keeps each group in a single Redis hash
func NewRedisStore(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisStore{client: cfg.Client}, nil
}

// Ensure redisStore implements Store
var _ Store = (*redisStore)(nil)

func (s *redisStore) Get(ctx context.Context, group, key string) (string, bool, error) {
	if err := validateGroupKey(group, key); err != nil {
		return "", false, err
	}

	value, err := s.client.HGet(ctx, s.buildKey(group), key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get %s.%s", group, key)
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, group, key, value string) error {
	if err := validateGroupKey(group, key); err != nil {
		return err
	}

	if err := s.client.HSet(ctx, s.buildKey(group), key, value).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s.%s", group, key)
	}
	return nil
}

func (s *redisStore) Unset(ctx context.Context, group, key string) error {
	if err := validateGroupKey(group, key); err != nil {
		return err
	}

	if err := s.client.HDel(ctx, s.buildKey(group), key).Err(); err != nil {
		return errors.Wrapf(err, "failed to unset %s.%s", group, key)
	}
	return nil
}

func (s *redisStore) ListKeys(ctx context.Context, group, prefix string) ([]string, error) {
	if group == "" {
		return nil, errors.InvalidArgument(errGroupEmpty)
	}

	// HKEYS rather than HSCAN MATCH: prefixes may contain glob metacharacters
	fields, err := s.client.HKeys(ctx, s.buildKey(group)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list keys in %s", group)
	}

	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		if strings.HasPrefix(field, prefix) {
			keys = append(keys, field)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *redisStore) Apply(ctx context.Context, group string, changes *Changes) error {
	if group == "" {
		return errors.InvalidArgument(errGroupEmpty)
	}
	if changes.Empty() {
		return nil
	}

	hashKey := s.buildKey(group)
	sets := changes.Sets()
	unsets := changes.Unsets()

	pipe := s.client.TxPipeline()

	if len(unsets) > 0 {
		pipe.HDel(ctx, hashKey, unsets...)
	}

	if len(sets) > 0 {
		values := make([]interface{}, 0, len(sets)*2)
		for _, e := range sets {
			values = append(values, e.Key, e.Value)
		}
		pipe.HSet(ctx, hashKey, values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to apply changes to %s", group)
	}

	slog.DebugContext(ctx, "applied config changes",
		"group", group,
		"sets", len(sets),
		"unsets", len(unsets))

	return nil
}

// buildKey creates the Redis hash key for a config group
func (s *redisStore) buildKey(group string) string {
	return groupKeyPrefix + group
}

func validateGroupKey(group, key string) error {
	if group == "" {
		return errors.InvalidArgument(errGroupEmpty)
	}
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}
