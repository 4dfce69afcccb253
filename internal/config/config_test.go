package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/prayer-loadouts/internal/config"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.T().TempDir(), "loadouts.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	cfg := config.Default()
	s.Require().NoError(cfg.Validate())
	s.Equal(config.BackendSQLite, cfg.Store.Backend)
	s.Equal("prayerloadouts", cfg.Groups.Loadouts)
	s.Equal(64, cfg.Executor.QueueSize)
	s.Equal(2*time.Second, cfg.Plugin.AutoLoadDelay)
}

func (s *ConfigTestSuite) TestLoadEmptyPathReturnsDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadMergesOverDefaults() {
	path := s.writeFile(`
store:
  backend: redis
  redis:
    endpoint: "redis.local:6380"
    pool_size: 4
executor:
  await_timeout: 500ms
plugin:
  auto_load_delay: 0s
logging:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(config.BackendRedis, cfg.Store.Backend)
	s.Equal("redis.local:6380", cfg.Store.Redis.Endpoint)
	s.Equal(4, cfg.Store.Redis.PoolSize)
	s.Equal(2*time.Second, cfg.Store.Redis.PingTimeout)
	s.Equal(500*time.Millisecond, cfg.Executor.AwaitTimeout)
	s.Equal(64, cfg.Executor.QueueSize)
	s.Zero(cfg.Plugin.AutoLoadDelay)
	s.Equal("prayer", cfg.Groups.Prayer)
	s.Equal("json", cfg.Logging.Format)
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *ConfigTestSuite) TestLoadMalformedYAML() {
	path := s.writeFile("store: [unclosed")

	_, err := config.Load(path)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidateRejectsBadValues() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{
			name:   "unknown backend",
			mutate: func(c *config.Config) { c.Store.Backend = "etcd" },
			field:  "store.backend",
		},
		{
			name: "redis without endpoint",
			mutate: func(c *config.Config) {
				c.Store.Backend = config.BackendRedis
				c.Store.Redis.Endpoint = ""
			},
			field: "store.redis.endpoint",
		},
		{
			name:   "sqlite without path",
			mutate: func(c *config.Config) { c.Store.SQLite.Path = "" },
			field:  "store.sqlite.path",
		},
		{
			name:   "empty group",
			mutate: func(c *config.Config) { c.Groups.Varbits = "" },
			field:  "groups.varbits",
		},
		{
			name:   "blank group",
			mutate: func(c *config.Config) { c.Groups.Client = "  " },
			field:  "groups.client",
		},
		{
			name:   "queue too large",
			mutate: func(c *config.Config) { c.Executor.QueueSize = config.MaxQueueSize + 1 },
			field:  "executor.queue_size",
		},
		{
			name:   "zero queue",
			mutate: func(c *config.Config) { c.Executor.QueueSize = 0 },
			field:  "executor.queue_size",
		},
		{
			name:   "negative delay",
			mutate: func(c *config.Config) { c.Plugin.AutoLoadDelay = -time.Second },
			field:  "plugin.auto_load_delay",
		},
		{
			name:   "unknown level",
			mutate: func(c *config.Config) { c.Logging.Level = "loud" },
			field:  "logging.level",
		},
		{
			name:   "unknown format",
			mutate: func(c *config.Config) { c.Logging.Format = "xml" },
			field:  "logging.format",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestValidateNil() {
	var cfg *config.Config
	s.True(errors.IsInvalidArgument(cfg.Validate()))
}

func (s *ConfigTestSuite) TestParseLevel() {
	level, err := config.ParseLevel("WARN")
	s.Require().NoError(err)
	s.Equal(slog.LevelWarn, level)

	level, err = config.ParseLevel("")
	s.Require().NoError(err)
	s.Equal(slog.LevelInfo, level)

	_, err = config.ParseLevel("trace")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestNewLogger() {
	var buf bytes.Buffer
	logger, err := config.LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	s.Require().NoError(err)

	logger.Info("dropped")
	logger.Warn("kept", "loadout", "Melee")

	s.NotContains(buf.String(), "dropped")
	s.Contains(buf.String(), `"loadout":"Melee"`)
}
