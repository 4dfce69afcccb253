// Package config loads the prayer loadouts configuration from YAML
package config

import (
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Store backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// MaxQueueSize bounds executor.queue_size
const MaxQueueSize = 4096

// Config is the full application configuration
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Groups    GroupsConfig    `yaml:"groups"`
	Executor  ExecutorConfig  `yaml:"executor"`
	Plugin    PluginConfig    `yaml:"plugin"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StoreConfig selects and configures the config store backend
type StoreConfig struct {
	Backend string       `yaml:"backend"`
	Redis   RedisConfig  `yaml:"redis"`
	SQLite  SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig configures the redis backend
type RedisConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	PoolSize    int           `yaml:"pool_size"`
	MaxRetries  int           `yaml:"max_retries"`
	UseTLS      bool          `yaml:"use_tls"`
	DB          int           `yaml:"db"`
	PingTimeout time.Duration `yaml:"ping_timeout"`
}

// SQLiteConfig configures the sqlite backend
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// GroupsConfig names the config store groups
type GroupsConfig struct {
	Loadouts string `yaml:"loadouts"`
	Prayer   string `yaml:"prayer"`
	Varbits  string `yaml:"varbits"`
	Client   string `yaml:"client"`
}

// ExecutorConfig sizes the designated context
type ExecutorConfig struct {
	QueueSize    int           `yaml:"queue_size"`
	AwaitTimeout time.Duration `yaml:"await_timeout"`
}

// PluginConfig tunes client event handling
type PluginConfig struct {
	AutoLoadDelay time.Duration `yaml:"auto_load_delay"`
}

// ClipboardConfig selects the clipboard implementation
type ClipboardConfig struct {
	// Memory uses a process-local buffer instead of the system clipboard
	Memory bool `yaml:"memory"`
}

// LoggingConfig configures the slog handler
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
			Redis: RedisConfig{
				Endpoint:    "localhost:6379",
				PingTimeout: 2 * time.Second,
			},
			SQLite: SQLiteConfig{
				Path: "prayer-loadouts.db",
			},
		},
		Groups: GroupsConfig{
			Loadouts: "prayerloadouts",
			Prayer:   "prayer",
			Varbits:  "varbits",
			Client:   "client",
		},
		Executor: ExecutorConfig{
			QueueSize:    64,
			AwaitTimeout: 2 * time.Second,
		},
		Plugin: PluginConfig{
			AutoLoadDelay: 2 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read config file")
	}

	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, leaving fields the document omits untouched,
// and validates the result
func Parse(data []byte, cfg *Config) error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("store.backend", c.Store.Backend, []string{BackendRedis, BackendSQLite}, vb)
	switch c.Store.Backend {
	case BackendRedis:
		errors.ValidateRequired("store.redis.endpoint", c.Store.Redis.Endpoint, vb)
		if c.Store.Redis.PoolSize < 0 {
			vb.InvalidField("store.redis.pool_size", "cannot be negative")
		}
		if c.Store.Redis.MaxRetries < 0 {
			vb.InvalidField("store.redis.max_retries", "cannot be negative")
		}
		if c.Store.Redis.PingTimeout <= 0 {
			vb.InvalidField("store.redis.ping_timeout", "must be positive")
		}
	case BackendSQLite:
		errors.ValidateRequired("store.sqlite.path", c.Store.SQLite.Path, vb)
	}

	errors.ValidateRequired("groups.loadouts", c.Groups.Loadouts, vb)
	errors.ValidateRequired("groups.prayer", c.Groups.Prayer, vb)
	errors.ValidateRequired("groups.varbits", c.Groups.Varbits, vb)
	errors.ValidateRequired("groups.client", c.Groups.Client, vb)

	errors.ValidateRange("executor.queue_size", c.Executor.QueueSize, 1, MaxQueueSize, vb)
	if c.Executor.AwaitTimeout <= 0 {
		vb.InvalidField("executor.await_timeout", "must be positive")
	}
	if c.Plugin.AutoLoadDelay < 0 {
		vb.InvalidField("plugin.auto_load_delay", "cannot be negative")
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		vb.InvalidField("logging.level", err.Error())
	}
	errors.ValidateEnum("logging.format", strings.ToLower(c.Logging.Format), []string{FormatText, FormatJSON}, vb)

	return vb.Build()
}
