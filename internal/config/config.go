// Package config defines process configuration and its loading.
package config

import "time"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	NotifierMemory = "memory"
	NotifierRedis  = "redis"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	Storage   StorageConfig   `koanf:"storage"`
	Postgres  PostgresConfig  `koanf:"postgres"`
	Notifier  NotifierConfig  `koanf:"notifier"`
	Redis     RedisConfig     `koanf:"redis"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

type StorageConfig struct {
	// Driver is either "memory" or "postgres".
	Driver string `koanf:"driver"`
}

type PostgresConfig struct {
	URL            string `koanf:"url"`
	Database       string `koanf:"database"`
	MigrationsPath string `koanf:"migrations_path"`
	MaxOpenConns   int    `koanf:"max_open_conns"`
}

type NotifierConfig struct {
	// Driver is either "memory" or "redis".
	Driver string `koanf:"driver"`
}

type RedisConfig struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	KeyPrefix   string        `koanf:"key_prefix"`
	InboxSize   int           `koanf:"inbox_size"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// RateLimitConfig throttles mutating requests per username. Zero RequestsPerSecond disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		ShutdownTimeout: 30 * time.Second,
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Postgres: PostgresConfig{
			Database:       "gigflow",
			MigrationsPath: "file://migrations",
			MaxOpenConns:   10,
		},
		Notifier: NotifierConfig{
			Driver: NotifierMemory,
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			KeyPrefix:   "gigflow",
			InboxSize:   100,
			DialTimeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Validate reports the first setting that makes the config unusable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return invalid("addr must not be empty")
	}

	if c.ShutdownTimeout <= 0 {
		return invalid("shutdown_timeout must be positive")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.URL == "" {
			return invalid("postgres.url is required for the postgres storage driver")
		}
	default:
		return invalid("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Notifier.Driver {
	case NotifierMemory:
	case NotifierRedis:
		if c.Redis.Addr == "" {
			return invalid("redis.addr is required for the redis notifier")
		}
		if c.Redis.InboxSize <= 0 {
			return invalid("redis.inbox_size must be positive")
		}
	default:
		return invalid("unknown notifier driver %q", c.Notifier.Driver)
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		return invalid("rate_limit.requests_per_second must not be negative")
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst <= 0 {
		return invalid("rate_limit.burst must be positive when rate limiting is enabled")
	}

	return nil
}
