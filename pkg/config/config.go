// Package config loads starfield settings.
//
// Sources are applied in order, later ones winning:
//
//  1. [Default] values
//  2. a TOML file ($XDG_CONFIG_HOME/starfield/config.toml unless a path is given)
//  3. a .env file in the working directory, if present
//  4. STARFIELD_* environment variables
//
// The result is checked with [Config.Validate] before it is returned.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/plinyoo/starfield/pkg/errors"
)

// Backend names.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"

	LeadsMemory   = "memory"
	LeadsPostgres = "postgres"
	LeadsMongo    = "mongo"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Cache     CacheConfig     `toml:"cache"`
	Leads     LeadsConfig     `toml:"leads"`
	Render    RenderConfig    `toml:"render"`
	Log       LogConfig       `toml:"log"`
}

type ServerConfig struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	IdleTimeout     time.Duration `toml:"idle_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	AllowedOrigins  []string      `toml:"allowed_origins"`
	CORSDebug       bool          `toml:"cors_debug"`
	// TrustProxy makes the rate limiter key on X-Forwarded-For / X-Real-IP.
	TrustProxy bool `toml:"trust_proxy"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"rps"`
	Burst             int     `toml:"burst"`
}

type CacheConfig struct {
	Backend  string        `toml:"backend"`
	Dir      string        `toml:"dir"` // empty means the user cache dir
	RedisURL string        `toml:"redis_url"`
	Prefix   string        `toml:"prefix"`
	TTL      time.Duration `toml:"ttl"`
}

type LeadsConfig struct {
	Backend       string `toml:"backend"`
	PostgresDSN   string `toml:"postgres_dsn"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
	// DemoMode accepts submissions without storing them.
	DemoMode bool `toml:"demo_mode"`
}

type RenderConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Style    string  `toml:"style"`
	MaxStars int     `toml:"max_stars"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or logfmt
}

// Default returns a configuration that runs with no external services.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			Prefix:  "starfield:",
			TTL:     7 * 24 * time.Hour,
		},
		Leads: LeadsConfig{
			Backend:       LeadsMemory,
			MongoDatabase: "starfield",
		},
		Render: RenderConfig{
			Width:    800,
			Height:   320,
			Style:    "simple",
			MaxStars: 1_000_000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/starfield/config.toml or its
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "starfield", "config.toml"), nil
}

// Load builds the configuration. An explicit path must exist; with an empty
// path the default location is used when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return nil
}

// loadDotEnv exports the variables of a .env file that are not already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return invalid("cache.redis_url is required for the redis backend")
		}
	default:
		return invalid("cache.backend must be one of file, redis, none; got %q", c.Cache.Backend)
	}

	switch c.Leads.Backend {
	case LeadsMemory:
	case LeadsPostgres:
		if c.Leads.PostgresDSN == "" && !c.Leads.DemoMode {
			return invalid("leads.postgres_dsn is required for the postgres backend")
		}
	case LeadsMongo:
		if c.Leads.MongoURI == "" && !c.Leads.DemoMode {
			return invalid("leads.mongo_uri is required for the mongo backend")
		}
		if c.Leads.MongoDatabase == "" {
			return invalid("leads.mongo_database must not be empty")
		}
	default:
		return invalid("leads.backend must be one of memory, postgres, mongo; got %q", c.Leads.Backend)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return invalid("rate_limit.rps must be positive")
		}
		if c.RateLimit.Burst < 1 {
			return invalid("rate_limit.burst must be at least 1")
		}
	}

	if c.Server.Addr == "" {
		return invalid("server.addr must not be empty")
	}
	if err := errors.ValidateDimension("render.width", c.Render.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("render.height", c.Render.Height); err != nil {
		return err
	}
	if c.Render.MaxStars < 0 {
		return invalid("render.max_stars must not be negative")
	}

	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return invalid("log.format must be one of text, json, logfmt; got %q", c.Log.Format)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidInput, "config: "+format, args...)
}
