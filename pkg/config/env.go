package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/plinyoo/starfield/pkg/errors"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "STARFIELD_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from STARFIELD_* variables. Malformed numbers,
// booleans and durations are errors rather than silently ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	e := envReader{lookup: lookup}

	e.str("ADDR", &c.Server.Addr)
	e.list("ALLOWED_ORIGINS", &c.Server.AllowedOrigins)
	e.boolean("CORS_DEBUG", &c.Server.CORSDebug)
	e.boolean("TRUST_PROXY", &c.Server.TrustProxy)
	e.duration("READ_TIMEOUT", &c.Server.ReadTimeout)
	e.duration("WRITE_TIMEOUT", &c.Server.WriteTimeout)

	e.boolean("RATE_LIMIT_ENABLED", &c.RateLimit.Enabled)
	e.float("RATE_LIMIT_RPS", &c.RateLimit.RequestsPerSecond)
	e.integer("RATE_LIMIT_BURST", &c.RateLimit.Burst)

	e.str("CACHE_BACKEND", &c.Cache.Backend)
	e.str("CACHE_DIR", &c.Cache.Dir)
	e.str("REDIS_URL", &c.Cache.RedisURL)
	e.duration("CACHE_TTL", &c.Cache.TTL)

	e.str("LEADS_BACKEND", &c.Leads.Backend)
	e.str("DATABASE_URL", &c.Leads.PostgresDSN)
	e.str("MONGO_URI", &c.Leads.MongoURI)
	e.str("MONGO_DATABASE", &c.Leads.MongoDatabase)
	e.boolean("DEMO_MODE", &c.Leads.DemoMode)

	e.float("RENDER_WIDTH", &c.Render.Width)
	e.float("RENDER_HEIGHT", &c.Render.Height)
	e.str("RENDER_STYLE", &c.Render.Style)
	e.integer("MAX_STARS", &c.Render.MaxStars)

	e.str("LOG_LEVEL", &c.Log.Level)
	e.str("LOG_FORMAT", &c.Log.Format)

	return e.err
}

// envReader applies overrides and keeps the first parse error.
type envReader struct {
	lookup LookupFunc
	err    error
}

func (e *envReader) get(name string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (e *envReader) fail(name string, err error) {
	e.err = errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s%s", EnvPrefix, name)
}

func (e *envReader) str(name string, dst *string) {
	if v, ok := e.get(name); ok {
		*dst = v
	}
}

func (e *envReader) list(name string, dst *[]string) {
	v, ok := e.get(name)
	if !ok {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*dst = out
}

func (e *envReader) boolean(name string, dst *bool) {
	if v, ok := e.get(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(name, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) integer(name string, dst *int) {
	if v, ok := e.get(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(name, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) float(name string, dst *float64) {
	if v, ok := e.get(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(name, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) duration(name string, dst *time.Duration) {
	if v, ok := e.get(name); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(name, err)
			return
		}
		*dst = d
	}
}
