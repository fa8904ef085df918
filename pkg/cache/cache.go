// Package cache stores computed layouts and rendered artifacts.
//
// [Cache] is a small byte-oriented key/value interface with three backends:
// [FileCache] for the CLI, [RedisCache] for the API server and [NullCache]
// when caching is disabled. Keys come from a [Keyer], so every producer of
// a given artifact agrees on where it lives.
//
// Layouts are a pure function of their inputs, so entries never go stale;
// TTLs only bound storage growth.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// A missing or expired key is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the inputs that determine a layout.
type LayoutKeyOpts struct {
	Stars     int     `json:"stars"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Padding   float64 `json:"padding"`
	TopMargin float64 `json:"top_margin"`
}

// ArtifactKeyOpts are the render settings that, with a layout, determine
// an artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	VizType    string `json:"viz_type"`
	Style      string `json:"style"`
	Title      string `json:"title,omitempty"`
	Orbits     bool   `json:"orbits,omitempty"`
	Background string `json:"background,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey returns "artifact:<sha256>" over the layout hash and options.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// NullCache misses on every Get and drops every Set. It stands in for a
// cache when --no-cache is given or the backend is "none".
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }
