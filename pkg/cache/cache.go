// Package cache stores rendered report artifacts between runs.
//
// Rendering a report is deterministic: the same model, style, and output
// options always produce the same bytes. The pipeline therefore keys each
// artifact by a hash of its inputs and skips the draw step on a hit.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, used by the CLI
//   - [NullCache]: never stores anything, used with --no-cache and in tests
//
// # Keys
//
// A [Keyer] turns a model hash plus the options that influence the output
// into a cache key. [ScopedKeyer] prefixes every key, which the CLI uses to
// separate entries written by different builds.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := keyer.ArtifactKey(cache.Hash(modelJSON), cache.ArtifactKeyOpts{Format: "png"})
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys for rendered artifacts.
type Keyer interface {
	ArtifactKey(modelHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists every option that changes the bytes of an artifact.
type ArtifactKeyOpts struct {
	Format        string  `json:"format"`
	StyleHash     string  `json:"style_hash,omitempty"`
	PixelRatio    float64 `json:"pixel_ratio,omitempty"`
	Locale        string  `json:"locale,omitempty"`
	Decimals      int     `json:"decimals,omitempty"`
	MaxWidth      int     `json:"max_width,omitempty"`
	Quality       int     `json:"quality,omitempty"`
	ComputeFooter bool    `json:"compute_footer,omitempty"`
}

// DefaultKeyer hashes the options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<format>:<hash>" so entries of one format
// can be recognised by prefix.
func (DefaultKeyer) ArtifactKey(modelHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, modelHash, opts)
}
