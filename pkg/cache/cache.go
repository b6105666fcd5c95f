// Package cache provides the caching layer for the design pipeline and the
// documentation server.
//
// Three backends share one interface: a file cache for CLI usage, a Redis
// cache for long-running server deployments, and a null cache for disabling
// caching entirely. Keys are produced by a [Keyer] so every stage of the
// pipeline derives its keys the same way.
package cache

import (
	"context"
	"time"
)

// Stage TTLs. Designs and documents are pure functions of the capacity, so
// long TTLs are safe; pages embed dashboard state and expire sooner.
const (
	TTLDesign   = 30 * 24 * time.Hour
	TTLDocument = 30 * 24 * time.Hour
	TTLModel    = 30 * 24 * time.Hour
	TTLPage     = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DesignKey keys a sized design by its requested capacity.
	DesignKey(capacityLiters float64) string

	// DocumentKey keys one generated document for a design.
	DocumentKey(designHash, name string) string

	// ModelKey keys a serialized model for a design.
	ModelKey(designHash string, opts ModelKeyOpts) string

	// PageKey keys a rendered HTML page served by the documentation server.
	PageKey(designHash, route string) string
}

// ModelKeyOpts distinguish model serializations of the same design.
type ModelKeyOpts struct {
	Format string `json:"format"` // "step", "json", "svg", "png", "dot"
}

// DefaultKeyer implements Keyer with SHA-256 hashed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DesignKey generates a key for design stage caching.
func (k *DefaultKeyer) DesignKey(capacityLiters float64) string {
	return hashKey("design", capacityLiters)
}

// DocumentKey generates a key for document stage caching.
func (k *DefaultKeyer) DocumentKey(designHash, name string) string {
	return hashKey("doc", designHash, name)
}

// ModelKey generates a key for model stage caching.
func (k *DefaultKeyer) ModelKey(designHash string, opts ModelKeyOpts) string {
	return hashKey("model", designHash, opts)
}

// PageKey generates a key for server page caching.
func (k *DefaultKeyer) PageKey(designHash, route string) string {
	return hashKey("page", designHash, route)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
