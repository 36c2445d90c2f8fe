package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultTTL bounds how long a lookup list may be served without
	// hitting the database. Invalidation normally happens through the
	// namespace version, the TTL only cleans up orphaned namespaces.
	DefaultTTL = 24 * time.Hour

	lookupVersionKey = "lookup:version"
	indexVersionKey  = "index:version:"
)

// LookupCache caches lookup lists and dropdowns under a versioned
// namespace. ClearCache bumps the namespace version with one INCR, which
// atomically orphans every cached list; there is no key scan to race
// against concurrent writers.
type LookupCache struct {
	store  Store
	logger *logrus.Logger
	ttl    time.Duration
}

func NewLookupCache(store Store, logger *logrus.Logger) *LookupCache {
	return &LookupCache{store: store, logger: logger, ttl: DefaultTTL}
}

// Remember returns the cached value for name, loading and caching it on a
// miss. Store failures degrade to the loader; a broken cache never breaks
// a read.
func Remember[T any](c *LookupCache, ctx context.Context, name string, loader func() (T, error)) (T, error) {
	var zero T

	key, err := c.namespacedKey(ctx, name)
	if err != nil {
		c.warn("cache namespace unavailable", err)
		return loader()
	}

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		// Unreadable payload, treat as a miss and overwrite below.
	case !errors.Is(err, ErrCacheMiss):
		c.warn("cache read failed", err)
	}

	value, err := loader()
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return zero, err
	}
	if err := c.store.Set(ctx, key, string(encoded), c.ttl); err != nil {
		c.warn("cache write failed", err)
	}
	return value, nil
}

// ClearCache invalidates every cached lookup list by bumping the
// namespace version.
func (c *LookupCache) ClearCache(ctx context.Context) error {
	_, err := c.store.Incr(ctx, lookupVersionKey)
	return err
}

// IndexVersion reports the listing version for an entity, defaulting to 1
// before the first bump. Clients use it to detect stale listings.
func (c *LookupCache) IndexVersion(ctx context.Context, entity string) int64 {
	raw, err := c.store.Get(ctx, indexVersionKey+entity)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.warn("index version read failed", err)
		}
		return 1
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 1 {
		return 1
	}
	return version
}

// BumpIndexVersion advances the listing version for an entity after a
// write. INCR also works on a key that only ever held INCR values, so the
// counter survives namespace clears.
func (c *LookupCache) BumpIndexVersion(ctx context.Context, entity string) int64 {
	key := indexVersionKey + entity
	version, err := c.store.Incr(ctx, key)
	if err != nil {
		c.warn("index version bump failed", err)
		return 1
	}
	if version == 1 {
		// First bump on a fresh counter: INCR from absent yields 1,
		// which clients already treat as the initial version. Bump
		// once more so the change is observable.
		version, err = c.store.Incr(ctx, key)
		if err != nil {
			c.warn("index version bump failed", err)
			return 1
		}
	}
	return version
}

func (c *LookupCache) namespacedKey(ctx context.Context, name string) (string, error) {
	raw, err := c.store.Get(ctx, lookupVersionKey)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			return "", err
		}
		// Unset counter means version 0; the first ClearCache INCRs it
		// to 1 and every key below moves namespace.
		raw = "0"
	}
	return fmt.Sprintf("lookup:v%s:%s", raw, name), nil
}

func (c *LookupCache) warn(msg string, err error) {
	if c.logger != nil {
		c.logger.WithError(err).Warn(msg)
	}
}
