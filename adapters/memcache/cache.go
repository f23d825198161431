// Package memcache is an in-process implementation of interfaces.Cache backed by go-cache.
// It backs the memory registry: instances are written by the seed file loader and expire by TTL.
package memcache

import (
	"context"
	"sort"
	"time"

	"mylegacyregistry/service"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired records are purged.
const DefaultCleanupInterval = time.Minute

type memCache[T any] struct {
	cache *gocache.Cache
}

// NewCache creates an empty in-memory cache. Records without a TTL never expire.
func NewCache[T any](cleanupInterval time.Duration) *memCache[T] {
	return &memCache[T]{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (c *memCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	if err := ctx.Err(); err != nil {
		return service.NewInternalServerError("memory write cancelled", err)
	}

	ttl := gocache.NoExpiration
	if ttlMs > 0 {
		ttl = time.Duration(ttlMs) * time.Millisecond
	}
	c.cache.Set(key, item, ttl)
	return nil
}

// ListAllValues returns the unexpired values ordered by key.
func (c *memCache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, service.NewInternalServerError("memory read cancelled", err)
	}

	entries := c.cache.Items()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]T, 0, len(keys))
	for _, k := range keys {
		v, ok := entries[k].Object.(T)
		if !ok {
			continue
		}
		items = append(items, v)
	}
	if len(items) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}

	return items, nil
}

func (c *memCache[T]) DeleteValue(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}
