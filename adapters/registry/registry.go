// Package registry reads the live registry out of an instance store.
package registry

import (
	"context"
	"fmt"

	"mylegacyregistry/domain"
	"mylegacyregistry/helpers"
	"mylegacyregistry/interfaces"
	"mylegacyregistry/service"
)

// CacheRegistry implements interfaces.Registry over an instance store keyed by instance id.
type CacheRegistry struct {
	cache interfaces.Cache[domain.Instance]
}

// NewCacheRegistry creates the registry reader. Panics on nil cache.
func NewCacheRegistry(cache interfaces.Cache[domain.Instance]) *CacheRegistry {
	return &CacheRegistry{cache: helpers.NilPanic(cache, "adapters.registry.go: cache is required")}
}

// Instances lists every stored instance. An empty store is an empty registry, not an error.
func (r *CacheRegistry) Instances(ctx context.Context) ([]domain.Instance, error) {
	instances, err := r.cache.ListAllValues(ctx)
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			return []domain.Instance{}, nil
		}
		return nil, fmt.Errorf("can't list registry instances, err: %w", err)
	}

	return instances, nil
}
