package myredis

import (
	"context"
	"fmt"
	"time"

	"mylegacyregistry/service"

	"github.com/go-redis/redis/v8"
)

// scanCount is the SCAN page size hint.
const scanCount = 500

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

// NewCache creates redis implementation of generic cache interface.
// Records live under "<prefix>:<key>"; keys of other prefixes in the same database are ignored.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	ttl := time.Duration(0)
	if ttlMs > 0 {
		ttl = time.Duration(ttlMs) * time.Millisecond
	}
	err = r.client.Set(ctx, r.generateKey(key), bytes, ttl).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.generateKey(key)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

// ListAllValues scans the keys under the cache prefix and fetches their values with MGET.
// Keys that expire between the scan and the fetch, and values that don't unmarshal, are skipped.
func (r *redisCache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	var fullKeys []string
	iter := r.client.Scan(ctx, 0, r.prefix+":*", scanCount).Iterator()
	for iter.Next(ctx) {
		fullKeys = append(fullKeys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("Redis scan keys error", fmt.Errorf("redis scan keys error, err: %w", err))
	}

	if len(fullKeys) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}

	values, err := r.client.MGet(ctx, fullKeys...).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get values error", fmt.Errorf("redis mget error, err: %w", err))
	}

	items := make([]T, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}

		item, err := r.unmarshal([]byte(s))
		if err != nil {
			continue
		}

		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}

	return items, nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
