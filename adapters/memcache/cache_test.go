package memcache

import (
	"context"
	"testing"
	"time"

	"mylegacyregistry/domain"
	"mylegacyregistry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_WriteListDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewCache[domain.Instance](DefaultCleanupInterval)

	items, err := cache.ListAllValues(ctx)
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
	assert.Nil(t, items)

	require.NoError(t, cache.WriteValue(ctx, "i-2", domain.Instance{InstanceID: "i-2", App: "WebServer"}, 0))
	require.NoError(t, cache.WriteValue(ctx, "i-1", domain.Instance{InstanceID: "i-1", App: "WebServer"}, 60000))

	items, err = cache.ListAllValues(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "i-1", items[0].InstanceID)
	assert.Equal(t, "i-2", items[1].InstanceID)

	// overwrite keeps one record per key
	require.NoError(t, cache.WriteValue(ctx, "i-1", domain.Instance{InstanceID: "i-1", App: "Backend"}, 0))
	items, err = cache.ListAllValues(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Backend", items[0].App)

	require.NoError(t, cache.DeleteValue(ctx, "i-1"))
	require.NoError(t, cache.DeleteValue(ctx, "absent"))
	items, err = cache.ListAllValues(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i-2", items[0].InstanceID)
}

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache := NewCache[domain.Instance](DefaultCleanupInterval)

	require.NoError(t, cache.WriteValue(ctx, "short", domain.Instance{InstanceID: "short", App: "WebServer"}, 1))
	require.NoError(t, cache.WriteValue(ctx, "forever", domain.Instance{InstanceID: "forever", App: "WebServer"}, 0))

	assert.Eventually(t, func() bool {
		items, err := cache.ListAllValues(ctx)
		return err == nil && len(items) == 1 && items[0].InstanceID == "forever"
	}, time.Second, 5*time.Millisecond)
}

func TestCache_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cache := NewCache[domain.Instance](DefaultCleanupInterval)

	err := cache.WriteValue(ctx, "i-1", domain.Instance{InstanceID: "i-1"}, 0)
	assert.True(t, service.IsInternalServerError(err))

	_, err = cache.ListAllValues(ctx)
	assert.True(t, service.IsInternalServerError(err))
	assert.ErrorIs(t, err, context.Canceled)
}
