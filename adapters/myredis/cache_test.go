package myredis

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"mylegacyregistry/domain"
	"mylegacyregistry/helpers"
	"mylegacyregistry/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379/15"
const testPrefix = "legacy-test-instance"

// setupTestRedis connects to a local Redis and clears the test prefix. Skips when Redis is not running.
func setupTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	client, err := NewRedisUniversalClient(testRedisAddr, func(o *redis.Options) {
		o.DialTimeout = 500 * time.Millisecond
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis is not reachable at %s: %v", testRedisAddr, err)
	}

	clearPrefix := func() {
		keys, _ := client.Keys(context.Background(), testPrefix+":*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
	}
	clearPrefix()
	t.Cleanup(func() {
		clearPrefix()
		client.Close()
	})
	return client
}

func marshalInstance(i domain.Instance) ([]byte, error) { return json.Marshal(i) }
func unmarshalInstance(b []byte) (domain.Instance, error) {
	var i domain.Instance
	err := json.Unmarshal(b, &i)
	return i, err
}

func testInstance(id string) domain.Instance {
	return domain.Instance{
		InstanceID: id,
		App:        "WebServer",
		VipAddress: "web.vip",
		Status:     domain.StatusUp,
		Ipv4:       "127.0.0.1",
		Ports:      []domain.ServicePort{{Name: "http", Port: 9000}},
		Metadata:   map[string]string{"zone": "a"},
		Timestamp:  helpers.TestNow(),
		TTLMs:      300000,
	}
}

func TestCache_WriteValue(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	cache := NewCache[domain.Instance](client, testPrefix, marshalInstance, unmarshalInstance)
	inst := testInstance("inst-1")

	t.Run("success", func(t *testing.T) {
		err := cache.WriteValue(ctx, inst.InstanceID, inst, 60000)
		require.NoError(t, err)

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, inst, items[0])

		ttl, err := client.TTL(ctx, testPrefix+":inst-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		err := cache.WriteValue(ctx, "inst-forever", testInstance("inst-forever"), 0)
		require.NoError(t, err)

		ttl, err := client.TTL(ctx, testPrefix+":inst-forever").Result()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-1), ttl)
	})

	t.Run("when Redis write fails returns internal_server_error", func(t *testing.T) {
		closedClient, err := NewRedisUniversalClient(testRedisAddr)
		require.NoError(t, err)
		closedClient.Close()
		cacheClosed := NewCache[domain.Instance](closedClient, testPrefix, marshalInstance, unmarshalInstance)

		err = cacheClosed.WriteValue(ctx, "x", inst, 60000)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})
}

func TestCache_DeleteValue(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	cache := NewCache[domain.Instance](client, testPrefix, marshalInstance, unmarshalInstance)

	inst := testInstance("inst-del")
	require.NoError(t, cache.WriteValue(ctx, inst.InstanceID, inst, 60000))
	require.NoError(t, cache.DeleteValue(ctx, inst.InstanceID))

	items, err := cache.ListAllValues(ctx)
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
	assert.Nil(t, items)

	// deleting an absent key is not an error
	require.NoError(t, cache.DeleteValue(ctx, inst.InstanceID))
}

func TestCache_ListAllValues(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	cache := NewCache[domain.Instance](client, testPrefix, marshalInstance, unmarshalInstance)

	t.Run("empty cache returns entity not found", func(t *testing.T) {
		items, err := cache.ListAllValues(ctx)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Nil(t, items)
	})

	t.Run("returns all values of the prefix", func(t *testing.T) {
		for _, id := range []string{"list-1", "list-2", "list-3"} {
			require.NoError(t, cache.WriteValue(ctx, id, testInstance(id), 60000))
		}
		require.NoError(t, client.Set(ctx, "other-prefix:list-4", "{}", time.Minute).Err())
		t.Cleanup(func() { client.Del(context.Background(), "other-prefix:list-4") })

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(items))
		for _, i := range items {
			ids = append(ids, i.InstanceID)
		}
		sort.Strings(ids)
		assert.Equal(t, []string{"list-1", "list-2", "list-3"}, ids)
	})

	t.Run("invalid JSON is skipped", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testPrefix+":badjson", "invalid json", 0).Err())

		items, err := cache.ListAllValues(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("only invalid JSON yields entity not found", func(t *testing.T) {
		keys, err := client.Keys(ctx, testPrefix+":list-*").Result()
		require.NoError(t, err)
		require.NoError(t, client.Del(ctx, keys...).Err())

		items, err := cache.ListAllValues(ctx)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Nil(t, items)
	})
}
