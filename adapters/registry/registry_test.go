package registry

import (
	"context"
	"testing"

	"mylegacyregistry/domain"
	"mylegacyregistry/interfaces/mock"
	"mylegacyregistry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheRegistry_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.registry.go: cache is required", func() {
		NewCacheRegistry(nil)
	})
}

func TestCacheRegistry_Instances(t *testing.T) {
	tests := []struct {
		name          string
		cache         *mock.CacheMock[domain.Instance]
		expected      []domain.Instance
		expectedError bool
	}{
		{
			name: "ok",
			cache: &mock.CacheMock[domain.Instance]{
				ListAllValuesFunc: func(ctx context.Context) ([]domain.Instance, error) {
					return []domain.Instance{{InstanceID: "i-1", App: "WebServer"}}, nil
				},
			},
			expected: []domain.Instance{{InstanceID: "i-1", App: "WebServer"}},
		},
		{
			name: "empty store is an empty registry",
			cache: &mock.CacheMock[domain.Instance]{
				ListAllValuesFunc: func(ctx context.Context) ([]domain.Instance, error) {
					return nil, service.NewEntityNotFoundError("Entity not found", nil)
				},
			},
			expected: []domain.Instance{},
		},
		{
			name: "store failure",
			cache: &mock.CacheMock[domain.Instance]{
				ListAllValuesFunc: func(ctx context.Context) ([]domain.Instance, error) {
					return nil, service.NewInternalServerError("Redis scan keys error", assert.AnError)
				},
			},
			expectedError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCacheRegistry(tt.cache).Instances(context.Background())
			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, service.IsInternalServerError(err))
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, tt.cache.ListAllValuesCalls(), 1)
		})
	}
}
