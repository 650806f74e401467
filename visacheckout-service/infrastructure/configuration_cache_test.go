package infrastructure

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/draftea/visa-checkout/visacheckout-service/mocks"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeRedisClient struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedisClient() *fakeRedisClient {
	return &fakeRedisClient{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedisClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedisClient) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRedisConfigurationCache(t *testing.T) {
	client := newFakeRedisClient()
	cache := &RedisConfigurationCache{client: client}
	ctx := context.Background()

	payload, found, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, payload)

	require.NoError(t, cache.Set(ctx, "key", []byte(`{"environment":"sandbox"}`), time.Minute))
	assert.Equal(t, time.Minute, client.ttls["key"])

	payload, found, err = cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"environment":"sandbox"}`, string(payload))

	client.err = errors.New("connection refused")
	_, _, err = cache.Get(ctx, "key")
	assert.ErrorContains(t, err, "failed to read cached configuration")
	assert.ErrorContains(t, cache.Set(ctx, "key", []byte(`{}`), time.Minute), "failed to cache configuration")
}

func TestCachedConfigurationProvider_GetConfiguration(t *testing.T) {
	cfg := &domain.Configuration{
		Environment: "production",
		VisaCheckout: domain.MerchantVisaConfig{
			APIKey:             "gwApiKey",
			AcceptedCardBrands: []string{"VISA"},
			Enabled:            true,
		},
	}
	encoded, err := json.Marshal(cfg)
	require.NoError(t, err)

	key := configurationCacheKey("fingerprint")
	fetchErr := errors.New("gateway down")

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockConfigurationCache, *mocks.MockConfigurationProvider)
		expectedError error
	}{
		{
			name: "cache hit skips the gateway",
			setupMocks: func(cache *mocks.MockConfigurationCache, next *mocks.MockConfigurationProvider) {
				cache.EXPECT().Get(mock.Anything, key).Return(encoded, true, nil).Once()
			},
		},
		{
			name: "cache miss fetches and stores",
			setupMocks: func(cache *mocks.MockConfigurationCache, next *mocks.MockConfigurationProvider) {
				cache.EXPECT().Get(mock.Anything, key).Return(nil, false, nil).Once()
				next.EXPECT().GetConfiguration(mock.Anything).Return(cfg, nil).Once()
				cache.EXPECT().Set(mock.Anything, key, encoded, 2*time.Minute).Return(nil).Once()
			},
		},
		{
			name: "cache read error falls through",
			setupMocks: func(cache *mocks.MockConfigurationCache, next *mocks.MockConfigurationProvider) {
				cache.EXPECT().Get(mock.Anything, key).Return(nil, false, errors.New("redis down")).Once()
				next.EXPECT().GetConfiguration(mock.Anything).Return(cfg, nil).Once()
				cache.EXPECT().Set(mock.Anything, key, encoded, 2*time.Minute).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "malformed cache entry is refetched",
			setupMocks: func(cache *mocks.MockConfigurationCache, next *mocks.MockConfigurationProvider) {
				cache.EXPECT().Get(mock.Anything, key).Return([]byte(`{broken`), true, nil).Once()
				next.EXPECT().GetConfiguration(mock.Anything).Return(cfg, nil).Once()
				cache.EXPECT().Set(mock.Anything, key, encoded, 2*time.Minute).Return(nil).Once()
			},
		},
		{
			name: "fetch error is returned as is",
			setupMocks: func(cache *mocks.MockConfigurationCache, next *mocks.MockConfigurationProvider) {
				cache.EXPECT().Get(mock.Anything, key).Return(nil, false, nil).Once()
				next.EXPECT().GetConfiguration(mock.Anything).Return(nil, fetchErr).Once()
			},
			expectedError: fetchErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := mocks.NewMockConfigurationCache(t)
			next := mocks.NewMockConfigurationProvider(t)
			tt.setupMocks(cache, next)

			provider := NewCachedConfigurationProvider(next, cache, "fingerprint", 2*time.Minute, nil)
			got, err := provider.GetConfiguration(context.Background())

			if tt.expectedError != nil {
				assert.Same(t, tt.expectedError, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestConfigurationCacheKey(t *testing.T) {
	key := configurationCacheKey("fingerprint")

	assert.Contains(t, key, configurationCacheKeyPrefix)
	assert.NotContains(t, key, "fingerprint")
	assert.Equal(t, key, configurationCacheKey("fingerprint"))
	assert.NotEqual(t, key, configurationCacheKey("other"))
}

func TestStaticSDKProbe(t *testing.T) {
	assert.True(t, NewStaticSDKProbe(true).Available())
	assert.False(t, NewStaticSDKProbe(false).Available())
}
