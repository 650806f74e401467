package infrastructure

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockery --name=ConfigurationCache --output=../mocks --outpkg=mocks --structname=MockConfigurationCache --with-expecter

const (
	configurationCacheKeyPrefix = "visacheckout:configuration:"
	// DefaultConfigurationTTL bounds how stale a cached merchant configuration may be
	DefaultConfigurationTTL = 5 * time.Minute
)

// ConfigurationCache stores serialized merchant configurations
type ConfigurationCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// redisStringClient is the part of redis.Cmdable the cache needs
type redisStringClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisConfigurationCache is a ConfigurationCache backed by Redis
type RedisConfigurationCache struct {
	client redisStringClient
}

// NewRedisConfigurationCache creates a new RedisConfigurationCache
func NewRedisConfigurationCache(client redis.Cmdable) *RedisConfigurationCache {
	return &RedisConfigurationCache{client: client}
}

func (c *RedisConfigurationCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to read cached configuration")
	}
	return payload, true, nil
}

func (c *RedisConfigurationCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache configuration")
	}
	return nil
}

// CachedConfigurationProvider serves configurations from cache and falls back to next.
// Cache failures never fail a lookup.
type CachedConfigurationProvider struct {
	next   domain.ConfigurationProvider
	cache  ConfigurationCache
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedConfigurationProvider creates a provider keyed by the merchant's authorization
func NewCachedConfigurationProvider(
	next domain.ConfigurationProvider,
	cache ConfigurationCache,
	authorizationFingerprint string,
	ttl time.Duration,
	logger *zap.Logger,
) *CachedConfigurationProvider {
	if ttl <= 0 {
		ttl = DefaultConfigurationTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedConfigurationProvider{
		next:   next,
		cache:  cache,
		key:    configurationCacheKey(authorizationFingerprint),
		ttl:    ttl,
		logger: logger,
	}
}

func configurationCacheKey(authorizationFingerprint string) string {
	sum := sha256.Sum256([]byte(authorizationFingerprint))
	return configurationCacheKeyPrefix + hex.EncodeToString(sum[:])
}

// GetConfiguration implements domain.ConfigurationProvider
func (p *CachedConfigurationProvider) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	payload, found, err := p.cache.Get(ctx, p.key)
	if err != nil {
		p.logger.Warn("configuration cache read failed", zap.Error(err))
	}
	if found {
		var cfg domain.Configuration
		if err := json.Unmarshal(payload, &cfg); err == nil {
			return &cfg, nil
		}
		p.logger.Warn("discarding malformed cached configuration", zap.String("key", p.key))
	}

	cfg, err := p.next.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	payload, err = json.Marshal(cfg)
	if err != nil {
		p.logger.Warn("failed to encode configuration for cache", zap.Error(err))
		return cfg, nil
	}
	if err := p.cache.Set(ctx, p.key, payload, p.ttl); err != nil {
		p.logger.Warn("configuration cache write failed", zap.Error(err))
	}

	return cfg, nil
}
