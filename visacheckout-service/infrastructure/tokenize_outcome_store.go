package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/draftea/visa-checkout/shared/models"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	tokenizeClaimKeyPrefix   = "visacheckout:tokenize:claim:"
	tokenizeOutcomeKeyPrefix = "visacheckout:tokenize:outcome:"
	// DefaultTokenizeOutcomeTTL covers the redelivery window of the request queue
	DefaultTokenizeOutcomeTTL = 24 * time.Hour
)

type redisClaimClient interface {
	redisStringClient
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisTokenizeOutcomeStore is a domain.TokenizeOutcomeStore backed by Redis
type RedisTokenizeOutcomeStore struct {
	client redisClaimClient
	ttl    time.Duration
}

// NewRedisTokenizeOutcomeStore creates a new RedisTokenizeOutcomeStore
func NewRedisTokenizeOutcomeStore(client redis.Cmdable, ttl time.Duration) *RedisTokenizeOutcomeStore {
	if ttl <= 0 {
		ttl = DefaultTokenizeOutcomeTTL
	}
	return &RedisTokenizeOutcomeStore{client: client, ttl: ttl}
}

func (s *RedisTokenizeOutcomeStore) Claim(ctx context.Context, requestID models.ID) (bool, error) {
	claimed, err := s.client.SetNX(ctx, tokenizeClaimKeyPrefix+requestID.String(), time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim tokenize request")
	}
	return claimed, nil
}

func (s *RedisTokenizeOutcomeStore) Get(ctx context.Context, requestID models.ID) (*domain.TokenizeOutcome, bool, error) {
	payload, err := s.client.Get(ctx, tokenizeOutcomeKeyPrefix+requestID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to read tokenize outcome")
	}

	var outcome domain.TokenizeOutcome
	if err := json.Unmarshal(payload, &outcome); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode tokenize outcome")
	}
	return &outcome, true, nil
}

func (s *RedisTokenizeOutcomeStore) Save(ctx context.Context, requestID models.ID, outcome *domain.TokenizeOutcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return errors.Wrap(err, "failed to encode tokenize outcome")
	}
	if err := s.client.Set(ctx, tokenizeOutcomeKeyPrefix+requestID.String(), payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store tokenize outcome")
	}
	return nil
}
