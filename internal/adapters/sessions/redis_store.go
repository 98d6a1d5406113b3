package sessions

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "eld:session:"

// RedisStore keeps sessions as JSON values with a TTL refreshed on every Put.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, id string) (domain.Session, error) {
	b, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, ports.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("redis session get %q: %w", id, err)
	}

	var s domain.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return domain.Session{}, fmt.Errorf("redis session decode %q: %w", id, err)
	}
	return s, nil
}

func (r *RedisStore) Put(ctx context.Context, id string, s domain.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("redis session encode %q: %w", id, err)
	}

	if err := r.client.Set(ctx, redisKeyPrefix+id, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis session put %q: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis session delete %q: %w", id, err)
	}
	return nil
}
