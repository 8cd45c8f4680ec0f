package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key used when none is configured.
const DefaultRedisKey = "goauthclient:token"

// RedisTokenStore persists the token under a single Redis key. Useful when
// the client runs on a host whose local disk is not durable, or when a
// deployment already carries a Redis.
type RedisTokenStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisTokenStore describes the newredistokenstore operation and its observable behavior.
//
// NewRedisTokenStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRedisTokenStore(client redis.UniversalClient, key string) *RedisTokenStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisTokenStore{client: client, key: key}
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or security checks fail.
func (r *RedisTokenStore) Load(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or security checks fail.
func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	return r.client.Set(ctx, r.key, token, 0).Err()
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or security checks fail.
// Clear is idempotent: deleting an absent key succeeds.
func (r *RedisTokenStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

