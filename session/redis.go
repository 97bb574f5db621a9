package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists the session record in Redis as two string keys,
// <prefix>:token and <prefix>:user. It lets multiple processes on one
// machine share a single session.
//
//	Performance: Load is 1 MGET; Save and Clear are single transactions.
type RedisBackend struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisBackend creates a [RedisBackend] with the given key prefix.
// An empty prefix defaults to "gshop".
func NewRedisBackend(client redis.UniversalClient, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "gshop"
	}
	return &RedisBackend{
		redis:  client,
		prefix: prefix,
	}
}

func (b *RedisBackend) tokenKey() string {
	return b.prefix + ":token"
}

func (b *RedisBackend) userKey() string {
	return b.prefix + ":user"
}

// Load describes the load operation and its observable behavior.
func (b *RedisBackend) Load(ctx context.Context) (Record, error) {
	vals, err := b.redis.MGet(ctx, b.tokenKey(), b.userKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var rec Record
	if len(vals) > 0 {
		if s, ok := vals[0].(string); ok {
			rec.Token = s
		}
	}
	if len(vals) > 1 {
		if s, ok := vals[1].(string); ok {
			rec.User = s
		}
	}

	return rec, nil
}

// Save writes both entries in a single transaction so no reader can observe
// the token without the user entry.
func (b *RedisBackend) Save(ctx context.Context, rec Record) error {
	_, err := b.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, b.tokenKey(), rec.Token, 0)
		pipe.Set(ctx, b.userKey(), rec.User, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Clear removes both entries. Clearing an absent record is a no-op.
func (b *RedisBackend) Clear(ctx context.Context) error {
	if err := b.redis.Del(ctx, b.tokenKey(), b.userKey()).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Ping returns a point-in-time Redis availability check.
func (b *RedisBackend) Ping(ctx context.Context) error {
	if err := b.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
