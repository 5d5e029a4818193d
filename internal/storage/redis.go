package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
)

// Redis stores each key as a plain Redis string.
type Redis struct {
	client redis.Cmdable
	closer io.Closer
	prefix string
}

// NewRedis creates a store backed by a Redis server.
func NewRedis(addr, password string, db int) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{client: rdb, closer: rdb, prefix: "simlab:"}
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client redis.Cmdable) *Redis {
	return &Redis{client: client, prefix: "simlab:"}
}

// Close releases the connection pool when this store created it.
func (r *Redis) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", errors.Join(ErrUnavailable, err))
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, errors.Join(ErrUnavailable, err))
	}
	return data, nil
}

func (r *Redis) Put(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, errors.Join(ErrUnavailable, err))
	}
	return nil
}
