package store

import (
	"context"
	"errors"

	goRedis "github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *goRedis.Client
}

func NewRedis(client *goRedis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}

func (r *redisStore) Save(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}
