package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"rxconsole/internal/domain/repository"
)

// redisStore keeps the token under one key so it survives console restarts.
type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a token store on an existing redis client.
func NewRedisStore(client *redis.Client, key string) repository.TokenRepository {
	return &redisStore{client: client, key: key}
}

func (s *redisStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrTokenNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "redis get session token")
	}

	return token, nil
}

// Set stores the token; redis expires it with the ttl.
func (s *redisStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set session token")
	}

	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrap(err, "redis clear session token")
	}

	return nil
}
