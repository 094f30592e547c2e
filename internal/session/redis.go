package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedis(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func key(sessionID string) string {
	return "session:confirmed:" + sessionID
}

func (s *RedisStore) Confirmed(ctx context.Context, sessionID string) (bool, error) {
	val, err := s.client.Get(ctx, key(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "1", nil
}

func (s *RedisStore) MarkConfirmed(ctx context.Context, sessionID string, ttl time.Duration) error {
	return s.client.Set(ctx, key(sessionID), "1", ttl).Err()
}

var _ Store = (*RedisStore)(nil)
