package redisStore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *Store) Del(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *Store) IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	count, err := s.client.Exists(ctx, key).Result()
	return count > 0, err
}

// these back the document store - one sorted set per organization,
// scored by creation time

func (s *Store) SortedAdd(ctx context.Context, key string, member string, score float64) error {
	return s.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// SortedTopN returns at most n members with the highest scores, descending.
func (s *Store) SortedTopN(ctx context.Context, key string, n int) ([]string, error) {
	if n < 1 {
		return []string{}, nil
	}
	return s.client.ZRevRange(ctx, key, 0, int64(n-1)).Result()
}

func (s *Store) SortedRemove(ctx context.Context, key string, members ...interface{}) error {
	return s.client.ZRem(ctx, key, members...).Err()
}
