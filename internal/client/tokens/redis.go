package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "blogcli"

type RedisStorage struct {
	rdb   redis.UniversalClient
	scope string
}

func NewRedisStorage(rdb redis.UniversalClient, scope string) *RedisStorage {
	return &RedisStorage{rdb: rdb, scope: scope}
}

// NewRedisClient connects to addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

func (s *RedisStorage) key(name string) string {
	return redisKey(s.scope, name)
}

func redisKey(scope, name string) string {
	return redisKeyPrefix + ":" + scope + ":" + name
}

func (s *RedisStorage) Token(ctx context.Context) (string, error) {
	return s.get(ctx, KeyToken)
}

func (s *RedisStorage) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, KeyRefreshToken)
}

func (s *RedisStorage) SetToken(ctx context.Context, token string) error {
	if err := s.rdb.Set(ctx, s.key(KeyToken), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", KeyToken, err)
	}
	return nil
}

func (s *RedisStorage) Remove(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key(KeyToken), s.key(KeyRefreshToken)).Err(); err != nil {
		return fmt.Errorf("failed to remove tokens: %w", err)
	}
	return nil
}

func (s *RedisStorage) get(ctx context.Context, name string) (string, error) {
	v, err := s.rdb.Get(ctx, s.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", name, err)
	}
	return v, nil
}
