package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"stardefender/config"
	"stardefender/game"
)

const pingTimeout = 5 * time.Second

// RedisStore keeps the high score under a plain string key
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects and pings the server
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: redis ping %s: %w", cfg.GetRedisAddr(), err)
	}
	return &RedisStore{client: client, key: game.HighScoreKey}, nil
}

func (r *RedisStore) Load(ctx context.Context) (int, error) {
	score, err := r.client.Get(ctx, r.key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: redis get: %w", err)
	}
	return score, nil
}

func (r *RedisStore) Save(ctx context.Context, score int) error {
	if err := r.client.Set(ctx, r.key, score, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
