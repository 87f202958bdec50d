package redis

import (
	"context"
	"errors"
	"time"

	"yatube/internal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// scanBatch is the COUNT hint for SCAN while clearing.
const scanBatch = 100

// PageCacheRepositoryRedis keeps rendered pages under Prefix in Redis.
type PageCacheRepositoryRedis struct {
	Client *redis.Client
	Prefix string
}

func NewPageCacheRepositoryRedis(client *redis.Client, prefix string) *PageCacheRepositoryRedis {
	return &PageCacheRepositoryRedis{
		Client: client,
		Prefix: prefix,
	}
}

func (r *PageCacheRepositoryRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	page, err := r.Client.Get(ctx, r.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return page, true, nil
}

func (r *PageCacheRepositoryRedis) Set(ctx context.Context, key string, page []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, r.Prefix+key, page, ttl).Err()
}

// Clear drops every cached page under Prefix.
func (r *PageCacheRepositoryRedis) Clear(ctx context.Context) error {
	var cursor uint64
	removed := 0
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, r.Prefix+"*", scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	config.Logger.Info("Page cache cleared", zap.String("prefix", r.Prefix), zap.Int("keys", removed))
	return nil
}
