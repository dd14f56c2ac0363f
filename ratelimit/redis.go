package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "helpnet:ratelimit:"
	defaultTimeout = 2 * time.Second
)

// RedisLimiter counts actions per key in fixed one minute windows shared by
// every server instance
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	now    func() time.Time
}

// NewRedisLimiter allows PerMinute plus Burst actions in each window
func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	cfg = cfg.withDefaults()

	return &RedisLimiter{
		client: client,
		limit:  int64(cfg.PerMinute + cfg.Burst),
		now:    time.Now,
	}
}

func (l *RedisLimiter) windowKey(key string) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, key, l.now().Unix()/int64(window.Seconds()))
}

func (l *RedisLimiter) Allow(key string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	k := l.windowKey(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return incr.Val() <= l.limit, nil
}

// Connect returns a redis client for conn, a redis:// url
func Connect(conn string) (*redis.Client, error) {
	opts, err := redis.ParseURL(conn)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
