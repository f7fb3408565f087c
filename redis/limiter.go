package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter implements a sliding-window limit on login attempts.
// The auth service fails open when Redis is unreachable.
type LoginLimiter struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{
		Client: client,
		Limit:  5,
		Window: 15 * time.Minute,
	}
}

func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-l.Window)
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	if err := l.Client.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.Unix())).Err(); err != nil {
		return false, fmt.Errorf("failed to clean old entries: %w", err)
	}

	count, err := l.Client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count entries: %w", err)
	}
	if count >= int64(l.Limit) {
		return false, nil
	}

	member := fmt.Sprintf("%d", now.UnixNano())
	if err := l.Client.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: member,
	}).Err(); err != nil {
		return false, fmt.Errorf("failed to add entry: %w", err)
	}

	// Expire the key after the window plus a small buffer.
	_ = l.Client.Expire(ctx, redisKey, l.Window+time.Minute).Err()

	return true, nil
}
