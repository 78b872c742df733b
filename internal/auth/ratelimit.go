package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles repeated login attempts per key (email + client IP)
// using a fixed Redis window. When Redis is unreachable the limiter fails
// open: login availability is preferred over throttling.
type LoginLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginLimiter builds a limiter; a nil client disables it.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LoginLimiter{client: client, max: max, window: window}
}

// Allow reports whether another attempt for key is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}

	redisKey := fmt.Sprintf("login_attempts:%s", key)
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, redisKey, l.window)
	}
	return count <= int64(l.max)
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, fmt.Sprintf("login_attempts:%s", key))
}
