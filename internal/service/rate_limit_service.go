package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// RedisRateLimitKeyPrefix namespaces the shared counters of the create route.
	RedisRateLimitKeyPrefix = "frontdesk:ratelimit:"

	// Timeout for a single Redis round trip
	redisRateLimitTimeout = 500 * time.Millisecond

	// How often idle per-client limiters are dropped
	limiterSweepInterval = 5 * time.Minute

	// How long a limiter must be idle before it is dropped
	limiterIdleThreshold = 10 * time.Minute
)

// RateLimiter decides whether a client may make one more request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// =============================================================================
// In-process limiter
// =============================================================================

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter keeps one token bucket per client key. It is used when no
// Redis is configured, so limits apply per process.
type LocalRateLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

func NewLocalRateLimiter(requestsPerSecond float64, burst int) *LocalRateLimiter {
	return &LocalRateLimiter{
		limit:     rate.Limit(requestsPerSecond),
		burst:     burst,
		clients:   make(map[string]*clientLimiter),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepInterval {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterIdleThreshold {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1), nil
}

// =============================================================================
// Redis limiter
// =============================================================================

// incrWindowScript counts a request in the current window and starts the
// window's expiry on its first hit.
var incrWindowScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return count
`)

// RedisRateLimiter shares a fixed-window counter across instances. A window
// admits Burst requests and lasts Burst/RequestsPerSecond seconds, so the
// sustained rate matches the in-process limiter.
type RedisRateLimiter struct {
	client *redis.Client
	log    *logrus.Logger
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, log *logrus.Logger, requestsPerSecond float64, burst int) *RedisRateLimiter {
	window := time.Second
	if requestsPerSecond > 0 && burst > 0 {
		window = time.Duration(float64(burst) / requestsPerSecond * float64(time.Second))
	}
	if window < time.Millisecond {
		window = time.Millisecond
	}

	return &RedisRateLimiter{
		client: client,
		log:    log,
		limit:  burst,
		window: window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisRateLimitTimeout)
	defer cancel()

	slot := time.Now().UnixMilli() / l.window.Milliseconds()
	redisKey := fmt.Sprintf("%s%s:%d", RedisRateLimitKeyPrefix, key, slot)

	count, err := incrWindowScript.Run(ctx, l.client, []string{redisKey}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return count <= int64(l.limit), nil
}
