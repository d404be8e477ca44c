package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 15 * time.Minute
)

// RateLimiterConfig configures a RateLimiter.
type RateLimiterConfig struct {
	// Name separates the counters of different limiters sharing one Redis.
	Name           string
	MaxAttempts    int
	WindowDuration time.Duration
	// Disabled lets every request through, for test environments.
	Disabled bool
}

// counterStore counts hits for a key inside a fixed window.
type counterStore interface {
	hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter provides IP-based fixed-window rate limiting. Counters live in
// Redis when a client is supplied, otherwise in process memory.
type RateLimiter struct {
	store          counterStore
	name           string
	maxAttempts    int
	windowDuration time.Duration
	disabled       bool
}

// NewRateLimiter creates a rate limiter. client may be nil.
func NewRateLimiter(client *redis.Client, cfg RateLimiterConfig) *RateLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = defaultWindowDuration
	}
	if cfg.Name == "" {
		cfg.Name = "default"
	}

	var store counterStore
	if client != nil {
		store = &redisStore{client: client}
	} else {
		store = newMemoryStore()
	}

	return &RateLimiter{
		store:          store,
		name:           cfg.Name,
		maxAttempts:    cfg.MaxAttempts,
		windowDuration: cfg.WindowDuration,
		disabled:       cfg.Disabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(rl.windowDuration.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				"Too many requests. Please try again later.",
				string(domainerror.ErrCodeRateLimited),
			))
			return
		}

		c.Next()
	}
}

// allow records a hit for key and reports whether it is within the limit.
// Store failures let the request through.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	count, err := rl.store.hit(ctx, "ratelimit:"+rl.name+":"+key, rl.windowDuration)
	if err != nil {
		slog.Warn("Rate limiter store unavailable", "limiter", rl.name, "error", err)
		return true
	}
	return count <= int64(rl.maxAttempts)
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return count, nil
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

func (s *memoryStore) hit(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{attempts: 1, resetTime: now.Add(window)}
		s.evictExpired(now)
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

// evictExpired drops finished windows so the map does not grow without bound.
func (s *memoryStore) evictExpired(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}
