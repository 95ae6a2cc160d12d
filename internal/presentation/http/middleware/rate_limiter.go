package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
)

// RateLimiter keeps one token bucket per signed-in user, or per client IP
// for anonymous requests such as login.
type RateLimiter struct {
	limiters map[string]*rateLimiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	entryTTL time.Duration
	now      func() time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows cfg.Requests requests every cfg.Duration seconds
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	requests, seconds := cfg.Requests, cfg.Duration
	if requests <= 0 {
		requests = 100
	}
	if seconds <= 0 {
		seconds = 60
	}
	window := time.Duration(seconds) * time.Second

	return &RateLimiter{
		limiters: make(map[string]*rateLimiterEntry),
		rate:     rate.Every(window / time.Duration(requests)),
		burst:    requests,
		entryTTL: 2 * window,
		now:      time.Now,
	}
}

// getLimiter returns the bucket for key, dropping idle buckets as it goes
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if entry, ok := rl.limiters[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	cutoff := now.Add(-rl.entryTTL)
	for k, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, k)
		}
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = &rateLimiterEntry{limiter: limiter, lastSeen: now}
	return limiter
}

// Middleware returns a Gin middleware that applies the limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID := GetUserID(c); userID != nil {
			key = "user:" + userID.String()
		}

		limiter := rl.getLimiter(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))

		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			response.ErrorWithCode(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
