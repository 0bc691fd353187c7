package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"rfq-agent/pkg/metrics"
	"rfq-agent/pkg/response"
)

// RateLimit throttles requests per client IP. It is a no-op when disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.limiter.Allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", ip)
			metrics.RFQFailed.WithLabelValues(metrics.ReasonRateLimited).Inc()
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// limiterIdleTTL is how long a client may stay silent before its bucket is dropped.
const limiterIdleTTL = 5 * time.Minute

// rateLimiter keeps one token bucket per client, dropping idle clients.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int, idleTTL time.Duration) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000, // Max unique clients tracked
			nil,   // No eviction callback
			idleTTL,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

// Allow reports whether key may proceed. Every call re-adds the bucket so its
// idle timer restarts and an active client never gets a fresh burst.
func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	return limiter.Allow()
}
