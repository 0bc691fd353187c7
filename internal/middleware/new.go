package middleware

import (
	"rfq-agent/config"
	"rfq-agent/pkg/log"
)

type Middleware struct {
	l log.Logger
	// limiter is nil when rate limiting is disabled.
	limiter *rateLimiter
}

func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.Burst, limiterIdleTTL)
	}
	return mw
}
