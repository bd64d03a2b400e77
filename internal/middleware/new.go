package middleware

import (
	"dayplanner/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers: identity resolution
// and per-user rate limiting.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each user's
// request rate; zero disables limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: rl,
	}
}
