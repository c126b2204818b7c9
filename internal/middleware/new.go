package middleware

import (
	"taskextreme-ai/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil disables limiting
}

// New creates the shared middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
