package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds the settings for the shared middleware chain.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration
}

// Chain assembles the standard middleware stack. Request ID assignment
// runs first so every later layer, including the access logger, sees it
// on the context.
func Chain(config *Config) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	stack := []func(http.Handler) http.Handler{
		RequestID,
		Logger(config.Logger),
		Recovery(config.Logger),
	}
	if config.CORS != nil {
		stack = append(stack, CORS(config.CORS))
	}
	stack = append(stack,
		limiter.Middleware(),
		Timeout(config.RequestTimeout),
	)

	return func(handler http.Handler) http.Handler {
		h := handler
		for i := len(stack) - 1; i >= 0; i-- {
			h = stack[i](h)
		}
		return h
	}
}
