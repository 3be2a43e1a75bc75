package middleware

import (
	"github.com/google/uuid"

	"github.com/davrux/weave/core/handler"
)

// requestIDKey is the context-bag key the request ID is attached under.
const requestIDKey = "middleware.request_id"

// RequestIDConfig configures the request ID interceptor.
type RequestIDConfig struct {
	// Skip disables the interceptor for specific requests.
	Skip func(ctx *handler.Context) bool
	// Generator creates new request IDs (default: UUID v4).
	Generator func() string
	// HeaderName carries the ID on requests and responses
	// (default: "X-Request-ID").
	HeaderName string
	// UseExisting reuses an inbound request ID instead of generating one.
	UseExisting bool
}

// RequestID assigns a unique identifier to each request for tracing and
// logging, exposing it through the context bag and the response headers.
func RequestID() handler.Interceptor {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Interceptor {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string { return uuid.New().String() }
	}

	return func(ctx *handler.Context, next handler.Next) (any, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		var id string
		if cfg.UseExisting {
			id = ctx.Header().Get(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		ctx.Set(requestIDKey, id)
		ctx.SetResponseHeader(cfg.HeaderName, id)

		return next()
	}
}

// GetRequestID retrieves the request ID attached by the interceptor.
func GetRequestID(ctx *handler.Context) (string, bool) {
	v, ok := ctx.Get(requestIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
