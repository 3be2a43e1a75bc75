package middleware

import (
	"log/slog"
	"time"

	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/core/logger"
)

// LoggingConfig configures the request logging interceptor.
type LoggingConfig struct {
	// Skip disables logging for specific requests (health checks, metrics).
	Skip func(ctx *handler.Context) bool
	// Logger receives the records (default: slog.Default()).
	Logger *slog.Logger
	// Level for successful requests (default: slog.LevelInfo).
	Level slog.Level
	// SlowThreshold, when positive, flags requests that take longer.
	SlowThreshold time.Duration
}

// Logging records one structured log line per request: method, path, request
// ID when present, elapsed time and the outcome. Failures log at error
// level with the original error before it is converted for the client.
func Logging() handler.Interceptor {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithConfig is Logging with custom configuration.
func LoggingWithConfig(cfg LoggingConfig) handler.Interceptor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(ctx *handler.Context, next handler.Next) (any, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		start := time.Now()
		result, err := next()
		elapsed := time.Since(start)

		id, _ := GetRequestID(ctx)
		attrs := []any{
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.Path()),
			logger.RequestID(id),
			logger.Duration(elapsed),
		}

		switch {
		case err != nil:
			cfg.Logger.Error("request failed", append(attrs, logger.Error(err))...)
		case cfg.SlowThreshold > 0 && elapsed > cfg.SlowThreshold:
			cfg.Logger.Warn("slow request", attrs...)
		default:
			cfg.Logger.Log(ctx, cfg.Level, "request handled", attrs...)
		}

		return result, err
	}
}
