// Package health provides liveness and readiness handlers ready to register
// on an Application:
//
//	app.Get("/health/live", health.Liveness)
//	app.Get("/health/ready", health.Readiness(log,
//		database.Healthcheck(pool),
//		redis.Healthcheck(client),
//	))
package health

import (
	"context"
	"log/slog"

	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/core/logger"
	"github.com/davrux/weave/core/response"
)

// Probe verifies one dependency is functioning.
type Probe func(ctx context.Context) error

// Liveness reports the process is up. No dependency checks; always 200.
func Liveness() string { return "ALIVE" }

// Ping returns an empty 200 for high-frequency checks.
func Ping() {}

// Readiness builds a handler that runs every probe and reports 503 as soon as
// one fails. The failing probe's error is logged, never sent to the client.
func Readiness(log *slog.Logger, probes ...Probe) func(ctx *handler.Context) (string, error) {
	return func(ctx *handler.Context) (string, error) {
		for _, probe := range probes {
			if err := probe(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return "", response.ServiceUnavailable()
			}
		}
		return "READY", nil
	}
}
