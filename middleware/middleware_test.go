package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/middleware"
)

func runChain(t *testing.T, ic handler.Interceptor, ctx *handler.Context, endpoint handler.HandlerFunc) (any, error) {
	t.Helper()
	return handler.Chain([]handler.Interceptor{ic}, endpoint)(ctx)
}

func newCtx(header http.Header) *handler.Context {
	return handler.NewContext(context.Background(), "GET", "/test", nil, header, nil, nil)
}

func okEndpoint(ctx *handler.Context) (any, error) { return "ok", nil }

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an id and exposes it", func(t *testing.T) {
		t.Parallel()

		ctx := newCtx(nil)
		var seen string
		endpoint := func(c *handler.Context) (any, error) {
			id, ok := middleware.GetRequestID(c)
			require.True(t, ok)
			seen = id
			return nil, nil
		}

		_, err := runChain(t, middleware.RequestID(), ctx, endpoint)
		require.NoError(t, err)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, ctx.ResponseHeader().Get("X-Request-ID"))
	})

	t.Run("custom generator and header", func(t *testing.T) {
		t.Parallel()

		ctx := newCtx(nil)
		ic := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator:  func() string { return "fixed-id" },
			HeaderName: "X-Trace-ID",
		})

		_, err := runChain(t, ic, ctx, okEndpoint)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", ctx.ResponseHeader().Get("X-Trace-ID"))
	})

	t.Run("reuses inbound id when configured", func(t *testing.T) {
		t.Parallel()

		header := http.Header{}
		header.Set("X-Request-ID", "inbound-7")
		ctx := newCtx(header)

		ic := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})
		_, err := runChain(t, ic, ctx, okEndpoint)
		require.NoError(t, err)
		assert.Equal(t, "inbound-7", ctx.ResponseHeader().Get("X-Request-ID"))
	})

	t.Run("skip leaves the request untouched", func(t *testing.T) {
		t.Parallel()

		ctx := newCtx(nil)
		ic := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(ctx *handler.Context) bool { return true },
		})

		_, err := runChain(t, ic, ctx, okEndpoint)
		require.NoError(t, err)
		_, ok := middleware.GetRequestID(ctx)
		assert.False(t, ok)
		assert.Nil(t, ctx.ResponseHeader())
	})

	t.Run("absent without the interceptor", func(t *testing.T) {
		t.Parallel()

		_, ok := middleware.GetRequestID(newCtx(nil))
		assert.False(t, ok)
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs method and path on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		res, err := runChain(t, middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log}), newCtx(nil), okEndpoint)
		require.NoError(t, err)
		assert.Equal(t, "ok", res)

		out := buf.String()
		assert.Contains(t, out, "request handled")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/test")
	})

	t.Run("failures log at error level and pass through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		failing := func(ctx *handler.Context) (any, error) { return nil, assert.AnError }

		_, err := runChain(t, middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log}), newCtx(nil), failing)
		require.ErrorIs(t, err, assert.AnError)

		out := buf.String()
		assert.Contains(t, out, "request failed")
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("skip suppresses the record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		ic := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(ctx *handler.Context) bool { return ctx.Path() == "/test" },
		})

		_, err := runChain(t, ic, newCtx(nil), okEndpoint)
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("slow requests log a warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		ic := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:        log,
			SlowThreshold: 1, // nanosecond, everything is slow
		})

		_, err := runChain(t, ic, newCtx(nil), okEndpoint)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "slow request")
	})
}
