package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/davrux/weave/core/handler"
)

// clientKey is the context-bag key the client is attached under.
const clientKey = "redis.client"

// Attach returns an interceptor exposing the shared client through the
// request context, so handlers reach it the same way they reach the database
// transaction. The client is process-wide; unlike a transaction there is
// nothing to release per request.
func Attach(client redis.UniversalClient) handler.Interceptor {
	return func(ctx *handler.Context, next handler.Next) (any, error) {
		ctx.Set(clientKey, client)
		return next()
	}
}

// Client returns the client attached to the request. It panics when Attach
// is not registered, which is a wiring bug rather than a runtime condition.
func Client(ctx *handler.Context) redis.UniversalClient {
	return ctx.MustGet(clientKey).(redis.UniversalClient)
}
