// Package handler defines the per-request Context and the interceptor chain
// primitives the framework is built around.
//
// A request is served by a single composed callable produced by Chain: every
// interceptor wraps the remainder of the chain and receives the live Context
// plus a zero-argument continuation. Interceptors may short-circuit, observe
// and mutate the Context, or post-process the downstream result:
//
//	func timing(ctx *handler.Context, next handler.Next) (any, error) {
//		start := time.Now()
//		res, err := next()
//		slog.Info("handled", "path", ctx.Path(), "elapsed", time.Since(start))
//		return res, err
//	}
//
// All mutable state is confined to the Context, so the chain contract holds
// under any scheduling model: requests never share a Context and the route
// table is read-only after startup.
package handler
