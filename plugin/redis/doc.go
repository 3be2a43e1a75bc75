// Package redis connects a shared Redis client and exposes it to request
// handlers through the context bag:
//
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	app.AddInterceptor(redis.Attach(client))
package redis
