// Package database scopes PostgreSQL sessions to requests.
//
// It wraps jackc/pgx with pooled connections, retrying startup, goose-based
// migrations and a request Processor that opens one transaction per request:
//
//	pool, err := database.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	app.UseProcessor(database.Processor(pool))
//
//	app.Post("/user", func(ctx *handler.Context, p createUser) error {
//		return database.Insert(ctx, "users", storage.FromStruct(p))
//	})
//
// The transaction commits when the chain returns normally and rolls back on
// any error, short-circuit or panic; the session is released exactly once on
// every exit path.
package database
