// Package weave is a minimal web-application framework: URL-to-handler
// mapping, a per-request context, an interceptor chain, parameter binding
// from path/query/body into handler arguments, and plugin hooks for scoped
// resources such as database transactions.
//
//	app := weave.New()
//	app.Get("/user/{id}", func(p struct {
//		ID int64 `param:"id"`
//	}) any {
//		return map[string]any{"id": p.ID}
//	})
//	app.AddInterceptor(middleware.RequestID())
//	http.ListenAndServe(":8080", app)
//
// Handlers declare their inputs as structs; the binder resolves each field
// from path parameters, then query parameters, then the request body, and
// coerces it to the declared type. A parameter of type *handler.Context
// receives the live request context instead.
package weave
