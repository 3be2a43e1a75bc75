package weave

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/davrux/weave/core/binder"
	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/core/router"
)

// Processor is a collaborator hook wrapping the entire chain execution of a
// request, typically used for transactional resource scoping (opening a
// database session before the chain runs, committing or rolling it back
// after). A processor must call its continuation at most once and must
// release any resource it acquired on every exit path.
type Processor = handler.Interceptor

// Application is the top-level registry: it owns the route table, the ordered
// global interceptor list and the processor hooks. Construct one instance at
// process start and pass it by reference; there is no ambient global state,
// so independent Applications coexist freely (and test cleanly).
//
// Registration (AddMapping, AddInterceptor, UseProcessor) is meant for
// startup and is not synchronized against in-flight dispatches.
type Application struct {
	router       *router.Router
	interceptors []handler.Interceptor
	processors   []Processor
	errorHook    handler.ErrorHandler
	logger       *slog.Logger
}

// endpoint is what the route table stores per (method, pattern): the binding
// plan captured at registration time plus the handler's own interceptors.
type endpoint struct {
	sig          *binder.Signature
	interceptors []handler.Interceptor
}

// Option configures an Application during construction.
type Option func(*Application)

// WithLogger sets the logger used for dispatch-boundary failures.
func WithLogger(logger *slog.Logger) Option {
	return func(app *Application) {
		if logger != nil {
			app.logger = logger
		}
	}
}

// WithErrorHook registers an observer invoked with every error that escapes a
// chain, before it is converted into a response. The hook sees the original
// error; the client never does.
func WithErrorHook(hook handler.ErrorHandler) Option {
	return func(app *Application) {
		app.errorHook = hook
	}
}

// New creates an Application. The default logger discards everything,
// matching the rest of the framework's quiet-by-default posture.
func New(opts ...Option) *Application {
	app := &Application{
		router: router.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// AddMapping registers a handler for (method, path pattern). The handler's
// signature is inspected once, here, and the derived binding plan is cached
// on the route. Handlers previously wrapped with handler.Attach keep their
// attached interceptors, which run after all global interceptors.
//
// Registration fails on duplicate (method, pattern) pairs, malformed
// patterns, and unbindable handler signatures.
func (app *Application) AddMapping(pattern, method string, h any) error {
	var attached []handler.Interceptor
	if d, ok := h.(*handler.Decorated); ok {
		attached = d.Interceptors
		h = d.Handler
	}

	sig, err := binder.Describe(h)
	if err != nil {
		return fmt.Errorf("mapping %s %s: %w", method, pattern, err)
	}

	return app.router.Add(method, pattern, &endpoint{sig: sig, interceptors: attached})
}

// Get registers a GET handler, panicking on registration errors.
// Route registration happens at startup where failing fast is the only
// sensible policy.
func (app *Application) Get(pattern string, h any) { app.mustMap(pattern, "GET", h) }

// Post registers a POST handler, panicking on registration errors.
func (app *Application) Post(pattern string, h any) { app.mustMap(pattern, "POST", h) }

// Put registers a PUT handler, panicking on registration errors.
func (app *Application) Put(pattern string, h any) { app.mustMap(pattern, "PUT", h) }

// Delete registers a DELETE handler, panicking on registration errors.
func (app *Application) Delete(pattern string, h any) { app.mustMap(pattern, "DELETE", h) }

func (app *Application) mustMap(pattern, method string, h any) {
	if err := app.AddMapping(pattern, method, h); err != nil {
		panic(err)
	}
}

// AddInterceptor appends interceptors to the global list. The list is
// consulted at dispatch time, so interceptors apply to every route no matter
// when it was registered; only the relative order of AddInterceptor calls
// matters. The first registered interceptor is the outermost layer.
func (app *Application) AddInterceptor(interceptors ...handler.Interceptor) {
	app.interceptors = append(app.interceptors, interceptors...)
}

// UseProcessor registers processor hooks wrapping the whole chain, outside
// all interceptors. Multiple processors nest in registration order, the first
// outermost.
func (app *Application) UseProcessor(processors ...Processor) {
	app.processors = append(app.processors, processors...)
}

// Routes returns the registered routes for introspection.
func (app *Application) Routes() []router.Route {
	return app.router.Routes()
}

// execute resolves the chain for an endpoint and runs it against ctx.
// Layering, outermost first: processors, global interceptors, per-handler
// interceptors, then the bound handler. Binding happens when the innermost
// continuation reaches the terminal, so outer layers run regardless of
// binding outcome.
func (app *Application) execute(ep *endpoint, ctx *handler.Context) (any, error) {
	terminal := func(c *handler.Context) (any, error) {
		return binder.Invoke(ep.sig, c)
	}
	chain := handler.Chain(append(slices.Clone(app.interceptors), ep.interceptors...), terminal)
	return handler.Chain(app.processors, chain)(ctx)
}
