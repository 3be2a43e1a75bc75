package handler

// HandlerFunc is a fully-bound terminal endpoint: parameter binding has
// already been folded in, so invoking it runs the user handler against the
// live request context.
type HandlerFunc func(ctx *Context) (any, error)

// Next is the zero-argument continuation handed to an interceptor. Calling it
// invokes the rest of the chain and yields the downstream result.
type Next func() (any, error)

// Interceptor wraps the remainder of a chain. It may call next at most once:
// calling it and returning the result (possibly transformed), never calling
// it and short-circuiting with its own result, or returning an error which
// aborts the chain. A second call to next fails with ErrNextCalledTwice.
type Interceptor func(ctx *Context, next Next) (any, error)

// ErrorHandler observes errors that escape a chain before they are converted
// into a transport response.
type ErrorHandler func(ctx *Context, err error)
