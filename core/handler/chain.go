package handler

// Chain folds interceptors around endpoint into a single callable.
//
// The fold runs right-to-left: the last interceptor wraps the endpoint, the
// second-to-last wraps that, and so on, so the first interceptor in the slice
// is the outermost layer. It executes first on the way in and last on the way
// out (classic onion ordering).
//
// Each invocation of the resulting HandlerFunc creates fresh continuation
// closures, so per-request state (the single-call guard) never leaks between
// requests.
func Chain(interceptors []Interceptor, endpoint HandlerFunc) HandlerFunc {
	h := endpoint
	for i := len(interceptors) - 1; i >= 0; i-- {
		h = wrap(interceptors[i], h)
	}
	return h
}

// wrap layers a single interceptor over next, guarding against the
// continuation being invoked more than once.
func wrap(ic Interceptor, next HandlerFunc) HandlerFunc {
	return func(ctx *Context) (any, error) {
		called := false
		cont := func() (any, error) {
			if called {
				return nil, ErrNextCalledTwice
			}
			called = true
			return next(ctx)
		}
		return ic(ctx, cont)
	}
}
