package handler

import "slices"

// Decorated pairs a user handler with interceptors that must run for it on
// every route it is mapped to. Per-handler interceptors always execute after
// all application-wide interceptors, closest to the handler.
type Decorated struct {
	Handler      any
	Interceptors []Interceptor
}

// Attach wraps a handler with per-handler interceptors. The first interceptor
// given is the outermost of the attached set. Attaching to an already
// decorated handler layers the new interceptors outside the existing ones:
//
//	Attach(Attach(h, inner), outer) // executes outer, inner, h
func Attach(h any, interceptors ...Interceptor) *Decorated {
	if d, ok := h.(*Decorated); ok {
		return &Decorated{
			Handler:      d.Handler,
			Interceptors: append(slices.Clone(interceptors), d.Interceptors...),
		}
	}
	return &Decorated{Handler: h, Interceptors: slices.Clone(interceptors)}
}
