package handler

import "errors"

var (
	// ErrNextCalledTwice reports an interceptor invoking its continuation
	// more than once. The chain contract allows at most one invocation;
	// replaying downstream layers is never well-defined, so the second call
	// fails instead.
	ErrNextCalledTwice = errors.New("handler: chain continuation invoked more than once")
)
