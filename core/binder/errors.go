package binder

import (
	"errors"
	"fmt"
)

// Error variables define handler registration failures detected by Describe.
var (
	// ErrNotAFunc indicates the registered handler is not a function.
	ErrNotAFunc = errors.New("binder: handler must be a function")

	// ErrVariadicHandler indicates the handler is variadic, which has no
	// well-defined binding semantics.
	ErrVariadicHandler = errors.New("binder: variadic handlers are not supported")

	// ErrUnsupportedParam indicates a handler parameter that is neither a
	// *handler.Context nor a (pointer to) struct of bindable fields.
	ErrUnsupportedParam = errors.New("binder: unsupported handler parameter type")

	// ErrUnsupportedResults indicates a handler result list other than
	// (), (T), (error) or (T, error).
	ErrUnsupportedResults = errors.New("binder: unsupported handler result types")
)

// NeedParamError reports a required parameter that was absent from the path,
// query and body of a request. It carries the parameter name and the handler
// identifier so the resulting 400 response is actionable.
type NeedParamError struct {
	Param string
	Doc   string
}

func (e *NeedParamError) Error() string {
	return fmt.Sprintf("binder: missing required parameter %q for %s", e.Param, e.Doc)
}

// BadParamError reports a parameter that was present but could not be coerced
// to the declared field type.
type BadParamError struct {
	Param string
	Err   error
}

func (e *BadParamError) Error() string {
	return fmt.Sprintf("binder: bad parameter %q: %v", e.Param, e.Err)
}

// Unwrap exposes the underlying coercion error.
func (e *BadParamError) Unwrap() error { return e.Err }
