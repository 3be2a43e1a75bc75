package router

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates no registered pattern matches the request path.
	ErrNotFound = errors.New("router: not found")

	// ErrInvalidPattern indicates a malformed route path pattern.
	ErrInvalidPattern = errors.New("router: invalid route path pattern")

	// ErrDuplicateRoute indicates a (method, pattern) pair registered twice.
	ErrDuplicateRoute = errors.New("router: duplicate route registration")

	// ErrDuplicateParam indicates a parameter name used twice in one pattern.
	ErrDuplicateParam = errors.New("router: duplicate parameter name")
)

// MethodNotAllowedError indicates a path that matches a registered pattern
// with a different HTTP method. Allowed carries the sorted methods available
// for the path, ready for an Allow response header.
type MethodNotAllowedError struct {
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return "router: method not allowed (allowed: " + strings.Join(e.Allowed, ", ") + ")"
}
