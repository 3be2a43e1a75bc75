package response

import "errors"

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// From converts an arbitrary error into an HTTPError. An HTTPError passes
// through unchanged; an error exposing StatusCode() keeps its status with the
// error text as body; anything else becomes a generic 500 whose cause is not
// exposed to the client.
func From(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if sc, ok := err.(statusCode); ok {
		return newError(sc.StatusCode(), "error", err.Error())
	}
	return InternalError()
}
