package response

import "net/http"

// HTTPError is a structured error bound to a fixed HTTP status code.
// Handlers and interceptors return (or wrap) one to short-circuit a request
// with a specific outcome; the application boundary converts it into the
// final status, headers and body.
//
// HTTPError is a value type: the With* methods return copies, so the
// predefined constructors are safe to share.
type HTTPError struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Header  http.Header `json:"-"`
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// StatusCode returns the HTTP status bound to the error.
func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns a copy of the error with a custom body text.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithHeader returns a copy of the error with an additional response header.
func (e HTTPError) WithHeader(key, value string) HTTPError {
	h := make(http.Header, len(e.Header)+1)
	for k, vs := range e.Header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	h.Set(key, value)
	e.Header = h
	return e
}

// newError builds an HTTPError with the text/html content type the taxonomy
// uses for plain-text bodies.
func newError(status int, code, message string) HTTPError {
	return HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
		Header:  http.Header{"Content-Type": []string{"text/html"}},
	}
}
