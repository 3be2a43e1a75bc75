package response

import (
	"net/http"
	"strings"
)

// Redirects carry an empty body and a Location header.

// Found builds a 302 redirect to url.
func Found(url string) HTTPError {
	return newError(http.StatusFound, "found", "").WithHeader("Location", url)
}

// SeeOther builds a 303 redirect to url, the canonical post-POST redirect.
func SeeOther(url string) HTTPError {
	return newError(http.StatusSeeOther, "see_other", "").WithHeader("Location", url)
}

// TempRedirect builds a 307 redirect to url, preserving the request method.
func TempRedirect(url string) HTTPError {
	return newError(http.StatusTemporaryRedirect, "temporary_redirect", "").WithHeader("Location", url)
}

// NotModified builds a bodyless 304 response.
func NotModified() HTTPError {
	return HTTPError{Status: http.StatusNotModified, Code: "not_modified"}
}

// BadRequest builds a 400 response with the given body text.
func BadRequest(text string) HTTPError {
	return newError(http.StatusBadRequest, "bad_request", text)
}

// Unauthorized builds a 401 response.
func Unauthorized() HTTPError {
	return newError(http.StatusUnauthorized, "unauthorized", "unauthorized")
}

// Forbidden builds a 403 response.
func Forbidden() HTTPError {
	return newError(http.StatusForbidden, "forbidden", "forbidden")
}

// NotFound builds a 404 response with an optional custom body.
func NotFound(text string) HTTPError {
	return newError(http.StatusNotFound, "not_found", text)
}

// MethodNotAllowed builds a 405 response whose Allow header lists the methods
// registered for the path.
func MethodNotAllowed(methods ...string) HTTPError {
	e := newError(http.StatusMethodNotAllowed, "method_not_allowed", "")
	if len(methods) > 0 {
		e = e.WithHeader("Allow", strings.Join(methods, ", "))
	}
	return e
}

// NotAcceptable builds a 406 response.
func NotAcceptable() HTTPError {
	return newError(http.StatusNotAcceptable, "not_acceptable", "not acceptable")
}

// Conflict builds a 409 response.
func Conflict(text string) HTTPError {
	if text == "" {
		text = "conflict"
	}
	return newError(http.StatusConflict, "conflict", text)
}

// Gone builds a 410 response.
func Gone() HTTPError {
	return newError(http.StatusGone, "gone", "gone")
}

// PreconditionFailed builds a 412 response.
func PreconditionFailed() HTTPError {
	return newError(http.StatusPreconditionFailed, "precondition_failed", "precondition failed")
}

// UnsupportedMediaType builds a 415 response.
func UnsupportedMediaType() HTTPError {
	return newError(http.StatusUnsupportedMediaType, "unsupported_media_type", "unsupported media type")
}

// UnavailableForLegalReasons builds a 451 response.
func UnavailableForLegalReasons() HTTPError {
	return newError(http.StatusUnavailableForLegalReasons, "unavailable_for_legal_reasons", "unavailable for legal reasons")
}

// InternalError builds a 500 response. The underlying cause stays server-side;
// only the generic text reaches the client.
func InternalError() HTTPError {
	return newError(http.StatusInternalServerError, "internal_server_error", "internal server error")
}

// ServiceUnavailable builds a 503 response, used by readiness probes when a
// dependency check fails.
func ServiceUnavailable() HTTPError {
	return newError(http.StatusServiceUnavailable, "service_unavailable", "service unavailable")
}
