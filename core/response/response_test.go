package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrux/weave/core/response"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("error text falls back to status text", func(t *testing.T) {
		t.Parallel()

		err := response.HTTPError{Status: http.StatusTeapot}
		assert.Equal(t, "I'm a teapot", err.Error())

		err = err.WithMessage("short and stout")
		assert.Equal(t, "short and stout", err.Error())
	})

	t.Run("with header copies instead of mutating", func(t *testing.T) {
		t.Parallel()

		base := response.NotFound("missing")
		derived := base.WithHeader("X-Reason", "gone")

		assert.Empty(t, base.Header.Get("X-Reason"))
		assert.Equal(t, "gone", derived.Header.Get("X-Reason"))
		assert.Equal(t, base.Header.Get("Content-Type"), derived.Header.Get("Content-Type"))
	})

	t.Run("works through wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("handler failed: %w", response.Forbidden())
		got := response.From(wrapped)
		assert.Equal(t, http.StatusForbidden, got.Status)
	})
}

func TestTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("redirects carry a location header and no body", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			err    response.HTTPError
			status int
		}{
			{response.Found("/next"), http.StatusFound},
			{response.SeeOther("/next"), http.StatusSeeOther},
			{response.TempRedirect("/next"), http.StatusTemporaryRedirect},
		} {
			assert.Equal(t, tc.status, tc.err.Status)
			assert.Equal(t, "/next", tc.err.Header.Get("Location"))
			assert.Equal(t, "", tc.err.Message)
		}
	})

	t.Run("statuses", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotModified, response.NotModified().Status)
		assert.Equal(t, http.StatusBadRequest, response.BadRequest("x").Status)
		assert.Equal(t, http.StatusUnauthorized, response.Unauthorized().Status)
		assert.Equal(t, http.StatusForbidden, response.Forbidden().Status)
		assert.Equal(t, http.StatusNotFound, response.NotFound("x").Status)
		assert.Equal(t, http.StatusMethodNotAllowed, response.MethodNotAllowed("GET").Status)
		assert.Equal(t, http.StatusNotAcceptable, response.NotAcceptable().Status)
		assert.Equal(t, http.StatusConflict, response.Conflict("").Status)
		assert.Equal(t, http.StatusGone, response.Gone().Status)
		assert.Equal(t, http.StatusPreconditionFailed, response.PreconditionFailed().Status)
		assert.Equal(t, http.StatusUnsupportedMediaType, response.UnsupportedMediaType().Status)
		assert.Equal(t, http.StatusUnavailableForLegalReasons, response.UnavailableForLegalReasons().Status)
		assert.Equal(t, http.StatusInternalServerError, response.InternalError().Status)
	})

	t.Run("method not allowed joins the allow header", func(t *testing.T) {
		t.Parallel()

		err := response.MethodNotAllowed("GET", "POST")
		assert.Equal(t, "GET, POST", err.Header.Get("Allow"))
	})

	t.Run("custom body text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "no such user", response.NotFound("no such user").Message)
		assert.Equal(t, "conflict", response.Conflict("").Message)
	})
}

type statusError struct{ status int }

func (e statusError) Error() string   { return "domain failure" }
func (e statusError) StatusCode() int { return e.status }

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("http error passes through", func(t *testing.T) {
		t.Parallel()

		in := response.Conflict("duplicate name")
		out := response.From(in)
		assert.Equal(t, in, out)
	})

	t.Run("status-carrying error keeps its status", func(t *testing.T) {
		t.Parallel()

		out := response.From(statusError{status: http.StatusPaymentRequired})
		assert.Equal(t, http.StatusPaymentRequired, out.Status)
		assert.Equal(t, "domain failure", out.Message)
	})

	t.Run("plain errors become opaque 500s", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("pq: connection refused")
		out := response.From(cause)
		require.Equal(t, http.StatusInternalServerError, out.Status)
		assert.NotContains(t, out.Message, "connection refused")
	})
}
