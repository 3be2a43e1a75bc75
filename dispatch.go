package weave

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/davrux/weave/core/binder"
	"github.com/davrux/weave/core/handler"
	"github.com/davrux/weave/core/response"
	"github.com/davrux/weave/core/router"
)

// Request is the transport-neutral representation of an inbound request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is the well-formed triple every dispatch produces. No unhandled
// failure ever reaches the transport unconverted.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Dispatch resolves the route for req, builds the per-request context, runs
// the processor/interceptor/handler chain and serializes the outcome.
//
// HTTP-semantic errors (response.HTTPError) become their bound status with
// optional headers and body. Binding failures become 400s. Routing failures
// become 404 or 405 with an Allow header. Anything else, panics included, is
// logged server-side and converted to a generic 500; the original error is
// never exposed to the client.
func (app *Application) Dispatch(ctx context.Context, req Request) (resp Response) {
	var hctx *handler.Context

	defer func() {
		if p := recover(); p != nil {
			app.logger.Error("panic during dispatch",
				"method", req.Method,
				"path", req.Path,
				"value", p,
				"stack", string(debug.Stack()),
			)
			resp = errorResponse(response.InternalError())
		}
	}()

	ep, params, err := app.router.Match(req.Method, req.Path)
	if err != nil {
		return errorResponse(app.routingError(err))
	}

	hctx = handler.NewContext(ctx, req.Method, req.Path, req.Query, req.Header, params, req.Body)

	result, err := app.execute(ep.(*endpoint), hctx)
	if err != nil {
		return mergeHeaders(errorResponse(app.chainError(hctx, err)), hctx.ResponseHeader())
	}
	return mergeHeaders(resultResponse(result), hctx.ResponseHeader())
}

// ServeHTTP adapts the Application to net/http so it can be mounted on any
// stdlib-compatible server or test recorder.
func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp := app.Dispatch(r.Context(), Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header,
		Body:   body,
	})

	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		w.Write(resp.Body)
	}
}

// routingError maps route-table failures onto the HTTP taxonomy.
func (app *Application) routingError(err error) response.HTTPError {
	var notAllowed *router.MethodNotAllowedError
	if errors.As(err, &notAllowed) {
		return response.MethodNotAllowed(notAllowed.Allowed...)
	}
	if errors.Is(err, router.ErrNotFound) {
		return response.NotFound("not found")
	}
	return response.InternalError()
}

// chainError converts an error escaping the chain into an HTTPError, after
// letting observability collaborators see the original.
func (app *Application) chainError(ctx *handler.Context, err error) response.HTTPError {
	if app.errorHook != nil {
		app.errorHook(ctx, err)
	}

	var need *binder.NeedParamError
	if errors.As(err, &need) {
		return response.BadRequest(need.Error())
	}
	var bad *binder.BadParamError
	if errors.As(err, &bad) {
		return response.BadRequest(bad.Error())
	}

	httpErr := response.From(err)
	if httpErr.Status >= 500 {
		app.logger.Error("unhandled error during dispatch",
			"path", ctx.Path(),
			"method", ctx.Method(),
			"error", err,
		)
	}
	return httpErr
}

// errorResponse renders an HTTPError into the transport triple.
func errorResponse(e response.HTTPError) Response {
	header := make(http.Header, len(e.Header))
	for k, vs := range e.Header {
		for _, v := range vs {
			header.Add(k, v)
		}
	}
	var body []byte
	if e.Message != "" {
		body = []byte(e.Message)
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "text/html; charset=utf-8")
		}
	}
	return Response{Status: e.Status, Header: header, Body: body}
}

// mergeHeaders folds headers recorded on the context into a response without
// overriding what the taxonomy or serializer already set.
func mergeHeaders(resp Response, extra http.Header) Response {
	for k, vs := range extra {
		if resp.Header.Get(k) != "" {
			continue
		}
		for _, v := range vs {
			resp.Header.Add(k, v)
		}
	}
	return resp
}

// resultResponse serializes a successful chain result: strings render as
// HTML, raw bytes pass through, everything else is JSON-encoded. A nil
// result is an empty 200.
func resultResponse(result any) Response {
	header := http.Header{}
	switch v := result.(type) {
	case nil:
		return Response{Status: http.StatusOK, Header: header}
	case []byte:
		header.Set("Content-Type", "application/octet-stream")
		return Response{Status: http.StatusOK, Header: header, Body: v}
	case string:
		header.Set("Content-Type", "text/html; charset=utf-8")
		return Response{Status: http.StatusOK, Header: header, Body: []byte(v)}
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return errorResponse(response.InternalError())
		}
		header.Set("Content-Type", "application/json; charset=utf-8")
		return Response{Status: http.StatusOK, Header: header, Body: body}
	}
}
