package handler

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Context is the per-request state carrier. Exactly one instance exists per
// request; it is passed by reference through every interceptor and the final
// handler and discarded once the response has been produced. It is not safe
// for use from multiple goroutines without external synchronization, which
// matches the one-chain-per-request execution model.
//
// Context implements context.Context by delegating to the base context it was
// created with, so it can be passed directly to database drivers and other
// context-aware APIs.
type Context struct {
	base   context.Context
	method string
	path   string
	header http.Header
	query  url.Values
	body   []byte
	params map[string]string

	// Lazily parsed body representations, cached after first use.
	form       url.Values
	formParsed bool
	jsonFields map[string]json.RawMessage
	jsonParsed bool
	jsonErr    error

	// bag holds plugin-attached per-request values (database transactions,
	// cache clients, request IDs). Distinct from Value(), which delegates to
	// the base context.
	bag map[string]any

	// respHeader collects headers set by interceptors and handlers; the
	// application merges them into the final response.
	respHeader http.Header
}

// NewContext builds a request context. The params map holds path parameters
// extracted by the router; it may be nil. Headers are canonicalized so
// lookups are case-insensitive.
func NewContext(base context.Context, method, path string, query url.Values, header http.Header, params map[string]string, body []byte) *Context {
	if base == nil {
		base = context.Background()
	}
	h := make(http.Header, len(header))
	for k, vs := range header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	return &Context{
		base:   base,
		method: strings.ToUpper(method),
		path:   path,
		header: h,
		query:  query,
		params: params,
		body:   body,
	}
}

// Deadline implements context.Context.
func (c *Context) Deadline() (deadline time.Time, ok bool) { return c.base.Deadline() }

// Done implements context.Context.
func (c *Context) Done() <-chan struct{} { return c.base.Done() }

// Err implements context.Context.
func (c *Context) Err() error { return c.base.Err() }

// Value implements context.Context by delegating to the base context.
// Plugin values attached with Set are looked up with Get, not Value.
func (c *Context) Value(key any) any { return c.base.Value(key) }

// Method returns the HTTP method of the request, upper-cased.
func (c *Context) Method() string { return c.method }

// Path returns the matched URL path.
func (c *Context) Path() string { return c.path }

// Header returns the request headers. Keys are canonicalized, so
// Header().Get is case-insensitive.
func (c *Context) Header() http.Header { return c.header }

// Query returns the parsed query string parameters.
func (c *Context) Query() url.Values {
	if c.query == nil {
		c.query = url.Values{}
	}
	return c.query
}

// Body returns the raw request body. It may be empty.
func (c *Context) Body() []byte { return c.body }

// Param returns the path parameter captured for key, or "" if absent.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// Params returns the full path-parameter map. The returned map is the
// context's own; callers must treat it as read-only.
func (c *Context) Params() map[string]string { return c.params }

// Set attaches a per-request value under key. Plugins use this to expose
// scoped resources (for example a database transaction) to downstream
// interceptors and handlers.
func (c *Context) Set(key string, val any) {
	if c.bag == nil {
		c.bag = make(map[string]any)
	}
	c.bag[key] = val
}

// Get returns the value attached under key and whether it was present.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.bag[key]
	return v, ok
}

// MustGet returns the value attached under key, panicking if it is absent.
// Intended for plugin accessors where a missing value is a wiring bug.
func (c *Context) MustGet(key string) any {
	v, ok := c.bag[key]
	if !ok {
		panic("handler: no value attached for key " + key)
	}
	return v
}

// SetResponseHeader records a header to be sent with the final response,
// whatever the chain outcome turns out to be.
func (c *Context) SetResponseHeader(key, value string) {
	if c.respHeader == nil {
		c.respHeader = http.Header{}
	}
	c.respHeader.Set(key, value)
}

// ResponseHeader returns the headers recorded for the response so far.
// May be nil when nothing was set.
func (c *Context) ResponseHeader() http.Header { return c.respHeader }

// FormValues parses and returns the request body as URL-encoded form data.
// The result is cached; a non-form or unparsable body yields empty values.
func (c *Context) FormValues() url.Values {
	if !c.formParsed {
		c.formParsed = true
		c.form = url.Values{}
		if len(c.body) > 0 && !c.hasJSONBody() {
			if vs, err := url.ParseQuery(string(c.body)); err == nil {
				c.form = vs
			}
		}
	}
	return c.form
}

// JSONBody parses and returns the request body as a JSON object keyed by
// field name. The parse happens at most once per request. A non-JSON body
// yields an empty map and no error; malformed JSON is reported.
func (c *Context) JSONBody() (map[string]json.RawMessage, error) {
	if !c.jsonParsed {
		c.jsonParsed = true
		c.jsonFields = map[string]json.RawMessage{}
		if len(c.body) > 0 && c.hasJSONBody() {
			if err := json.Unmarshal(c.body, &c.jsonFields); err != nil {
				c.jsonErr = err
			}
		}
	}
	return c.jsonFields, c.jsonErr
}

// hasJSONBody reports whether the request declares a JSON content type.
// Without a declared type the first non-space byte is sniffed so JSON posted
// by minimal clients still binds.
func (c *Context) hasJSONBody() bool {
	ct := c.header.Get("Content-Type")
	if ct == "" {
		trimmed := strings.TrimLeft(string(c.body), " \t\r\n")
		return strings.HasPrefix(trimmed, "{")
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
