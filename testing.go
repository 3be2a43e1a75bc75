package weave

import (
	"context"
	"net/http"
	"net/url"

	"github.com/davrux/weave/core/handler"
)

// TestRequest issues a synthetic request against the registered routes
// without opening a network socket. It exercises the full pipeline — route
// matching, context construction, processors, interceptors and parameter
// binding — and returns the raw chain result before serialization, so tests
// can assert on handler values directly. Errors are returned unconverted
// (binder and routing errors included) for the same reason.
func (app *Application) TestRequest(method, path string, query url.Values, header http.Header, body []byte) (any, error) {
	ep, params, err := app.router.Match(method, path)
	if err != nil {
		return nil, err
	}
	ctx := handler.NewContext(context.Background(), method, path, query, header, params, body)
	return app.execute(ep.(*endpoint), ctx)
}

// TestGet issues a synthetic GET request with the given query parameters.
func (app *Application) TestGet(path string, query url.Values) (any, error) {
	return app.TestRequest("GET", path, query, nil, nil)
}

// TestPost issues a synthetic POST request with a form-encoded body.
func (app *Application) TestPost(path string, form url.Values) (any, error) {
	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")
	return app.TestRequest("POST", path, nil, header, []byte(form.Encode()))
}
