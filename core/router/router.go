package router

import (
	"fmt"
	"sort"
	"strings"
)

// Router maps (HTTP method, path pattern) pairs to opaque endpoints. It is
// populated at startup and read-only afterwards, so lookups are safe under
// concurrent requests without locking.
type Router struct {
	routes []*route
}

// Route describes a registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

type route struct {
	method   string
	pattern  string
	segments []segment
	literals int
	endpoint any
}

// segment is one path element: either a literal or a named capture.
type segment struct {
	literal string
	param   string // non-empty for {name} segments
}

// New creates an empty route table.
func New() *Router {
	return &Router{}
}

// Add registers an endpoint under (method, pattern). Patterns consist of
// literal segments and {name} captures, e.g. /user/{id}/posts. Registering
// the same (method, pattern) twice fails fast with ErrDuplicateRoute: silent
// override hides configuration bugs.
func (r *Router) Add(method, pattern string, endpoint any) error {
	segments, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	method = strings.ToUpper(method)

	literals := 0
	for _, s := range segments {
		if s.param == "" {
			literals++
		}
	}

	for _, existing := range r.routes {
		if existing.method == method && existing.pattern == pattern {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, pattern)
		}
	}

	r.routes = append(r.routes, &route{
		method:   method,
		pattern:  pattern,
		segments: segments,
		literals: literals,
		endpoint: endpoint,
	})
	return nil
}

// Match resolves an incoming (method, path) pair to a registered endpoint and
// the captured path parameters.
//
// When several patterns match the path, the one with more literal segments
// wins (/user/new beats /user/{id}); among equals the lexicographically
// smaller pattern wins so resolution never depends on registration order.
// A path that matches some pattern but not the method yields a
// *MethodNotAllowedError listing the allowed methods for the Allow header.
func (r *Router) Match(method, path string) (any, map[string]string, error) {
	method = strings.ToUpper(method)
	parts := splitPath(path)

	var best *route
	allowed := map[string]struct{}{}

	for _, rt := range r.routes {
		if !rt.matches(parts) {
			continue
		}
		if rt.method != method {
			allowed[rt.method] = struct{}{}
			continue
		}
		if best == nil || rt.literals > best.literals ||
			(rt.literals == best.literals && rt.pattern < best.pattern) {
			best = rt
		}
	}

	if best == nil {
		if len(allowed) > 0 {
			methods := make([]string, 0, len(allowed))
			for m := range allowed {
				methods = append(methods, m)
			}
			sort.Strings(methods)
			return nil, nil, &MethodNotAllowedError{Allowed: methods}
		}
		return nil, nil, ErrNotFound
	}

	var params map[string]string
	for i, s := range best.segments {
		if s.param != "" {
			if params == nil {
				params = make(map[string]string)
			}
			params[s.param] = parts[i]
		}
	}
	return best.endpoint, params, nil
}

// Routes returns all registered routes, ordered by pattern then method.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, Route{Method: rt.method, Pattern: rt.pattern})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern != out[j].Pattern {
			return out[i].Pattern < out[j].Pattern
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// matches reports whether the route's pattern covers the given path segments.
// Named segments match any single non-empty segment.
func (rt *route) matches(parts []string) bool {
	if len(parts) != len(rt.segments) {
		return false
	}
	for i, s := range rt.segments {
		if s.param != "" {
			if parts[i] == "" {
				return false
			}
			continue
		}
		if s.literal != parts[i] {
			return false
		}
	}
	return true
}

// parsePattern validates a pattern and splits it into segments.
func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	parts := splitPath(pattern)
	segments := make([]segment, 0, len(parts))
	seen := map[string]struct{}{}

	for _, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			name := p[1 : len(p)-1]
			if name == "" {
				return nil, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, pattern)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pattern)
			}
			seen[name] = struct{}{}
			segments = append(segments, segment{param: name})
			continue
		}
		if strings.ContainsAny(p, "{}") {
			return nil, fmt.Errorf("%w: malformed segment %q in %q", ErrInvalidPattern, p, pattern)
		}
		segments = append(segments, segment{literal: p})
	}
	return segments, nil
}

// splitPath splits a URL path into segments, treating "/" as the empty root.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
