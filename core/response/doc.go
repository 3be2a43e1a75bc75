// Package response defines the HTTP-semantic error taxonomy: structured
// errors bound to fixed status codes, with optional body text and header
// overrides. Raising one from a handler or interceptor short-circuits the
// chain with that outcome; redirects ride the same mechanism via the
// Location header.
package response
