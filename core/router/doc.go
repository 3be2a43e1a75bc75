// Package router implements the framework's route table: exact-segment
// matching with {name} captures, deterministic literal-precedence tie-breaks,
// and method-not-allowed reporting for the Allow header. Endpoints are opaque
// to the router; the application layer decides what it stores.
package router
