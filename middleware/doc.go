// Package middleware provides reusable interceptors: request identification
// and structured request logging. Register them globally with
// Application.AddInterceptor or per handler with handler.Attach.
package middleware
