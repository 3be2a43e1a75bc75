package server

import "errors"

var (
	// ErrAlreadyRunning indicates Start was called on a running server.
	ErrAlreadyRunning = errors.New("server: already running")
)
