package stream

import "errors"

var (
	ErrInvalidMessage     = errors.New("invalid message format")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrHubClosed          = errors.New("hub is shut down")
)
