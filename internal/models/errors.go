package models

import "errors"

// Custom errors
var (
	ErrInvalidInput   = errors.New("invalid game context")
	ErrMalformedBoard = errors.New("malformed board")
	ErrUnknownSide    = errors.New("unknown side")
)
