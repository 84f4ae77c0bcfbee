package server

import "nodevitals/internal/errors"

// Error codes specific to the server package
const (
	ErrInvalidAddress = errors.ErrorCode("server_invalid_listen_address")
	ErrServeFailed    = errors.ErrorCode("server_serve_failed")
)
