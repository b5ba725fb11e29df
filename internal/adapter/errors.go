package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. HTTP failures
// are mapped to them by status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrTransport is returned when no HTTP response was received at all:
	// connection refused, DNS failure, timeout.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse is returned when a 2xx response cannot be decoded.
	ErrMalformedResponse = errors.New("malformed server response")
)
