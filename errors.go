package wee

import "errors"

// Sentinel errors.
var (
	// ErrNotResponse is returned by Call when a responder is supplied but the
	// handler result is not a Response.
	ErrNotResponse = errors.New("handler result is not a response")

	// ErrInvalidRule is returned when a declared binding cannot be turned into a rule.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownFormat is returned by LoadBindings for an unsupported file extension.
	ErrUnknownFormat = errors.New("unknown bindings format")
)
