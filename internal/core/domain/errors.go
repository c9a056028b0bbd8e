package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncoding indicates the deeplink arguments could not be serialised.
	ErrEncoding = errors.New("encoding failed")

	// ErrInvalidDeeplink indicates a URL is not a well-formed extension deeplink.
	ErrInvalidDeeplink = errors.New("invalid deeplink")

	// ErrUnsupportedPlatform indicates the OS has no known URL handler command.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNotTerminal indicates an interactive feature was used without a TTY.
	ErrNotTerminal = errors.New("not a terminal")
)
