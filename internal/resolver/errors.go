package resolver

import "errors"

var (
	// ErrResolve wraps name resolution failures. The wrapped error carries the
	// resolver's own diagnostic.
	ErrResolve = errors.New("could not resolve host")

	// ErrNoIPv4Address is returned when the host resolves but has no IPv4
	// address.
	ErrNoIPv4Address = errors.New("no IPv4 address found")

	// ErrConnect wraps connect failures (refused, unreachable, timed out).
	ErrConnect = errors.New("could not connect to")

	// ErrEmptyHost is returned when Connect is called without a host.
	ErrEmptyHost = errors.New("empty host name")
)
