package protocol

import "errors"

var (
	// ErrColumnOutOfRange is returned when a column index is outside 1..4.
	ErrColumnOutOfRange = errors.New("column index out of range")

	// ErrUnknownCommand is returned when a Command has no known kind.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownToken is returned when a received token matches no command.
	ErrUnknownToken = errors.New("unknown wire token")

	// ErrEmptyToken is returned when a received token has no content.
	ErrEmptyToken = errors.New("empty wire token")

	// ErrTokenTooLong is returned when no NUL terminator arrives within
	// MaxTokenLen bytes.
	ErrTokenTooLong = errors.New("wire token too long")

	// ErrInvalidCapacity is returned when a reply buffer capacity is not positive.
	ErrInvalidCapacity = errors.New("invalid reply capacity")

	// ErrPeerClosed is returned when a read yields no bytes because the peer
	// closed the connection.
	ErrPeerClosed = errors.New("connection closed by peer")
)
