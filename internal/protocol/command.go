// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"fmt"
	"strconv"
)

const (
	// WholeFileMarker is the reserved token byte that requests the whole file.
	WholeFileMarker byte = 'w'

	// QuitMarker is the reserved token byte that ends the session.
	QuitMarker byte = 'q'

	// MinColumn and MaxColumn bound the column index of GetColumn.
	MinColumn = 1
	MaxColumn = 4
)

// Kind tells the three command variants apart.
type Kind int

const (
	KindUnknown Kind = iota
	KindGetColumn
	KindGetWholeFile
	KindQuit
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindGetColumn:
		return "get-column"
	case KindGetWholeFile:
		return "get-whole-file"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one operator request. It lives only for the duration of one
// exchange and is never persisted.
type Command struct {
	kind   Kind
	column int
}

// NewColumnCommand returns a GetColumn command for column n.
func NewColumnCommand(n int) (Command, error) {
	if n < MinColumn || n > MaxColumn {
		return Command{}, fmt.Errorf("%w: %d", ErrColumnOutOfRange, n)
	}

	return Command{kind: KindGetColumn, column: n}, nil
}

// WholeFile returns the GetWholeFile command.
func WholeFile() Command {
	return Command{kind: KindGetWholeFile}
}

// Quit returns the Quit command.
func Quit() Command {
	return Command{kind: KindQuit}
}

// Kind returns the command variant.
func (c Command) Kind() Kind {
	return c.kind
}

// Column returns the requested column index. It is zero for anything but
// GetColumn.
func (c Command) Column() int {
	return c.column
}

// String implements fmt.Stringer.
func (c Command) String() string {
	if c.kind == KindGetColumn {
		return c.kind.String() + "(" + strconv.Itoa(c.column) + ")"
	}

	return c.kind.String()
}
