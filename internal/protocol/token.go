// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MaxTokenLen bounds the bytes a server reads while looking for a token's NUL.
const MaxTokenLen = 64

// WireToken is the serialized form of a Command: the token text followed by
// exactly one NUL byte.
type WireToken []byte

// Text returns the token content without the trailing NUL.
func (t WireToken) Text() string {
	return string(bytes.TrimSuffix(t, []byte{0}))
}

// Encode serializes c into its wire token.
func Encode(c Command) (WireToken, error) {
	var text []byte

	switch c.kind {
	case KindGetColumn:
		if c.column < MinColumn || c.column > MaxColumn {
			return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, c.column)
		}
		text = strconv.AppendInt(nil, int64(c.column), 10)
	case KindGetWholeFile:
		text = []byte{WholeFileMarker}
	case KindQuit:
		text = []byte{QuitMarker}
	default:
		return nil, ErrUnknownCommand
	}

	return append(text, 0), nil
}

// Decode parses a received token, with or without its trailing NUL, back into
// a Command. The kind is decided from the first byte alone.
func Decode(token []byte) (Command, error) {
	if i := bytes.IndexByte(token, 0); i >= 0 {
		token = token[:i]
	}
	if len(token) == 0 {
		return Command{}, ErrEmptyToken
	}

	switch first := token[0]; {
	case first == WholeFileMarker && len(token) == 1:
		return WholeFile(), nil
	case first == QuitMarker && len(token) == 1:
		return Quit(), nil
	case first >= '0' && first <= '9':
		n, err := strconv.Atoi(string(token))
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
		}
		return NewColumnCommand(n)
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
}

// ReadToken reads one NUL-terminated token from r and returns it including the
// NUL. It returns io.EOF when the peer closed the stream between tokens.
func ReadToken(r *bufio.Reader) (WireToken, error) {
	token := make([]byte, 0, 8)
	for len(token) < MaxTokenLen {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(token) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		token = append(token, b)
		if b == 0 {
			return token, nil
		}
	}

	return nil, ErrTokenTooLong
}
