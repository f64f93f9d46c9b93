// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// DefaultReplyCapacity is the reply size both ends agree on.
const DefaultReplyCapacity = 256

// Reply is a fixed-capacity receive buffer plus the number of bytes that the
// last read stored in it. The backing array has one spare byte so the content
// can always be NUL-terminated right after the last byte read.
type Reply struct {
	buf []byte
	n   int
}

// NewReply allocates a reply buffer holding at most capacity bytes.
func NewReply(capacity int) (*Reply, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Reply{buf: make([]byte, capacity+1)}, nil
}

// Capacity returns the maximum number of reply bytes a single read accepts.
func (r *Reply) Capacity() int {
	return len(r.buf) - 1
}

// Len returns the number of bytes stored by the last read.
func (r *Reply) Len() int {
	return r.n
}

// Bytes returns the raw bytes of the last read.
func (r *Reply) Bytes() []byte {
	return r.buf[:r.n]
}

// Text returns the reply as a C string: everything up to the first NUL.
func (r *Reply) Text() string {
	b := r.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}

// ReadFrom performs exactly one Read of at most Capacity bytes. Bytes the peer
// sent beyond the capacity are left unread in the stream.
//
// A read that returns data is a success even when the reader also reports an
// error; that error surfaces on the next exchange. A read that returns no data
// terminates the exchange with ErrPeerClosed or the wrapped read error.
func (r *Reply) ReadFrom(src io.Reader) (int64, error) {
	r.n = 0
	r.buf[0] = 0

	n, err := src.Read(r.buf[:r.Capacity()])
	if n > 0 {
		r.n = n
		r.buf[n] = 0
		return int64(n), nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		return 0, ErrPeerClosed
	}

	return 0, err
}

// ReadReply allocates a reply of the given capacity and fills it with one read
// from src.
func ReadReply(src io.Reader, capacity int) (*Reply, error) {
	reply, err := NewReply(capacity)
	if err != nil {
		return nil, err
	}
	if _, err = reply.ReadFrom(src); err != nil {
		return nil, err
	}

	return reply, nil
}

// FrameReply truncates payload so that, with its NUL terminator appended, it
// fits into capacity bytes.
func FrameReply(payload []byte, capacity int) ([]byte, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	if len(payload) > capacity-1 {
		payload = payload[:capacity-1]
	}

	framed := make([]byte, 0, len(payload)+1)
	framed = append(framed, payload...)
	return append(framed, 0), nil
}
