// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/internal/resolver"
	"github.com/MKhiriev/go-column-client/internal/session"
)

// humanizeError turns internal errors into the short text shown to the
// operator.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, resolver.ErrResolve), errors.Is(err, resolver.ErrConnect):
		// already carries the resolver's or dialer's own diagnostic
		return err.Error()
	case errors.Is(err, protocol.ErrPeerClosed):
		return "Server closed the connection"
	case errors.Is(err, session.ErrWrite):
		return "Could not send the command: " + cause(err)
	case errors.Is(err, session.ErrRead):
		return "Could not receive the reply: " + cause(err)
	}

	return err.Error()
}

func cause(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}

	return msg
}
