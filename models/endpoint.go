// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// DefaultHostname is the machine name used when the operator leaves the
// prompt blank and nothing else is configured.
const DefaultHostname = "localhost"

// Endpoint identifies the column server the client connects to.
//
// An Endpoint is built once from operator input and is not modified after the
// connection has been established.
type Endpoint struct {
	// Host is the machine name as typed by the operator (or the default).
	Host string

	// Port is the TCP port in the range 0–65535. A zero port is kept as-is
	// and simply fails at connect time.
	Port int
}

// String returns the endpoint in host:port form.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}
