// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns an operator supplied host name and port into a
// connected TCP socket.
//
// Resolution is IPv4 only: the host is looked up through the platform's name
// service, the first returned address is taken and exactly one blocking
// connect is attempted. There is no retry loop; the caller decides what to do
// with a failure and owns the connection on success.
package resolver

import (
	"context"
	"net"

	"github.com/MKhiriev/go-column-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// Resolver connects to a column server endpoint.
type Resolver interface {
	// Connect resolves endpoint.Host to an IPv4 address and performs a single
	// connect to that address on endpoint.Port. The returned connection is
	// owned by the caller, who must close it.
	Connect(ctx context.Context, endpoint models.Endpoint) (net.Conn, error)
}

// IPLookup resolves host names. *net.Resolver satisfies it.
type IPLookup interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// Dialer opens stream connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
