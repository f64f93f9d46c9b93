// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/models"
)

type endpointResolver struct {
	lookup IPLookup
	dialer Dialer

	logger *logger.Logger
}

// NewResolver returns a Resolver backed by the platform name service and a
// plain blocking dialer.
func NewResolver(log *logger.Logger) Resolver {
	return NewResolverWith(net.DefaultResolver, &net.Dialer{}, log)
}

// NewResolverWith returns a Resolver that uses the given lookup and dialer.
// Nil arguments fall back to the platform resolver, a plain dialer and a
// discarding logger.
func NewResolverWith(lookup IPLookup, dialer Dialer, log *logger.Logger) Resolver {
	if lookup == nil {
		lookup = net.DefaultResolver
	}
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &endpointResolver{
		lookup: lookup,
		dialer: dialer,
		logger: log,
	}
}

func (r *endpointResolver) Connect(ctx context.Context, endpoint models.Endpoint) (net.Conn, error) {
	if strings.TrimSpace(endpoint.Host) == "" {
		return nil, ErrEmptyHost
	}

	ip, err := r.resolveIPv4(ctx, endpoint.Host)
	if err != nil {
		r.logger.Err(err).Str("host", endpoint.Host).Msg("host resolution failed")
		return nil, err
	}

	address := net.JoinHostPort(ip.String(), strconv.Itoa(endpoint.Port))
	r.logger.Debug().Str("endpoint", endpoint.String()).Str("address", address).Msg("connecting")

	conn, err := r.dialer.DialContext(ctx, "tcp4", address)
	if err != nil {
		r.logger.Err(err).Str("endpoint", endpoint.String()).Msg("connect failed")
		return nil, fmt.Errorf("%w %s: %w", ErrConnect, endpoint, err)
	}

	r.logger.Info().Str("endpoint", endpoint.String()).Str("address", address).Msg("connected")
	return conn, nil
}

func (r *endpointResolver) resolveIPv4(ctx context.Context, host string) (net.IP, error) {
	ips, err := r.lookup.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4, nil
		}
	}

	return nil, fmt.Errorf("%w: %w for %s", ErrResolve, ErrNoIPv4Address, host)
}
