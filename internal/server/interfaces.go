package server

import "net"

// Server runs the column server's transports.
//
// RunServer blocks until a stop signal arrives and every transport has shut
// down. Shutdown stops them directly and may be called before RunServer.
type Server interface {
	// RunServer starts every configured transport and blocks until they stop.
	RunServer()

	// Shutdown gracefully stops all transports and frees associated resources.
	Shutdown()

	// ColumnAddr returns the bound address of the TCP column listener, which
	// differs from the configured one when port 0 was requested.
	ColumnAddr() net.Addr
}
