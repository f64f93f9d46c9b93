// Package server wires and runs the column server's transports.
//
// It provides orchestration for the TCP column protocol listener and the
// optional HTTP status and gRPC health servers, including startup, signal
// handling, and graceful shutdown of all enabled transports.
package server
