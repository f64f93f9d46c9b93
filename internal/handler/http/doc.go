// Package http implements the read-only HTTP status API of the column server.
//
// It exposes the server version and the served columns as JSON so the data
// behind the TCP column protocol can be inspected without a column client.
// Request tracing and access logging are handled by middleware before
// requests are delegated to the service layer.
package http
