// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// column server handlers.
//
// All Msg* constants are human-readable message strings that are written into
// protocol replies, HTTP response bodies or log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording across the TCP and HTTP transports.
package app

const (
	// MsgUnknownCommand is replied when a token is neither a column number,
	// the whole-file marker nor the quit marker.
	MsgUnknownCommand = "unknown command"

	// MsgColumnOutOfRange is replied when a column number outside 1..4 is
	// requested.
	MsgColumnOutOfRange = "column number out of range"

	// MsgNoColumnData is replied when the server has no rows to serve.
	MsgNoColumnData = "no column data"

	// MsgStorageUnavailable is replied when the column database cannot be
	// reached.
	MsgStorageUnavailable = "column storage unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMethodNotAllowed is returned by the HTTP status API for methods
	// other than GET.
	MsgMethodNotAllowed = "method not allowed"
)
