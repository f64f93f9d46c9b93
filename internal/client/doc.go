// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive column client runtime.
//
// It asks the operator for the server endpoint, connects exactly once, and
// hands the connection to the session engine until the operator quits or the
// session fails. The connection is closed exactly once on every path.
package client
