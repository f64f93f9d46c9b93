// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-column-client/internal/session"
	"github.com/MKhiriev/go-column-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Console is the operator side of the client: endpoint prompts, the menu
// prompts the session engine drives, and diagnostics.
type Console interface {
	session.Prompter

	// Endpoint asks for the machine name and port number.
	Endpoint() (models.Endpoint, error)

	// Diagnostic reports a fatal error to the operator.
	Diagnostic(err error)
}
