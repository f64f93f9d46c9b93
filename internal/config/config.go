// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from flags,
// environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Client holds settings of the interactive column client.
	Client Client `envPrefix:"CLIENT_"`

	// Protocol holds wire protocol conventions shared by client and server.
	Protocol Protocol `envPrefix:"PROTOCOL_"`

	// Server holds listen addresses and shutdown settings of the column server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the column data sources of the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by the server's status API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Client holds settings of the interactive client.
type Client struct {
	// DefaultHost is offered at the "Machine name" prompt and used when the
	// operator leaves it blank.
	// Env: CLIENT_DEFAULT_HOST
	DefaultHost string `env:"DEFAULT_HOST"`

	// LogFile is the file client logs are appended to. Empty disables
	// logging; the client never logs to the terminal.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Protocol holds conventions both ends of the wire must agree on.
type Protocol struct {
	// ReplyCapacity is the maximum reply size in bytes, including the NUL
	// terminator. The protocol has no length header, so this value must be
	// the same on client and server.
	// Env: PROTOCOL_REPLY_CAPACITY
	ReplyCapacity int `env:"REPLY_CAPACITY"`
}

// Server holds network and shutdown settings of the column server.
type Server struct {
	// TCPAddress is the address the column protocol listener binds to,
	// in "host:port" format (e.g. ":9000").
	// Env: SERVER_ADDRESS
	TCPAddress string `env:"ADDRESS"`

	// HTTPAddress is the optional address of the HTTP status API.
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// GRPCAddress is the optional address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the column data sources.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the text file data source settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational column store.
type DB struct {
	// DSN selects the database. postgres:// and postgresql:// DSNs use pgx,
	// anything else is treated as an SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds text file data source settings.
type Files struct {
	// DataFile is the served text file: one row per line, up to four
	// whitespace separated columns.
	// Env: STORAGE_FILES_DATA_FILE
	DataFile string `env:"DATA_FILE"`
}
