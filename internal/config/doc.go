// Package config provides configuration loading, merging, and validation
// facilities for the column client and the column server.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it, in this order:
//  1. Command-line flags (server only; the client has no flags)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] and [GetServerConfig].
package config
