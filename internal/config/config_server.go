package config

import (
	"fmt"
)

// ServerConfig is the server's view of [StructuredConfig].
type ServerConfig struct {
	App      App
	Protocol Protocol
	Server   Server
	Storage  Storage
}

// GetServerConfig builds and validates the server configuration from
// command-line flags, environment variables, an optional JSON file and
// defaults.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:      cfg.App,
		Protocol: cfg.Protocol,
		Server:   cfg.Server,
		Storage:  cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
