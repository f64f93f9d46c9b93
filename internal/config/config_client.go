package config

import (
	"fmt"
)

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	// DefaultHost is the machine name used for a blank answer.
	DefaultHost string
	// LogFile is where client logs go; empty discards them.
	LogFile string
	// ReplyCapacity is the size of the reply buffer.
	ReplyCapacity int
}

// GetClientConfig builds and validates the client configuration from
// environment variables, an optional JSON file and defaults. The client has
// no command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		DefaultHost:   cfg.Client.DefaultHost,
		LogFile:       cfg.Client.LogFile,
		ReplyCapacity: cfg.Protocol.ReplyCapacity,
	}

	return clientCfg, clientCfg.validate()
}
