package config

import (
	"time"

	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/models"
)

const (
	defaultVersion         = "dev"
	defaultShutdownTimeout = 5 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
		},
		Client: Client{
			DefaultHost: models.DefaultHostname,
		},
		Protocol: Protocol{
			ReplyCapacity: protocol.DefaultReplyCapacity,
		},
		Server: Server{
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
