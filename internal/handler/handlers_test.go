package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/service"
)

// newTestConfig returns a server config with the given addresses.
func newTestConfig(tcp, http, grpc string) *config.ServerConfig {
	return &config.ServerConfig{
		Protocol: config.Protocol{ReplyCapacity: 256},
		Server: config.Server{
			TCPAddress:  tcp,
			HTTPAddress: http,
			GRPCAddress: grpc,
		},
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.ServerConfig
		wantErr  bool
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "all transports", cfg: newTestConfig(":9000", ":8080", ":9090"), wantHTTP: true, wantGRPC: true},
		{name: "only tcp", cfg: newTestConfig(":9000", "", "")},
		{name: "tcp and http", cfg: newTestConfig(":9000", ":8080", ""), wantHTTP: true},
		{name: "tcp and grpc", cfg: newTestConfig(":9000", "", ":9090"), wantGRPC: true},
		{name: "no tcp address", cfg: newTestConfig("", ":8080", ":9090"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoHandlersAreCreated)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, h.TCP)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
