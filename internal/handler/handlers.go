package handler

import (
	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/handler/grpc"
	"github.com/MKhiriev/go-column-client/internal/handler/http"
	"github.com/MKhiriev/go-column-client/internal/handler/tcp"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/service"
)

type Handlers struct {
	TCP  *tcp.Handler
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.TCPAddress != "" {
		handlers.TCP = tcp.NewHandler(services, cfg.Protocol, logger)
	}
	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.TCP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
