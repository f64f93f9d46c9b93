package service

import (
	"fmt"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/store"
)

type Services struct {
	ColumnService     ColumnService
	ServerInfoService ServerInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	columnService, err := NewColumnService(storages.ColumnRepository, cfg.Protocol, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating column service: %w", err)
	}

	serverInfoService, err := NewServerInfoService(cfg.App, cfg.Protocol, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server info service: %w", err)
	}

	return &Services{
		ColumnService:     columnService,
		ServerInfoService: serverInfoService,
	}, nil
}
