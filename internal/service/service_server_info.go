package service

import (
	"context"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/models"
)

type serverInfoService struct {
	info models.ServerInfo

	logger *logger.Logger
}

// NewServerInfoService returns a ServerInfoService reporting the configured
// version and reply capacity.
func NewServerInfoService(app config.App, proto config.Protocol, logger *logger.Logger) (ServerInfoService, error) {
	if app.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if proto.ReplyCapacity <= 0 {
		return nil, protocol.ErrInvalidCapacity
	}

	return &serverInfoService{
		info: models.ServerInfo{
			Version:         app.Version,
			ReplyCapacity:   proto.ReplyCapacity,
			Columns:         protocol.MaxColumn,
			WholeFileMarker: string(protocol.WholeFileMarker),
			QuitMarker:      string(protocol.QuitMarker),
		},
		logger: logger,
	}, nil
}

func (s *serverInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return s.info
}
