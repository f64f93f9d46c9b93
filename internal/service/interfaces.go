package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/models"
)

// ColumnService answers column requests for every transport.
type ColumnService interface {
	// Reply renders the answer to cmd as a NUL-terminated protocol reply that
	// fits the configured reply capacity. Known request errors are rendered
	// as reply text; only unexpected failures are returned as errors.
	Reply(ctx context.Context, cmd protocol.Command) ([]byte, error)

	// Column returns the values of column n in line order.
	Column(ctx context.Context, n int) ([]string, error)

	// File returns every row in line order.
	File(ctx context.Context) ([]models.Row, error)
}

// ServerInfoService reports the server version and protocol conventions.
type ServerInfoService interface {
	GetServerInfo(ctx context.Context) models.ServerInfo
}
