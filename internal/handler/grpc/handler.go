package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/service"
)

// ColumnServiceName is the service name the column store health is reported
// under. The empty name reports the server as a whole.
const ColumnServiceName = "column.ColumnService"

// Handler is the root gRPC transport handler.
//
// It exposes the standard gRPC health service. The overall server is always
// SERVING while it runs; [ColumnServiceName] follows the state of the column
// store as last observed by [Handler.RefreshHealth].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// RefreshHealth checks the column store and updates the reported status of
// [ColumnServiceName].
func (h *Handler) RefreshHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.ColumnService.File(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("column store is not serving")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus(ColumnServiceName, status)
	return status
}

// Shutdown marks every service NOT_SERVING so that clients stop routing to
// the server before it stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
