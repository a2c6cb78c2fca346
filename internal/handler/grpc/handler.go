// Package grpc exposes the standard gRPC health-checking service so that
// orchestrators can probe the backend without going through HTTP.
package grpc

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check service name answered with the database
// readiness. The empty name reports the same status.
const ServiceName = "bpl-web-backend"

// Handler is the root gRPC transport handler.
//
// It embeds [health.Server] for Watch and List, and overrides Check so that
// every probe reflects the current readiness of the service layer.
type Handler struct {
	*health.Server

	// services provides access to readiness reporting.
	services *service.Services

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		Server:   health.NewServer(),
		services: services,
		logger:   logger,
	}
}

// Register attaches the health service and server reflection to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)
}

// Check reports SERVING while the database answers a ping and NOT_SERVING
// otherwise. Unknown service names are answered by the embedded server.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return h.Server.Check(ctx, req)
	}

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.Ready(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*Handler.Check").Msg("not serving")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.SetServingStatus(ServiceName, status)
	return &healthpb.HealthCheckResponse{Status: status}, nil
}
