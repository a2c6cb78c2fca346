package handler

import (
	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/handler/grpc"
	"github.com/MKhiriev/bpl-web-backend/internal/handler/http"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
)

// Handlers holds one handler per enabled transport. A transport whose
// address is empty in the configuration stays nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler (REST API and probes) and the gRPC
// health handler.
func NewHandlers(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
