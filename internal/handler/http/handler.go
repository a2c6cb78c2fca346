package http

import (
	"time"

	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
)

// maxBodyBytes caps every request body read by a handler.
const maxBodyBytes = 1 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	apiPrefix      string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		apiPrefix:      cfg.APIPrefix,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
