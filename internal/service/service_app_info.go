package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/models"
)

const unknownVersion = "N/A"

type appInfoService struct {
	appVersion    string
	healthChecker store.HealthChecker
}

// NewAppInfoService reports the linker-injected build version when present
// and cfg.Version otherwise.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, healthChecker store.HealthChecker, logger *logger.Logger) AppInfoService {
	logger.Debug().Msg("creating app info service")
	version := buildInfo.BuildVersion()
	if version == "" || version == unknownVersion {
		version = cfg.Version
	}
	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{
		appVersion:    version,
		healthChecker: healthChecker,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ready reports ErrNotReady when the database cannot be reached.
func (s *appInfoService) Ready(ctx context.Context) error {
	if err := s.healthChecker.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ready").Msg("database health check failed")
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	return nil
}
