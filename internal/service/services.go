package service

import (
	"github.com/MKhiriev/bpl-web-backend/internal/adapter"
	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/export"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/models"
)

type Services struct {
	AuthService             AuthService
	ProfileService          ProfileService
	MedicationService       MedicationService
	BloodPressureLogService BloodPressureLogService
	AppInfoService          AppInfoService
}

// NewServices wires every service to its repository. identityProvider may
// be nil when tokens are verified locally.
func NewServices(storages *store.Storages, identityProvider adapter.IdentityProvider, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:             NewAuthService(cfg.Auth, identityProvider, logger),
		ProfileService:          NewProfileService(storages.ProfileRepository, utils.NewUUIDGenerator(), logger),
		MedicationService:       NewMedicationService(storages.MedicationRepository, logger),
		BloodPressureLogService: NewBloodPressureLogService(storages.BloodPressureRepository, export.NewXLSXFormatter(), logger),
		AppInfoService:          NewAppInfoService(cfg.App, buildInfo, storages.HealthChecker, logger),
	}
}
