package service

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/models"
)

// AuthService resolves bearer tokens into caller identities. Every call
// re-validates the token; nothing is cached.
type AuthService interface {
	ResolveIdentity(ctx context.Context, token string) (models.Identity, error)
}

// ProfileService manages the single profile owned by a user.
type ProfileService interface {
	Get(ctx context.Context, identity models.Identity) (models.UserProfile, error)
	Create(ctx context.Context, identity models.Identity, payload models.UserProfileCreate) (models.UserProfile, error)
	Update(ctx context.Context, identity models.Identity, patch models.Patch) (models.UserProfile, error)
}

// MedicationService manages the medications owned by a user.
type MedicationService interface {
	List(ctx context.Context, identity models.Identity) ([]models.Medication, error)
	Create(ctx context.Context, identity models.Identity, payload models.MedicationCreate) (models.Medication, error)
	Update(ctx context.Context, identity models.Identity, id int64, patch models.Patch) (models.Medication, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

// BloodPressureLogService manages the blood-pressure records owned by a user.
type BloodPressureLogService interface {
	List(ctx context.Context, identity models.Identity, page models.Page) ([]models.BloodPressureRecord, error)
	Create(ctx context.Context, identity models.Identity, payload models.BloodPressureRecordCreate) (models.BloodPressureRecord, error)
	Update(ctx context.Context, identity models.Identity, id int64, patch models.Patch) (models.BloodPressureRecord, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error

	// Export renders every record of the user, newest first, as a
	// downloadable spreadsheet.
	Export(ctx context.Context, identity models.Identity) (models.Export, error)
}

// AppInfoService reports build and readiness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ready(ctx context.Context) error
}

// IDGenerator produces ids for rows whose primary key is not generated by
// the database.
type IDGenerator interface {
	Generate() string
}
