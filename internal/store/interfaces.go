package store

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository reads and writes the "user_profiles" table. Every method
// is scoped to the owning user id.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)
	CreateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, patch models.Patch) (models.UserProfile, error)
}

// MedicationRepository reads and writes the "medications" table.
type MedicationRepository interface {
	ListMedications(ctx context.Context, userID string) ([]models.Medication, error)
	CreateMedication(ctx context.Context, medication models.Medication) (models.Medication, error)
	UpdateMedication(ctx context.Context, userID string, id int64, patch models.Patch) (models.Medication, error)
	DeleteMedication(ctx context.Context, userID string, id int64) error
}

// BloodPressureRepository reads and writes the "blood_pressure_records" table.
type BloodPressureRepository interface {
	ListRecords(ctx context.Context, userID string, page models.Page) ([]models.BloodPressureRecord, error)
	ListAllRecords(ctx context.Context, userID string) ([]models.BloodPressureRecord, error)
	CreateRecord(ctx context.Context, record models.BloodPressureRecord) (models.BloodPressureRecord, error)
	UpdateRecord(ctx context.Context, userID string, id int64, patch models.Patch) (models.BloodPressureRecord, error)
	DeleteRecord(ctx context.Context, userID string, id int64) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
