package store

import "github.com/MKhiriev/bpl-web-backend/internal/logger"

// Storages bundles every repository built on one [DB].
type Storages struct {
	ProfileRepository       ProfileRepository
	MedicationRepository    MedicationRepository
	BloodPressureRepository BloodPressureRepository
	HealthChecker           HealthChecker
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ProfileRepository:       NewProfileRepository(db, logger),
		MedicationRepository:    NewMedicationRepository(db, logger),
		BloodPressureRepository: NewBloodPressureRepository(db, logger),
		HealthChecker:           db,
	}
}
