package store

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/models"
)

// medicationRepository is the database/sql implementation of
// [MedicationRepository] over the "medications" table.
type medicationRepository struct {
	db *DB
}

func NewMedicationRepository(db *DB, logger *logger.Logger) MedicationRepository {
	logger.Debug().Msg("creating medication repository")
	return &medicationRepository{
		db: db,
	}
}

// ListMedications returns every medication owned by userID ordered by id.
// Returns an empty slice when the user has none.
func (r *medicationRepository) ListMedications(ctx context.Context, userID string) ([]models.Medication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMedicationsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.ListMedications").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.ListMedications").Str("user_id", userID).Msg("failed to execute query")
		return nil, r.db.classify(err)
	}

	medications, err := queryMany(r.db, rows, scanMedication)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.ListMedications").Str("user_id", userID).Msg("failed to read medications")
		return nil, err
	}

	return medications, nil
}

func (r *medicationRepository) CreateMedication(ctx context.Context, medication models.Medication) (models.Medication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMedicationQuery(r.db.builder, medication)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.CreateMedication").Msg("failed to build query")
		return models.Medication{}, err
	}

	created, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanMedication, ErrNotSaved)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.CreateMedication").Str("user_id", medication.UserID).Msg("error creating medication")
		return models.Medication{}, err
	}

	return created, nil
}

// UpdateMedication applies patch to medication id owned by userID. A missing
// id and an id owned by someone else both yield [ErrNotFound].
func (r *medicationRepository) UpdateMedication(ctx context.Context, userID string, id int64, patch models.Patch) (models.Medication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMedicationQuery(r.db.builder, userID, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.UpdateMedication").Msg("failed to build query")
		return models.Medication{}, err
	}

	updated, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanMedication, ErrNotFound)
	if err != nil {
		log.Err(err).
			Str("func", "*medicationRepository.UpdateMedication").
			Str("user_id", userID).
			Int64("id", id).
			Strs("columns", patch.Columns()).
			Msg("error updating medication")
		return models.Medication{}, err
	}

	return updated, nil
}

func (r *medicationRepository) DeleteMedication(ctx context.Context, userID string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMedicationQuery(r.db.builder, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*medicationRepository.DeleteMedication").Msg("failed to build query")
		return err
	}

	if err = execAffectingOne(ctx, r.db, query, args); err != nil {
		log.Err(err).
			Str("func", "*medicationRepository.DeleteMedication").
			Str("user_id", userID).
			Int64("id", id).
			Msg("error deleting medication")
		return err
	}

	return nil
}
