package store

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/models"
)

// bloodPressureRepository is the database/sql implementation of
// [BloodPressureRepository] over the "blood_pressure_records" table.
//
// Lists are ordered newest first (record_datetime DESC, id DESC) so that
// pages are stable when several records share a timestamp.
type bloodPressureRepository struct {
	db *DB
}

func NewBloodPressureRepository(db *DB, logger *logger.Logger) BloodPressureRepository {
	logger.Debug().Msg("creating blood pressure repository")
	return &bloodPressureRepository{
		db: db,
	}
}

// ListRecords returns one page of the records owned by userID.
func (r *bloodPressureRepository) ListRecords(ctx context.Context, userID string, page models.Page) ([]models.BloodPressureRecord, error) {
	query, args, err := buildSelectBloodPressureRecordsQuery(r.db.builder, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bloodPressureRepository.ListRecords").Msg("failed to build query")
		return nil, err
	}

	return r.list(ctx, "*bloodPressureRepository.ListRecords", userID, query, args)
}

// ListAllRecords returns every record owned by userID. Used by the export.
func (r *bloodPressureRepository) ListAllRecords(ctx context.Context, userID string) ([]models.BloodPressureRecord, error) {
	query, args, err := buildSelectAllBloodPressureRecordsQuery(r.db.builder, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bloodPressureRepository.ListAllRecords").Msg("failed to build query")
		return nil, err
	}

	return r.list(ctx, "*bloodPressureRepository.ListAllRecords", userID, query, args)
}

func (r *bloodPressureRepository) list(ctx context.Context, funcName, userID, query string, args []any) ([]models.BloodPressureRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to execute query")
		return nil, r.db.classify(err)
	}

	records, err := queryMany(r.db, rows, scanBloodPressureRecord)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to read records")
		return nil, err
	}

	return records, nil
}

func (r *bloodPressureRepository) CreateRecord(ctx context.Context, record models.BloodPressureRecord) (models.BloodPressureRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBloodPressureRecordQuery(r.db.builder, record)
	if err != nil {
		log.Err(err).Str("func", "*bloodPressureRepository.CreateRecord").Msg("failed to build query")
		return models.BloodPressureRecord{}, err
	}

	created, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanBloodPressureRecord, ErrNotSaved)
	if err != nil {
		log.Err(err).Str("func", "*bloodPressureRepository.CreateRecord").Str("user_id", record.UserID).Msg("error creating record")
		return models.BloodPressureRecord{}, err
	}

	return created, nil
}

func (r *bloodPressureRepository) UpdateRecord(ctx context.Context, userID string, id int64, patch models.Patch) (models.BloodPressureRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBloodPressureRecordQuery(r.db.builder, userID, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*bloodPressureRepository.UpdateRecord").Msg("failed to build query")
		return models.BloodPressureRecord{}, err
	}

	updated, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanBloodPressureRecord, ErrNotFound)
	if err != nil {
		log.Err(err).
			Str("func", "*bloodPressureRepository.UpdateRecord").
			Str("user_id", userID).
			Int64("id", id).
			Strs("columns", patch.Columns()).
			Msg("error updating record")
		return models.BloodPressureRecord{}, err
	}

	return updated, nil
}

func (r *bloodPressureRepository) DeleteRecord(ctx context.Context, userID string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBloodPressureRecordQuery(r.db.builder, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*bloodPressureRepository.DeleteRecord").Msg("failed to build query")
		return err
	}

	if err = execAffectingOne(ctx, r.db, query, args); err != nil {
		log.Err(err).
			Str("func", "*bloodPressureRepository.DeleteRecord").
			Str("user_id", userID).
			Int64("id", id).
			Msg("error deleting record")
		return err
	}

	return nil
}
