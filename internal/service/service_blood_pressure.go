package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/export"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/models"
)

type bloodPressureLogService struct {
	bloodPressureRepository store.BloodPressureRepository
	formatter               export.Formatter
}

func NewBloodPressureLogService(bloodPressureRepository store.BloodPressureRepository, formatter export.Formatter, logger *logger.Logger) BloodPressureLogService {
	logger.Debug().Msg("creating blood pressure log service")
	return &bloodPressureLogService{
		bloodPressureRepository: bloodPressureRepository,
		formatter:               formatter,
	}
}

// List returns one page of the caller's records, newest first.
func (b *bloodPressureLogService) List(ctx context.Context, identity models.Identity, page models.Page) ([]models.BloodPressureRecord, error) {
	if identity.IsZero() {
		return nil, ErrInvalidCredentials
	}
	if !page.Valid() {
		return nil, fmt.Errorf("%w: page=%d per_page=%d", ErrInvalidPagination, page.Page, page.PerPage)
	}

	return b.bloodPressureRepository.ListRecords(ctx, identity.ID, page)
}

func (b *bloodPressureLogService) Create(ctx context.Context, identity models.Identity, payload models.BloodPressureRecordCreate) (models.BloodPressureRecord, error) {
	if identity.IsZero() {
		return models.BloodPressureRecord{}, ErrInvalidCredentials
	}

	record := payload.ToRecord()
	record.UserID = identity.ID

	created, err := b.bloodPressureRepository.CreateRecord(ctx, record)
	if errors.Is(err, store.ErrNotSaved) {
		return models.BloodPressureRecord{}, fmt.Errorf("%w: %w", ErrBloodPressureLogNotCreated, err)
	}
	if err != nil {
		return models.BloodPressureRecord{}, err
	}

	return created, nil
}

func (b *bloodPressureLogService) Update(ctx context.Context, identity models.Identity, id int64, patch models.Patch) (models.BloodPressureRecord, error) {
	if identity.IsZero() {
		return models.BloodPressureRecord{}, ErrInvalidCredentials
	}

	patch = patch.Without(immutableColumns...)
	if len(patch) == 0 {
		return models.BloodPressureRecord{}, ErrNoFieldsToUpdate
	}

	updated, err := b.bloodPressureRepository.UpdateRecord(ctx, identity.ID, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return models.BloodPressureRecord{}, fmt.Errorf("%w: %w", ErrBloodPressureLogNotUpdated, err)
	}
	if err != nil {
		return models.BloodPressureRecord{}, err
	}

	return updated, nil
}

func (b *bloodPressureLogService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.IsZero() {
		return ErrInvalidCredentials
	}

	err := b.bloodPressureRepository.DeleteRecord(ctx, identity.ID, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrBloodPressureLogNotFound, err)
	}

	return err
}

// Export implements [BloodPressureLogService]. A user without records gets
// a workbook holding only the header row.
func (b *bloodPressureLogService) Export(ctx context.Context, identity models.Identity) (models.Export, error) {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return models.Export{}, ErrInvalidCredentials
	}

	records, err := b.bloodPressureRepository.ListAllRecords(ctx, identity.ID)
	if err != nil {
		return models.Export{}, err
	}

	data, err := b.formatter.Format(records)
	if err != nil {
		log.Err(err).Str("func", "*bloodPressureLogService.Export").Int("records", len(records)).Msg("error formatting export")
		return models.Export{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	log.Debug().Str("func", "*bloodPressureLogService.Export").Int("records", len(records)).Int("bytes", len(data)).Msg("export generated")
	return models.Export{
		Filename:    export.Filename,
		ContentType: export.ContentType,
		Data:        data,
	}, nil
}
