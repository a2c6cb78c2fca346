package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/models"
)

type medicationService struct {
	medicationRepository store.MedicationRepository
}

func NewMedicationService(medicationRepository store.MedicationRepository, logger *logger.Logger) MedicationService {
	logger.Debug().Msg("creating medication service")
	return &medicationService{
		medicationRepository: medicationRepository,
	}
}

func (m *medicationService) List(ctx context.Context, identity models.Identity) ([]models.Medication, error) {
	if identity.IsZero() {
		return nil, ErrInvalidCredentials
	}

	return m.medicationRepository.ListMedications(ctx, identity.ID)
}

func (m *medicationService) Create(ctx context.Context, identity models.Identity, payload models.MedicationCreate) (models.Medication, error) {
	if identity.IsZero() {
		return models.Medication{}, ErrInvalidCredentials
	}

	medication := payload.ToMedication()
	medication.UserID = identity.ID

	created, err := m.medicationRepository.CreateMedication(ctx, medication)
	if errors.Is(err, store.ErrNotSaved) {
		return models.Medication{}, fmt.Errorf("%w: %w", ErrMedicationNotCreated, err)
	}
	if err != nil {
		return models.Medication{}, err
	}

	return created, nil
}

func (m *medicationService) Update(ctx context.Context, identity models.Identity, id int64, patch models.Patch) (models.Medication, error) {
	if identity.IsZero() {
		return models.Medication{}, ErrInvalidCredentials
	}

	patch = patch.Without(immutableColumns...)
	if len(patch) == 0 {
		return models.Medication{}, ErrNoFieldsToUpdate
	}

	updated, err := m.medicationRepository.UpdateMedication(ctx, identity.ID, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Debug().Str("func", "*medicationService.Update").Int64("id", id).Msg("no owned medication to update")
		return models.Medication{}, fmt.Errorf("%w: %w", ErrMedicationNotFound, err)
	}
	if err != nil {
		return models.Medication{}, err
	}

	return updated, nil
}

func (m *medicationService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.IsZero() {
		return ErrInvalidCredentials
	}

	err := m.medicationRepository.DeleteMedication(ctx, identity.ID, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrMedicationNotFound, err)
	}

	return err
}
