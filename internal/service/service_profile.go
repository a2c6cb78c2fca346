package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/models"
)

// immutableColumns are never taken from a patch: the owner is the caller and
// ids are assigned at creation.
var immutableColumns = []string{"id", "user_id"}

type profileService struct {
	profileRepository store.ProfileRepository
	idGenerator       IDGenerator
}

func NewProfileService(profileRepository store.ProfileRepository, idGenerator IDGenerator, logger *logger.Logger) ProfileService {
	logger.Debug().Msg("creating profile service")
	return &profileService{
		profileRepository: profileRepository,
		idGenerator:       idGenerator,
	}
}

// Get returns the caller's profile, or ErrProfileNotFound.
func (p *profileService) Get(ctx context.Context, identity models.Identity) (models.UserProfile, error) {
	if identity.IsZero() {
		return models.UserProfile{}, ErrInvalidCredentials
	}

	profile, err := p.profileRepository.GetProfile(ctx, identity.ID)
	if errors.Is(err, store.ErrNotFound) {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileNotFound, err)
	}
	if err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// Create stores the caller's profile under a new id. A second profile for
// the same user fails with ErrProfileAlreadyExists.
func (p *profileService) Create(ctx context.Context, identity models.Identity, payload models.UserProfileCreate) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return models.UserProfile{}, ErrInvalidCredentials
	}

	profile := payload.ToProfile()
	profile.ID = p.idGenerator.Generate()
	profile.UserID = identity.ID

	created, err := p.profileRepository.CreateProfile(ctx, profile)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		log.Info().Str("func", "*profileService.Create").Str("user_id", identity.ID).Msg("profile already exists")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileAlreadyExists, err)
	case errors.Is(err, store.ErrNotSaved):
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileNotCreated, err)
	case err != nil:
		return models.UserProfile{}, err
	}

	return created, nil
}

// Update applies patch to the caller's profile.
func (p *profileService) Update(ctx context.Context, identity models.Identity, patch models.Patch) (models.UserProfile, error) {
	if identity.IsZero() {
		return models.UserProfile{}, ErrInvalidCredentials
	}

	patch = patch.Without(immutableColumns...)
	if len(patch) == 0 {
		return models.UserProfile{}, ErrNoFieldsToUpdate
	}

	updated, err := p.profileRepository.UpdateProfile(ctx, identity.ID, patch)
	if errors.Is(err, store.ErrNotFound) {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileNotFoundToUpdate, err)
	}
	if err != nil {
		return models.UserProfile{}, err
	}

	return updated, nil
}
