package store

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/models"
)

// profileRepository is the database/sql implementation of [ProfileRepository].
// It handles profile creation, lookup and partial updates against the
// "user_profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	db *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db: db,
	}
}

// GetProfile returns the profile owned by userID.
//
// Error handling:
//   - no row or PostgreSQL no_data_found (P0002) → [ErrNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("failed to build query")
		return models.UserProfile{}, err
	}

	profile, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanProfile, ErrNotFound)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Str("user_id", userID).Msg("error getting profile")
		return models.UserProfile{}, err
	}

	return profile, nil
}

// CreateProfile inserts profile and returns the stored row.
//
// Error handling:
//   - unique violation on user_id → [ErrAlreadyExists].
//   - no row returned → [ErrNotSaved].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(r.db.builder, profile)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("failed to build query")
		return models.UserProfile{}, err
	}

	created, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanProfile, ErrNotSaved)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Str("user_id", profile.UserID).Msg("error creating profile")
		return models.UserProfile{}, err
	}

	return created, nil
}

// UpdateProfile applies patch to the profile owned by userID and returns the
// updated row. No matching row → [ErrNotFound].
func (r *profileRepository) UpdateProfile(ctx context.Context, userID string, patch models.Patch) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(r.db.builder, userID, patch)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("failed to build query")
		return models.UserProfile{}, err
	}

	updated, err := queryOne(r.db, r.db.QueryRowContext(ctx, query, args...), scanProfile, ErrNotFound)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.UpdateProfile").
			Str("user_id", userID).
			Strs("columns", patch.Columns()).
			Msg("error updating profile")
		return models.UserProfile{}, err
	}

	return updated, nil
}
