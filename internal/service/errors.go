package service

import "errors"

// Authentication errors.
var (
	ErrMissingCredentials   = errors.New("missing credentials")
	ErrMalformedCredentials = errors.New("malformed credentials")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// Request errors shared by every entity.
var (
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// Entity errors. Each wraps the store error it was derived from.
var (
	ErrProfileNotFound         = errors.New("profile not found")
	ErrProfileNotFoundToUpdate = errors.New("profile not found to update")
	ErrProfileAlreadyExists    = errors.New("profile already exists")
	ErrProfileNotCreated       = errors.New("profile not created")

	ErrMedicationNotFound   = errors.New("medication not found")
	ErrMedicationNotCreated = errors.New("medication not created")

	ErrBloodPressureLogNotFound   = errors.New("blood pressure log not found")
	ErrBloodPressureLogNotUpdated = errors.New("blood pressure log not found or not changed")
	ErrBloodPressureLogNotCreated = errors.New("blood pressure log not created")

	ErrExportFailed = errors.New("export failed")
)

var ErrNotReady = errors.New("service is not ready")
