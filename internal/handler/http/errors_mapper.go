package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
	"github.com/MKhiriev/bpl-web-backend/models"
)

const (
	detailDatabaseErrorPrefix = "Database error: "
	detailUnexpected          = "An unexpected error occurred"
	detailInvalidField        = "Invalid field value"
)

type errorResponse struct {
	target error
	status int
	detail string
}

// errorResponses is matched top to bottom; entity errors wrap store errors,
// so they must come before the store group below.
var errorResponses = []errorResponse{
	{service.ErrMissingCredentials, http.StatusForbidden, "Not authenticated"},
	{service.ErrMalformedCredentials, http.StatusForbidden, "Invalid authentication credentials"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid authentication credentials"},

	{service.ErrNoFieldsToUpdate, http.StatusUnprocessableEntity, "No fields to update"},
	{service.ErrInvalidPagination, http.StatusUnprocessableEntity, "Invalid pagination: page must be >= 1 and per_page must be between 1 and 1000"},

	{service.ErrProfileNotFound, http.StatusNotFound, "Profile not found"},
	{service.ErrProfileNotFoundToUpdate, http.StatusNotFound, "Profile not found to update"},
	{service.ErrProfileAlreadyExists, http.StatusConflict, "User profile already exists."},
	{service.ErrProfileNotCreated, http.StatusInternalServerError, "Failed to create profile: No data returned"},

	{service.ErrMedicationNotFound, http.StatusNotFound, "Medication not found"},
	{service.ErrMedicationNotCreated, http.StatusInternalServerError, "Failed to create medication: No data returned"},

	{service.ErrBloodPressureLogNotUpdated, http.StatusNotFound, "Log not found or no changes made"},
	{service.ErrBloodPressureLogNotFound, http.StatusNotFound, "Log not found"},
	{service.ErrBloodPressureLogNotCreated, http.StatusInternalServerError, "Failed to create log: No data returned"},
}

// storeErrors are reported as "Database error: <driver message>".
var storeErrors = []error{
	store.ErrExecutingQuery,
	store.ErrScanningRow,
	store.ErrScanningRows,
	store.ErrBuildingSQLQuery,
	store.ErrNotFound,
	store.ErrAlreadyExists,
	store.ErrNotSaved,
}

// responseFromError translates err into the status code and detail string
// sent to the client.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.detail
		}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationErr.Detail()
	}
	var fieldErr *models.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusUnprocessableEntity, fieldErr.Detail()
	}
	if errors.Is(err, models.ErrInvalidField) {
		return http.StatusUnprocessableEntity, detailInvalidField
	}

	for _, target := range storeErrors {
		if errors.Is(err, target) {
			return http.StatusInternalServerError, detailDatabaseErrorPrefix + store.Message(err)
		}
	}

	return http.StatusInternalServerError, detailUnexpected
}

// writeError logs err and answers the request with its mapped response.
// Server errors are logged in full; the client only sees the detail.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, detail := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(detail)

	utils.WriteDetail(w, detail, status)
}
