package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing credentials",
			err:        service.ErrMissingCredentials,
			wantStatus: http.StatusForbidden,
			wantDetail: "Not authenticated",
		},
		{
			name:       "invalid credentials",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidCredentials, errors.New("jwt expired")),
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid authentication credentials",
		},
		{
			name:       "no fields to update",
			err:        service.ErrNoFieldsToUpdate,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "No fields to update",
		},
		{
			name:       "profile conflict wraps store error",
			err:        fmt.Errorf("%w: %w", service.ErrProfileAlreadyExists, store.ErrAlreadyExists),
			wantStatus: http.StatusConflict,
			wantDetail: "User profile already exists.",
		},
		{
			name:       "profile not found to update",
			err:        fmt.Errorf("%w: %w", service.ErrProfileNotFoundToUpdate, store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: "Profile not found to update",
		},
		{
			name:       "medication not found",
			err:        fmt.Errorf("%w: %w", service.ErrMedicationNotFound, store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: "Medication not found",
		},
		{
			name:       "log not updated",
			err:        service.ErrBloodPressureLogNotUpdated,
			wantStatus: http.StatusNotFound,
			wantDetail: "Log not found or no changes made",
		},
		{
			name:       "log not created",
			err:        fmt.Errorf("%w: %w", service.ErrBloodPressureLogNotCreated, store.ErrNotSaved),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Failed to create log: No data returned",
		},
		{
			name:       "schema violation",
			err:        &validators.ValidationError{Details: []string{"record_datetime: record_datetime is required"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "record_datetime: record_datetime is required",
		},
		{
			name:       "invalid patch field",
			err:        &models.FieldError{Field: "is_active", Err: errors.New("null is not allowed")},
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "is_active: Invalid value",
		},
		{
			name:       "invalid field without name",
			err:        fmt.Errorf("%w: json: cannot unmarshal number into Go value of type int", models.ErrInvalidField),
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "Invalid field value",
		},
		{
			name:       "store error",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("connection reset by peer")),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Database error: connection reset by peer",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, "test", service.ErrMedicationNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Medication not found"}`, rr.Body.String())
}
