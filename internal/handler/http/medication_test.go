package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/bpl-web-backend/internal/store"
	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMedications_EmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/api/medications", validToken, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListMedications_StoreError(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.medications.err = fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("relation \"medications\" does not exist"))

	rr := do(t, router, http.MethodGet, "/api/medications", validToken, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, `Database error: relation "medications" does not exist`, detailOf(t, rr))
}

func TestCreateMedication(t *testing.T) {
	router, stubs := newTestRouter(t)

	rr := do(t, router, http.MethodPost, "/api/medications", validToken, `{
		"medicine_name": "Lisinopril",
		"dosage_mg": 10,
		"quantity": "1 tablet",
		"intake_time": ["08:00"]
	}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{
		"id": 1,
		"medicine_name": "Lisinopril",
		"dosage_mg": 10,
		"quantity": "1 tablet",
		"intake_time": ["08:00"],
		"is_active": true,
		"notes": null
	}`, rr.Body.String())
	require.Len(t, stubs.medications.medications, 1)
	assert.Equal(t, aliceID, stubs.medications.medications[0].UserID)
}

func TestCreateMedication_Invalid(t *testing.T) {
	router, stubs := newTestRouter(t)

	rr := do(t, router, http.MethodPost, "/api/medications", validToken, `{"medicine_name": "A", "quantity": "1", "intake_time": "08:00"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, detailOf(t, rr), "intake_time")
	assert.Empty(t, stubs.medications.medications)
}

func TestUpdateMedication(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantDetail string
		wantPatch  models.Patch
	}{
		{
			name:       "unknown id",
			path:       "/api/medications/999",
			body:       `{"notes": "x"}`,
			wantStatus: http.StatusNotFound,
			wantDetail: "Medication not found",
		},
		{
			name:       "non integer id",
			path:       "/api/medications/abc",
			body:       `{"notes": "x"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: detailInvalidPathID,
		},
		{
			name:       "dosage out of int range",
			path:       "/api/medications/1",
			body:       `{"dosage_mg": 99999999999999999999}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "dosage_mg: Invalid value",
		},
		{
			name:       "clear dosage",
			path:       "/api/medications/1",
			body:       `{"dosage_mg": null, "is_active": false}`,
			wantStatus: http.StatusOK,
			wantPatch:  models.Patch{"dosage_mg": nil, "is_active": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, stubs := newTestRouter(t)
			stubs.medications.medications = []models.Medication{{ID: 1, UserID: aliceID, MedicineName: "A", IntakeTime: models.IntakeTimes{}}}

			rr := do(t, router, http.MethodPut, tt.path, validToken, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detailOf(t, rr))
			}
			if tt.wantPatch != nil {
				assert.Equal(t, tt.wantPatch, stubs.medications.lastPatch)
			}
		})
	}
}

func TestDeleteMedication(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.medications.medications = []models.Medication{{ID: 1, UserID: aliceID}}

	rr := do(t, router, http.MethodDelete, "/api/medications/1", validToken, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())

	rr = do(t, router, http.MethodDelete, "/api/medications/2", validToken, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Medication not found", detailOf(t, rr))
}
