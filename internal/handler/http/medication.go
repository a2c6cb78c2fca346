package http

import (
	"net/http"

	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
	"github.com/MKhiriev/bpl-web-backend/models"
)

func (h *Handler) listMedications(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listMedications", err)
		return
	}

	medications, err := h.services.MedicationService.List(r.Context(), identity)
	if err != nil {
		writeError(w, r, "*Handler.listMedications", err)
		return
	}
	if medications == nil {
		medications = []models.Medication{}
	}

	utils.WriteJSON(w, medications, http.StatusOK)
}

func (h *Handler) createMedication(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createMedication", err)
		return
	}

	var payload models.MedicationCreate
	if err = h.decodeBody(w, r, validators.MedicationCreate, &payload); err != nil {
		writeError(w, r, "*Handler.createMedication", err)
		return
	}

	medication, err := h.services.MedicationService.Create(r.Context(), identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.createMedication", err)
		return
	}

	utils.WriteJSON(w, medication, http.StatusCreated)
}

func (h *Handler) updateMedication(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateMedication", err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateMedication", err)
		return
	}

	fields, err := h.decodePatchBody(w, r, validators.MedicationUpdate)
	if err != nil {
		writeError(w, r, "*Handler.updateMedication", err)
		return
	}
	patch, err := models.NewMedicationPatch(fields)
	if err != nil {
		writeError(w, r, "*Handler.updateMedication", err)
		return
	}

	medication, err := h.services.MedicationService.Update(r.Context(), identity, id, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateMedication", err)
		return
	}

	utils.WriteJSON(w, medication, http.StatusOK)
}

func (h *Handler) deleteMedication(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMedication", err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMedication", err)
		return
	}

	if err = h.services.MedicationService.Delete(r.Context(), identity, id); err != nil {
		writeError(w, r, "*Handler.deleteMedication", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
