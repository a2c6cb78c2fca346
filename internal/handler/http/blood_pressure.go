package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
	"github.com/MKhiriev/bpl-web-backend/models"
)

func (h *Handler) listBloodPressureLogs(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listBloodPressureLogs", err)
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.listBloodPressureLogs", err)
		return
	}

	records, err := h.services.BloodPressureLogService.List(r.Context(), identity, page)
	if err != nil {
		writeError(w, r, "*Handler.listBloodPressureLogs", err)
		return
	}
	if records == nil {
		records = []models.BloodPressureRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) createBloodPressureLog(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createBloodPressureLog", err)
		return
	}

	var payload models.BloodPressureRecordCreate
	if err = h.decodeBody(w, r, validators.BloodPressureCreate, &payload); err != nil {
		writeError(w, r, "*Handler.createBloodPressureLog", err)
		return
	}

	record, err := h.services.BloodPressureLogService.Create(r.Context(), identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.createBloodPressureLog", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) updateBloodPressureLog(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateBloodPressureLog", err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateBloodPressureLog", err)
		return
	}

	fields, err := h.decodePatchBody(w, r, validators.BloodPressureUpdate)
	if err != nil {
		writeError(w, r, "*Handler.updateBloodPressureLog", err)
		return
	}
	patch, err := models.NewBloodPressureRecordPatch(fields)
	if err != nil {
		writeError(w, r, "*Handler.updateBloodPressureLog", err)
		return
	}

	record, err := h.services.BloodPressureLogService.Update(r.Context(), identity, id, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateBloodPressureLog", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteBloodPressureLog(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteBloodPressureLog", err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteBloodPressureLog", err)
		return
	}

	if err = h.services.BloodPressureLogService.Delete(r.Context(), identity, id); err != nil {
		writeError(w, r, "*Handler.deleteBloodPressureLog", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// exportBloodPressureLogs streams every record of the caller as an xlsx
// attachment.
func (h *Handler) exportBloodPressureLogs(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.exportBloodPressureLogs", err)
		return
	}

	export, err := h.services.BloodPressureLogService.Export(r.Context(), identity)
	if err != nil {
		writeError(w, r, "*Handler.exportBloodPressureLogs", err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}
