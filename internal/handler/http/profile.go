package http

import (
	"net/http"

	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/internal/validators"
	"github.com/MKhiriev/bpl-web-backend/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	profile, err := h.services.ProfileService.Get(r.Context(), identity)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createProfile", err)
		return
	}

	var payload models.UserProfileCreate
	if err = h.decodeBody(w, r, validators.ProfileCreate, &payload); err != nil {
		writeError(w, r, "*Handler.createProfile", err)
		return
	}

	profile, err := h.services.ProfileService.Create(r.Context(), identity, payload)
	if err != nil {
		writeError(w, r, "*Handler.createProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusCreated)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	fields, err := h.decodePatchBody(w, r, validators.ProfileUpdate)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}
	patch, err := models.NewUserProfilePatch(fields)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	profile, err := h.services.ProfileService.Update(r.Context(), identity, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
