package http

import (
	"net/http"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/models"
)

const rootMessage = "BPL-Web Backend is running!"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: rootMessage}, http.StatusOK)
}

// readiness reports 503 while the database cannot be reached.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.readiness").Msg("not ready")
		utils.WriteJSON(w, models.ReadinessResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.ReadinessResponse{Status: "ok"}, http.StatusOK)
}

// getServerVersion answers with the bare version string so that deploy
// scripts can compare it without parsing JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(version))
}
