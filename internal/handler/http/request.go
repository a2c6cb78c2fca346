package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// readBody reads the request body and validates it against schemaID.
// The returned bytes are known to be a well-formed document of the
// expected shape.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request, schemaID string) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, invalidRequest(fmt.Sprintf("body exceeds %d bytes", maxBytesErr.Limit))
		}
		return nil, invalidRequest(detailInvalidJSONBody)
	}

	if err = h.validator.Validate(r.Context(), schemaID, body); err != nil {
		return nil, err
	}

	return body, nil
}

// decodeBody validates the body against schemaID and decodes it into dst.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, schemaID string, dst any) error {
	body, err := h.readBody(w, r, schemaID)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, dst); err != nil {
		return invalidBody(err)
	}
	return nil
}

// decodePatchBody validates the body against schemaID and keeps every
// member undecoded so that absent and null fields stay distinguishable.
func (h *Handler) decodePatchBody(w http.ResponseWriter, r *http.Request, schemaID string) (map[string]models.RawField, error) {
	var fields map[string]models.RawField
	if err := h.decodeBody(w, r, schemaID, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// identityFromRequest returns the caller stored by the auth middleware.
func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, service.ErrInvalidCredentials
	}
	return identity, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, invalidRequest(detailInvalidPathID)
	}
	return id, nil
}

// pageFromQuery reads page and per_page, applying defaults for absent
// values. Range checks are left to the service.
func pageFromQuery(r *http.Request) (models.Page, error) {
	page := models.NewPage()
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, invalidRequest(detailInvalidPage)
		}
		page.Page = v
	}
	if raw := query.Get("per_page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, invalidRequest(detailInvalidPerPage)
		}
		page.PerPage = v
	}

	return page, nil
}
