package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It extracts the token from the "Authorization" header, resolves it via
// [service.AuthService.ResolveIdentity] and, on success, stores the caller's
// identity in the request context before delegating to the next handler.
//
// Rejections:
//   - no header                      → 403 "Not authenticated"
//   - header is not "Bearer <token>" → 403 "Invalid authentication credentials"
//   - token not accepted             → 401 "Invalid authentication credentials"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", service.ErrMissingCredentials)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", fmt.Errorf("%w: %w", service.ErrMalformedCredentials, err))
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ResolveIdentity(ctx, token)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", identity.ID)
		})
		ctx = l.WithContext(utils.WithIdentity(ctx, identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
