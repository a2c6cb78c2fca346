// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bpl-web-backend/internal/utils"
)

// notFound is registered as the router's NotFound handler so that unknown
// paths get the same {"detail": ...} body as every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, detailNotFound, http.StatusNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// chi has already set the Allow header for the matched route.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, detailMethodNotAllowed, http.StatusMethodNotAllowed)
}

// withOptions answers every OPTIONS request that was not a CORS preflight
// with an empty 200, before routing and authentication.
func withOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
