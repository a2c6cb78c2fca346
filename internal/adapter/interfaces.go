// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the backend
// depends on.
//
// The primary abstraction is [IdentityProvider], which resolves a bearer
// token into the caller's identity. The package ships an HTTP implementation
// for Supabase GoTrue ([NewGoTrueIdentityProvider]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401 and 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/bpl-web-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider resolves access tokens issued by the hosted auth
// provider.
type IdentityProvider interface {
	// GetUser asks the provider who owns accessToken. Returns
	// [ErrUnauthorized] (wrapped) when the provider rejects the token and
	// [ErrNoUser] when it accepts the token but reports no user.
	GetUser(ctx context.Context, accessToken string) (models.Identity, error)
}
