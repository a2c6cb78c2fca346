package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/bpl-web-backend/internal/adapter"
	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/mock"
	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: "alice@example.com",
		Role:  "authenticated",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// ── selection ───────────────────────────────────────────────────────────────

func TestNewAuthService_Selection(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockIdentityProvider(ctrl)

	local := NewAuthService(config.Auth{JWTSecret: testSecret}, provider, logger.Nop())
	assert.IsType(t, &localAuthService{}, local)

	remote := NewAuthService(config.Auth{SupabaseURL: "https://x.supabase.co"}, provider, logger.Nop())
	assert.IsType(t, &remoteAuthService{}, remote)
}

// ── remote ──────────────────────────────────────────────────────────────────

func TestRemoteAuthService_ResolveIdentity_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockIdentityProvider(ctrl)
	svc := NewRemoteAuthService(provider, logger.Nop())
	ctx := context.Background()

	want := models.Identity{ID: "user-1", Email: "alice@example.com"}
	provider.EXPECT().GetUser(ctx, "token").Return(want, nil)

	got, err := svc.ResolveIdentity(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoteAuthService_ResolveIdentity_Errors(t *testing.T) {
	tests := []struct {
		name        string
		providerErr error
		identity    models.Identity
	}{
		{name: "rejected", providerErr: adapter.ErrUnauthorized},
		{name: "provider down", providerErr: adapter.ErrProviderFailure},
		{name: "no user", providerErr: adapter.ErrNoUser},
		{name: "empty id", identity: models.Identity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock.NewMockIdentityProvider(ctrl)
			svc := NewRemoteAuthService(provider, logger.Nop())

			provider.EXPECT().GetUser(gomock.Any(), "token").Return(tt.identity, tt.providerErr)

			_, err := svc.ResolveIdentity(context.Background(), "token")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			if tt.providerErr != nil {
				assert.ErrorIs(t, err, tt.providerErr)
			}
		})
	}
}

func TestRemoteAuthService_ResolveIdentity_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockIdentityProvider(ctrl)
	svc := NewRemoteAuthService(provider, logger.Nop())

	_, err := svc.ResolveIdentity(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

// ── local ───────────────────────────────────────────────────────────────────

func TestLocalAuthService_ResolveIdentity(t *testing.T) {
	svc := NewLocalAuthService(config.Auth{JWTSecret: testSecret, JWTAudience: "authenticated"}, logger.Nop())
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		identity, err := svc.ResolveIdentity(ctx, signToken(t, "user-1", time.Now().Add(time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, models.Identity{ID: "user-1", Email: "alice@example.com", Role: "authenticated"}, identity)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := svc.ResolveIdentity(ctx, signToken(t, "user-1", time.Now().Add(-time.Minute)))
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ResolveIdentity(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewLocalAuthService(config.Auth{JWTSecret: "another-secret"}, logger.Nop())
		_, err := other.ResolveIdentity(ctx, signToken(t, "user-1", time.Now().Add(time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := svc.ResolveIdentity(ctx, "")
		assert.True(t, errors.Is(err, ErrMissingCredentials))
	})
}
