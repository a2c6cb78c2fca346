package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bpl-web-backend/internal/adapter"
	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/utils"
	"github.com/MKhiriev/bpl-web-backend/models"
)

// NewAuthService selects the token resolver for cfg. A configured JWT
// secret verifies tokens locally; otherwise every token is sent to the
// identity provider.
func NewAuthService(cfg config.Auth, identityProvider adapter.IdentityProvider, logger *logger.Logger) AuthService {
	if cfg.JWTSecret != "" {
		return NewLocalAuthService(cfg, logger)
	}

	return NewRemoteAuthService(identityProvider, logger)
}

// remoteAuthService asks the hosted identity provider who owns a token.
type remoteAuthService struct {
	identityProvider adapter.IdentityProvider
}

func NewRemoteAuthService(identityProvider adapter.IdentityProvider, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating remote auth service")
	return &remoteAuthService{
		identityProvider: identityProvider,
	}
}

// ResolveIdentity implements [AuthService]. Any provider failure, including
// an unreachable provider, is reported as ErrInvalidCredentials.
func (a *remoteAuthService) ResolveIdentity(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Identity{}, ErrMissingCredentials
	}

	identity, err := a.identityProvider.GetUser(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*remoteAuthService.ResolveIdentity").Msg("identity provider did not accept the token")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if identity.IsZero() {
		log.Error().Str("func", "*remoteAuthService.ResolveIdentity").Msg("identity provider returned an empty user id")
		return models.Identity{}, ErrInvalidCredentials
	}

	return identity, nil
}

// localAuthService verifies HS256 access tokens with the provider's signing
// secret, without a network round trip.
type localAuthService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenAudience is the expected "aud" claim; empty disables the check.
	tokenAudience string
}

func NewLocalAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating local auth service")
	return &localAuthService{
		tokenSignKey:  cfg.JWTSecret,
		tokenAudience: cfg.JWTAudience,
	}
}

// ResolveIdentity implements [AuthService]. Any validation failure (bad
// signature, expired, wrong audience, no subject) is normalised to
// ErrInvalidCredentials.
func (a *localAuthService) ResolveIdentity(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrMissingCredentials
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*localAuthService.ResolveIdentity").Msg("token rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return parsed.Identity(), nil
}
