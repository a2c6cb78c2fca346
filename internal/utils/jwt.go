package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoBearerToken is returned by ParseBearerToken when the header does
	// not have the form "Bearer <token>".
	ErrNoBearerToken = errors.New("no bearer token in authorization header")

	// ErrEmptySubject is returned when a verified token has no "sub" claim.
	ErrEmptySubject = errors.New("empty subject in token")
)

// ValidateAndParseJWTToken validates an HS256-signed access token and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Expiration (exp) claim check
//   - Audience (aud) claim check when audience is not empty
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "authenticated")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, audience string) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		options = append(options, jwt.WithAudience(audience))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	claims.Token = token
	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrNoBearerToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}
