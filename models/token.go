package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a verified access token issued by the identity provider.
//
// It embeds [jwt.RegisteredClaims] for standard claim access and carries the
// provider-specific claims the application reads. Subject ("sub") is the
// user id.
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// Email is the "email" claim set by the identity provider.
	Email string `json:"email,omitempty"`

	// Role is the "role" claim (e.g. "authenticated").
	Role string `json:"role,omitempty"`
}

// Identity returns the caller described by the token.
func (t *Token) Identity() Identity {
	return Identity{
		ID:    t.Subject,
		Email: t.Email,
		Role:  t.Role,
	}
}
