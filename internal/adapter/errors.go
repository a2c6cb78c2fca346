package adapter

import "errors"

var (
	ErrUnauthorized     = errors.New("identity provider rejected the token")
	ErrNoUser           = errors.New("identity provider returned no user")
	ErrProviderFailure  = errors.New("identity provider failure")
	ErrUnexpectedStatus = errors.New("unexpected identity provider status")
)
