// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Server.APIPrefix != "" && !strings.HasPrefix(cfg.Server.APIPrefix, "/") {
		return fmt.Errorf("%w: api prefix must start with /", ErrInvalidServerConfigs)
	}

	if cfg.Auth.SupabaseURL == "" && cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: set SUPABASE_URL or SUPABASE_JWT_SECRET", ErrInvalidAuthConfigs)
	}

	return nil
}
