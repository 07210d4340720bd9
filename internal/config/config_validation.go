// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// normalize trims values whose surrounding whitespace is never meaningful.
func (cfg *StructuredConfig) normalize() {
	cfg.App.Secret = strings.TrimSpace(cfg.App.Secret)
	cfg.App.PasswordAlgorithm = strings.ToLower(strings.TrimSpace(cfg.App.PasswordAlgorithm))
	cfg.Cookie.SameSite = strings.ToLower(strings.TrimSpace(cfg.Cookie.SameSite))
	cfg.Storage.DB.DSN = strings.TrimSpace(cfg.Storage.DB.DSN)

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.Server.AllowedOrigins = origins
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing or short secret yields [ErrMisconfiguration]; the other checks
// yield the group-specific errors from errors.go.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.Secret) < MinSecretLength {
		return fmt.Errorf("%w: server secret must be at least %d characters", ErrMisconfiguration, MinSecretLength)
	}

	switch cfg.App.PasswordAlgorithm {
	case AlgorithmHMACSHA256, AlgorithmArgon2id:
	default:
		return fmt.Errorf("%w: unknown password algorithm %q", ErrInvalidAppConfigs, cfg.App.PasswordAlgorithm)
	}

	if cfg.App.SessionLifetime <= 0 {
		return fmt.Errorf("%w: session lifetime must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionSliding && cfg.App.SessionUpdateAge <= 0 {
		return fmt.Errorf("%w: session update age must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Cookie.SameSite {
	case "none", "lax", "strict":
	default:
		return fmt.Errorf("%w: same site must be one of none, lax, strict", ErrInvalidCookieConfigs)
	}

	if cfg.Cookie.Name == "" {
		return fmt.Errorf("%w: cookie name is empty", ErrInvalidCookieConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Cache.Enabled() && cfg.Storage.Cache.SessionMaxMB <= 0 {
		return fmt.Errorf("%w: session cache size must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
