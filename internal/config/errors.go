package config

import "errors"

// ErrMisconfiguration indicates that the server secret is absent or shorter
// than [MinSecretLength]. The process must not start in this state.
var ErrMisconfiguration = errors.New("server secret is missing or too short")

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCookieConfigs indicates invalid session cookie attributes.
	ErrInvalidCookieConfigs = errors.New("invalid cookie configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listener address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
