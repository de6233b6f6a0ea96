package config

import "errors"

// Validation errors returned by [Config.validate] when required configuration
// groups are incomplete.
var (
	// ErrInvalidAuthConfigs indicates missing token settings
	// (for example, an empty token signing key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
