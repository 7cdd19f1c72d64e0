package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. The returned error wraps
// one of these together with the offending setting.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, missing host or an out of range port).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listener or HTTP guard settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid token, hashing or logging settings
	// (for example, missing JWT secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
