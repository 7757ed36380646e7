package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, a missing token sign key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidAPIConfigs indicates inconsistent API tunables
	// (for example, a default page size above the maximum).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
)
