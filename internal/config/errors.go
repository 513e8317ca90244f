package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid upstream node settings
	// (for example, a missing or malformed node API URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
