package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidProtocolConfigs indicates a reply capacity too small to hold
	// at least one byte and the NUL terminator.
	ErrInvalidProtocolConfigs = errors.New("invalid protocol configuration")
	// ErrInvalidServerConfigs indicates a missing column listener address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates that neither a data file nor a DSN
	// was configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates invalid client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
