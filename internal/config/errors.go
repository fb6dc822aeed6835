package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, empty address or malformed route prefix).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpstreamConfigs indicates invalid upstream client settings
	// (for example, base URL without scheme or zero timeout).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrMissingAuthToken indicates that no upstream credential was supplied.
	ErrMissingAuthToken = errors.New("upstream auth token is not set")
)
