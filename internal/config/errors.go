package config

import "errors"

// Configuration errors. All of them stop the process before any request is sent.
var (
	// ErrMissingCredential is returned when no API key was found in the
	// environment or the configuration file.
	ErrMissingCredential = errors.New("no API key configured: set " + APIKeyEnv + " or api_key in the configuration file")

	// ErrInvalidTimeout is returned when the timeout is not a positive duration.
	ErrInvalidTimeout = errors.New("invalid timeout: must be a positive duration")

	// ErrInvalidEndpoint is returned when the endpoint is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint: must be an absolute http or https URL")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInsecurePermissions is returned when a file holding the API key can
	// be read by users other than its owner.
	ErrInsecurePermissions = errors.New("file is readable by group or others")
)
