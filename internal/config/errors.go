package config

import "errors"

// Configuration errors. Callers match them with errors.Is.
var (
	// ErrConfigNotFound is returned when an explicitly requested config
	// file does not exist. A missing default file is not an error.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigExists is returned by WriteFile when the target already
	// exists. Existing configuration is never overwritten.
	ErrConfigExists = errors.New("configuration file already exists")

	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config validation failed")
)
