package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrNamespaceEmpty   = errors.New("namespace cannot be empty")
	ErrNamespaceInvalid = errors.New("namespace is not a dotted package prefix")
	ErrLibraryHintEmpty = errors.New("library_hint cannot be empty")
	ErrToolNameEmpty    = errors.New("tool binary name cannot be empty")
)
