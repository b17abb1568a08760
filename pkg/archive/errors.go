package archive

import "errors"

// Error definitions for archive package.
var (
	ErrToolNotFound = errors.New("archive tool not found in PATH")
)
