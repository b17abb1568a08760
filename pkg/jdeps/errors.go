package jdeps

import "errors"

// Error definitions for jdeps package.
var (
	ErrToolNotFound   = errors.New("dependency analyzer not found in PATH")
	ErrInvalidPattern = errors.New("invalid namespace pattern")
)
