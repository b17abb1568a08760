package slim

import "errors"

// Error definitions for slim package.
var (
	// Input validation errors.
	ErrPathNotFound      = errors.New("path does not exist")
	ErrNoCompiledClasses = errors.New("no compiled class files found in the analysis paths")
	ErrNoClassEntries    = errors.New("class list contains no class-file entries")

	// Analysis errors.
	ErrNoDependenciesFound = errors.New(
		"no target-library references found; the library may be unreferenced or already on the classpath")
	ErrTransitiveResolution = errors.New(
		"transitive dependency resolution failed; the archive may not match the class list")

	// Output errors.
	ErrDestinationExists = errors.New("destination archive already exists")
	ErrExtraction        = errors.New("failed to extract entries from archive")
	ErrPackaging         = errors.New("failed to pack minimized archive")
)
