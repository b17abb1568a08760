package jdeps

// FindUnresolvedParams contains parameters for FindUnresolved.
type FindUnresolvedParams struct {
	// Paths are the directories, archives or class files to analyze.
	Paths []string
	// Classpath lists additional classpath entries.
	Classpath []string
	// NamespacePattern is the regex selecting target-library class names.
	NamespacePattern string
}

// TransitiveDepsParams contains parameters for TransitiveDeps.
type TransitiveDepsParams struct {
	// ArchivePath is the library archive resolving the dependencies.
	ArchivePath string
	// Classes are the fully-qualified root class names.
	Classes []string
	// NamespacePattern is the regex selecting target-library class names.
	NamespacePattern string
}
