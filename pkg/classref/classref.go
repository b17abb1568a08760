// Package classref converts fully-qualified Java class names to and from
// archive-relative file paths.
package classref

import "strings"

const (
	// ClassExt is the compiled class file extension.
	ClassExt = ".class"
	// SourceExt is the Java source file extension.
	SourceExt = ".java"

	// nestedMarker separates a nested class from its enclosing class in a
	// fully-qualified name, per the JVM class file naming convention.
	nestedMarker = "$"
)

// ClassFilePath converts a dotted class name to an archive-relative class
// file path.
func ClassFilePath(name string) string {
	return strings.ReplaceAll(name, ".", "/") + ClassExt
}

// SourceFilePath converts a dotted class name to the relative path of the
// source file declaring it. Nested classes map to the source file of their
// outermost enclosing class.
func SourceFilePath(name string) string {
	if i := strings.Index(name, nestedMarker); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, ".", "/") + SourceExt
}

// ClassName converts an archive-relative class file path back to a dotted
// class name. Backslash separators from list files written on Windows are
// accepted.
func ClassName(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.TrimSuffix(strings.Trim(path, "/"), ClassExt)
	return strings.ReplaceAll(path, "/", ".")
}

// IsNested reports whether name refers to a nested class.
func IsNested(name string) bool {
	return strings.Contains(name, nestedMarker)
}

// IsClassFilePath reports whether path names a compiled class file.
func IsClassFilePath(path string) bool {
	return strings.HasSuffix(path, ClassExt)
}
