// Package jdeps wraps the JDK class-dependency analyzer behind a narrow,
// mockable interface. The analyzer's textual output is the de facto wire
// protocol here; the line formats jarslim relies on are pinned in parse.go.
package jdeps

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=jdeps.go -destination=mockjdeps.gen.go -package=jdeps

import "github.com/edward-ap/jarslim/pkg/fs"

// Analyzer interface provides class-dependency analysis via the external
// jdeps tool.
type Analyzer interface {
	// FindUnresolved reports the unresolved class references inside the
	// target namespace found while analyzing the given paths.
	FindUnresolved(params FindUnresolvedParams) ([]string, error)

	// TransitiveDeps reports the classes inside the target namespace that
	// the given root classes transitively depend on within the archive.
	TransitiveDeps(params TransitiveDepsParams) ([]string, error)
}

type realAnalyzer struct {
	bin string
	fs  fs.FS
}

// NewAnalyzer creates an Analyzer invoking the named jdeps binary.
func NewAnalyzer(bin string) Analyzer {
	return &realAnalyzer{bin: bin, fs: fs.NewFS()}
}
