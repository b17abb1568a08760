// Package slim orchestrates the two jarslim pipelines: finding which
// target-library classes a project references, and minimizing the library
// archive down to those classes and their intra-library dependencies.
package slim

import (
	"github.com/edward-ap/jarslim/pkg/archive"
	"github.com/edward-ap/jarslim/pkg/config"
	"github.com/edward-ap/jarslim/pkg/fs"
	"github.com/edward-ap/jarslim/pkg/jdeps"
	"github.com/edward-ap/jarslim/pkg/logger"
)

// OutputMode selects how find results are rendered.
type OutputMode int

const (
	// ModeClass emits class-file relative paths, nested classes included.
	ModeClass OutputMode = iota
	// ModeSource emits source-file relative paths, nested classes excluded
	// since they have no source file of their own.
	ModeSource
)

// FindParams contains parameters for FindDependencies.
type FindParams struct {
	// Paths are the directories or archives of compiled classes to analyze.
	Paths []string
	// Classpath lists additional classpath entries.
	Classpath []string
	// Mode selects the output rendering.
	Mode OutputMode
}

// MinimizeParams contains parameters for Minimize.
type MinimizeParams struct {
	// ArchivePath is the target library's full archive.
	ArchivePath string
	// ClassListPath is the file listing required class-file paths, one per
	// line, as produced by FindDependencies in class mode.
	ClassListPath string
}

// Slim interface provides the find and minimize pipelines.
type Slim interface {
	// FindDependencies returns the sorted, deduplicated list of
	// target-library references found in the analysis paths, rendered per
	// the requested output mode.
	FindDependencies(params FindParams) ([]string, error)

	// Minimize writes a reduced copy of the archive next to the original
	// and returns its path.
	Minimize(params MinimizeParams) (string, error)

	// SetLogger sets the logger for this Slim instance.
	SetLogger(logger logger.Logger)
}

// NewSlimParams contains parameters for creating a new Slim instance.
type NewSlimParams struct {
	Config *config.Config
}

type realSlim struct {
	fs       fs.FS
	analyzer jdeps.Analyzer
	archiver archive.Archiver
	config   *config.Config
	logger   logger.Logger
}

// NewSlim creates a new Slim instance.
func NewSlim(params NewSlimParams) Slim {
	return &realSlim{
		fs:       fs.NewFS(),
		analyzer: jdeps.NewAnalyzer(params.Config.JdepsBin),
		archiver: archive.NewArchiver(params.Config.UnzipBin, params.Config.ZipBin),
		config:   params.Config,
		logger:   logger.NewNoopLogger(),
	}
}

// SetLogger sets the logger for this Slim instance.
func (s *realSlim) SetLogger(logger logger.Logger) {
	s.logger = logger
}
