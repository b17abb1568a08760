package slim

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/edward-ap/jarslim/pkg/classref"
	"github.com/edward-ap/jarslim/pkg/jdeps"
)

// archiveExts are path extensions treated as containers of compiled classes.
var archiveExts = map[string]bool{
	".jar":   true,
	".war":   true,
	".zip":   true,
	".class": true,
}

// FindDependencies runs the dependency analyzer over the analysis paths and
// returns the sorted target-library references, rendered per the mode.
func (s *realSlim) FindDependencies(params FindParams) ([]string, error) {
	if err := s.validateFindInputs(params); err != nil {
		return nil, err
	}

	names, err := s.analyzer.FindUnresolved(jdeps.FindUnresolvedParams{
		Paths:            params.Paths,
		Classpath:        params.Classpath,
		NamespacePattern: s.config.NamespaceRegex(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDependenciesFound, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w (namespace: %s)", ErrNoDependenciesFound, s.config.Namespace)
	}

	sort.Strings(names)
	return renderNames(names, params.Mode), nil
}

// validateFindInputs checks every supplied path before any tool runs.
func (s *realSlim) validateFindInputs(params FindParams) error {
	for _, path := range append(append([]string{}, params.Paths...), params.Classpath...) {
		exists, err := s.fs.Exists(path)
		if err != nil {
			return fmt.Errorf("failed to check path %s: %w", path, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	// Analyzing the library against itself resolves all of its classes and
	// empties the report.
	hint := strings.ToLower(s.config.LibraryHint)
	for _, path := range params.Paths {
		if strings.Contains(strings.ToLower(filepath.Base(path)), hint) {
			s.logger.Logf("Warning: %s looks like the target library itself; analyzing it hides real usage", path)
		}
	}

	return s.checkCompiledClasses(params.Paths)
}

// checkCompiledClasses requires at least one analysis path to contain
// compiled classes.
func (s *realSlim) checkCompiledClasses(paths []string) error {
	for _, path := range paths {
		isDir, err := s.fs.IsDir(path)
		if err != nil {
			return fmt.Errorf("failed to inspect path %s: %w", path, err)
		}
		if !isDir {
			if archiveExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			continue
		}
		found, err := s.fs.HasFileWithExtension(path, classref.ClassExt)
		if err != nil {
			return fmt.Errorf("failed to scan path %s: %w", path, err)
		}
		if found {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoCompiledClasses, strings.Join(paths, ", "))
}

// renderNames converts sorted class names into the requested path form.
// Source mode drops nested classes, which share their enclosing class's
// source file and would duplicate or mislead.
func renderNames(names []string, mode OutputMode) []string {
	rendered := make([]string, 0, len(names))
	for _, name := range names {
		switch mode {
		case ModeSource:
			if classref.IsNested(name) {
				continue
			}
			rendered = append(rendered, classref.SourceFilePath(name))
		default:
			rendered = append(rendered, classref.ClassFilePath(name))
		}
	}
	return rendered
}
