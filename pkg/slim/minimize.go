package slim

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/edward-ap/jarslim/pkg/classref"
	"github.com/edward-ap/jarslim/pkg/jdeps"
	"github.com/segmentio/ksuid"
)

// metadataGlob selects the package metadata every minimized archive keeps.
const metadataGlob = "META-INF/*"

// Minimize computes the transitive closure of the listed classes within the
// archive, extracts that set plus package metadata into a scratch directory,
// and repacks it as <base>-min.<ext> next to the original.
func (s *realSlim) Minimize(params MinimizeParams) (string, error) {
	for _, path := range []string{params.ArchivePath, params.ClassListPath} {
		exists, err := s.fs.Exists(path)
		if err != nil {
			return "", fmt.Errorf("failed to check path %s: %w", path, err)
		}
		if !exists {
			return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	destPath := MinimizedPath(params.ArchivePath)
	exists, err := s.fs.Exists(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to check destination %s: %w", destPath, err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, destPath)
	}

	entries, err := s.readClassList(params.ClassListPath)
	if err != nil {
		return "", err
	}

	scratch := filepath.Join(s.fs.TempDir(), "jarslim-"+ksuid.New().String())
	if err := s.fs.MkdirAll(scratch, 0o700); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	cleanup := func() { _ = s.fs.RemoveAll(scratch) }
	defer cleanup()
	defer cleanupOnInterrupt(cleanup)()

	classes := make([]string, len(entries))
	for i, entry := range entries {
		classes[i] = classref.ClassName(entry)
	}

	s.logger.Logf("Resolving transitive dependencies for %d classes in %s", len(classes), params.ArchivePath)
	deps, err := s.analyzer.TransitiveDeps(jdeps.TransitiveDepsParams{
		ArchivePath:      params.ArchivePath,
		Classes:          classes,
		NamespacePattern: s.config.NamespaceRegex(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransitiveResolution, err)
	}
	if len(deps) == 0 {
		return "", fmt.Errorf("%w (archive: %s)", ErrTransitiveResolution, params.ArchivePath)
	}

	selected := unionClassPaths(entries, deps)
	s.logger.Logf("Extracting %d entries", len(selected))
	if err := s.archiver.Extract(params.ArchivePath, append(selected, metadataGlob), scratch); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	s.logger.Logf("Packing %s", destPath)
	if err := s.archiver.Create(scratch, destPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPackaging, err)
	}

	s.logger.Logf("Wrote %s", destPath)
	return destPath, nil
}

// readClassList reads the newline-separated list file and keeps the
// class-file entries.
func (s *realSlim) readClassList(path string) ([]string, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class list %s: %w", path, err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if classref.IsClassFilePath(line) {
			entries = append(entries, line)
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoClassEntries, path)
	}
	return entries, nil
}

// unionClassPaths merges the listed entries with the discovered dependency
// class names, deduplicated and sorted.
func unionClassPaths(entries, depNames []string) []string {
	set := make(map[string]struct{}, len(entries)+len(depNames))
	for _, entry := range entries {
		set[entry] = struct{}{}
	}
	for _, name := range depNames {
		set[classref.ClassFilePath(name)] = struct{}{}
	}

	union := make([]string, 0, len(set))
	for entry := range set {
		union = append(union, entry)
	}
	sort.Strings(union)
	return union
}

// MinimizedPath returns the archive path with "-min" inserted before the
// extension.
func MinimizedPath(archivePath string) string {
	ext := filepath.Ext(archivePath)
	return strings.TrimSuffix(archivePath, ext) + "-min" + ext
}

// cleanupOnInterrupt removes the scratch directory when the process is
// interrupted mid-operation. The returned stop function releases the
// handler once the normal deferred cleanup takes over.
func cleanupOnInterrupt(cleanup func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			cleanup()
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
