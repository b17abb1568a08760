// Package archive wraps the external archive tools used to take apart and
// rebuild library archives. Archive format handling stays entirely in the
// external tools.
package archive

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=archive.go -destination=mockarchive.gen.go -package=archive

import "github.com/edward-ap/jarslim/pkg/fs"

// Archiver interface provides selective archive extraction and recursive
// archive creation.
type Archiver interface {
	// Extract extracts exactly the named entries from the archive into
	// destDir. Entries may contain shell-style wildcards, which the
	// extraction tool expands against the archive's member list.
	Extract(archivePath string, entries []string, destDir string) error

	// Create packs the contents of srcDir recursively into a new archive at
	// destPath with maximum compression.
	Create(srcDir, destPath string) error
}

type realArchiver struct {
	unzipBin string
	zipBin   string
	fs       fs.FS
}

// NewArchiver creates an Archiver invoking the named extraction and
// creation binaries.
func NewArchiver(unzipBin, zipBin string) Archiver {
	return &realArchiver{unzipBin: unzipBin, zipBin: zipBin, fs: fs.NewFS()}
}
