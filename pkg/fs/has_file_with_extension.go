package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// HasFileWithExtension reports whether any file under root carries the given
// extension. The walk stops at the first match.
func (f *realFS) HasFileWithExtension(root, ext string) (bool, error) {
	found := false
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
