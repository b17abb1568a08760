package fs

import "os"

// TempDir returns the directory to use for scratch space.
func (f *realFS) TempDir() string {
	return os.TempDir()
}
