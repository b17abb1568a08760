package archive

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Create packs the contents of srcDir recursively into a new archive at
// destPath with maximum compression.
func (a *realArchiver) Create(srcDir, destPath string) error {
	if _, err := a.fs.Which(a.zipBin); err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, a.zipBin)
	}

	// The tool runs inside srcDir so entry names stay archive-relative; the
	// destination must survive the directory change.
	absDest, err := filepath.Abs(destPath)
	if err != nil {
		return fmt.Errorf("failed to resolve destination path: %w", err)
	}

	args := []string{"-q", "-9", "-r", absDest, "."}

	cmd := exec.Command(a.zipBin, args...)
	cmd.Dir = srcDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("zip command failed: %w (command: %s %s, output: %s)",
			err, a.zipBin, strings.Join(args, " "), string(output))
	}
	return nil
}
