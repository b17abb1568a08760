package archive

import (
	"fmt"
	"os/exec"
	"strings"
)

// Extract extracts exactly the named entries from the archive into destDir.
func (a *realArchiver) Extract(archivePath string, entries []string, destDir string) error {
	if _, err := a.fs.Which(a.unzipBin); err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, a.unzipBin)
	}

	args := append([]string{"-qq", archivePath}, entries...)
	args = append(args, "-d", destDir)

	cmd := exec.Command(a.unzipBin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("unzip command failed: %w (command: %s %s, output: %s)",
			err, a.unzipBin, strings.Join(args, " "), string(output))
	}
	return nil
}
