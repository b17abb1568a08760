package jdeps

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// TransitiveDeps executes `jdeps -R -verbose:class -e <pattern>` with the
// archive on the classpath and the root classes as analysis targets, and
// reports every target-namespace class reachable from the roots.
func (a *realAnalyzer) TransitiveDeps(params TransitiveDepsParams) ([]string, error) {
	if _, err := a.fs.Which(a.bin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, a.bin)
	}

	namespace, err := regexp.Compile(params.NamespacePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	args := []string{"-R", "-verbose:class", "-e", params.NamespacePattern, "-cp", params.ArchivePath}
	args = append(args, params.Classes...)

	cmd := exec.Command(a.bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("jdeps command failed: %w (command: %s %s, output: %s)",
			err, a.bin, strings.Join(args, " "), string(output))
	}

	return parseEdges(string(output), namespace), nil
}
