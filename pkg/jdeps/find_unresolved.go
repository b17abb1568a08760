package jdeps

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// FindUnresolved executes `jdeps -R -verbose:class` across the analysis
// paths and reports the unresolved references inside the target namespace.
func (a *realAnalyzer) FindUnresolved(params FindUnresolvedParams) ([]string, error) {
	if _, err := a.fs.Which(a.bin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, a.bin)
	}

	namespace, err := regexp.Compile(params.NamespacePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	args := []string{"-R", "-verbose:class"}
	if len(params.Classpath) > 0 {
		args = append(args, "-cp", strings.Join(params.Classpath, string(os.PathListSeparator)))
	}
	args = append(args, params.Paths...)

	cmd := exec.Command(a.bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("jdeps command failed: %w (command: %s %s, output: %s)",
			err, a.bin, strings.Join(args, " "), string(output))
	}

	return parseUnresolved(string(output), namespace), nil
}
