package jdeps

import (
	"regexp"
	"strings"
)

// jdeps reports dependencies as indented arrow lines. The two shapes jarslim
// consumes, taken from real `jdeps -verbose:class` output:
//
//	   com.example.App  -> com.google.common.base.Joiner  guava-33.0.jar
//	      -> com.google.common.base.Joiner                not found
//
// The token after "->" is the referenced class; a trailing "not found" marks
// an unresolved reference.

const arrowToken = "->"

// parseUnresolved collects the unresolved referenced classes matching the
// namespace, deduplicated in encounter order.
func parseUnresolved(output string, namespace *regexp.Regexp) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasSuffix(strings.TrimRight(line, " \t\r"), "not found") {
			continue
		}
		name, ok := referencedClass(line)
		if !ok || !matchesWhole(namespace, name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// parseEdges collects the resolved dependency targets matching the
// namespace, deduplicated in encounter order. Unresolved lines are skipped;
// callers treat those separately.
func parseEdges(output string, namespace *regexp.Regexp) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasSuffix(strings.TrimRight(line, " \t\r"), "not found") {
			continue
		}
		name, ok := referencedClass(line)
		if !ok || !matchesWhole(namespace, name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// referencedClass extracts the token following the arrow on a dependency
// line.
func referencedClass(line string) (string, bool) {
	fields := strings.Fields(line)
	for i, field := range fields {
		if field == arrowToken && i+1 < len(fields) {
			return fields[i+1], true
		}
	}
	return "", false
}

// matchesWhole reports whether the pattern matches the entire name, so a
// namespace prefix regex cannot match mid-name.
func matchesWhole(pattern *regexp.Regexp, name string) bool {
	loc := pattern.FindStringIndex(name)
	return loc != nil && loc[0] == 0 && loc[1] == len(name)
}
