package util

import (
	"path/filepath"
	"strings"
)

// RelativePath returns the relative path from base to target, or target
// unchanged when no relative form exists.
func RelativePath(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}

// FilePathToModulePath converts a file path to a Python-style dotted module
// path, e.g. "pkg/sub/mod.py" → "pkg.sub.mod".
func FilePathToModulePath(filePath string) string {
	noExt := strings.TrimSuffix(filePath, filepath.Ext(filePath))
	return strings.ReplaceAll(noExt, string(filepath.Separator), ".")
}

// CountLines returns the number of lines in a string.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
