package util

import (
	"path/filepath"
	"sort"
	"strings"
)

// Python source file extensions the scanner accepts.
var pythonExtensions = map[string]bool{
	".py":  true,
	".pyw": true,
	".pyi": true,
}

// IsPythonFile returns true if the file extension marks a Python source file.
func IsPythonFile(filePath string) bool {
	return pythonExtensions[strings.ToLower(filepath.Ext(filePath))]
}

// PythonExtensions returns the accepted file extensions, sorted so error
// messages stay deterministic.
func PythonExtensions() []string {
	exts := make([]string, 0, len(pythonExtensions))
	for ext := range pythonExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
