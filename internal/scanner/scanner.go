// Package scanner extracts structural metadata from Python source using
// regex-based pattern matching for CGO-free operation. It recognizes
// top-level functions, classes, and global assignments only; "top level"
// is approximated by indentation (a column-zero anchor), not by a real
// block-structure parser.
package scanner

import (
	"errors"
	"regexp"

	"github.com/duyhunghd6/pysig-cli/internal/types"
	"github.com/duyhunghd6/pysig-cli/internal/util"
)

// ErrEmptySource is returned when a scan entry point is called with no
// source text at all. Unparseable content is never an error (scanners
// silently skip what they cannot match); a missing input is a caller bug
// and surfaces explicitly.
var ErrEmptySource = errors.New("scanner: empty source text")

// Compiled once at package scope; shared read-only across calls.
var (
	// Function definitions anchored at column zero: def name(...):
	// The parameter run excludes newlines so a parameter list split across
	// lines does not match (multi-line continuation is out of scope).
	funcPattern = regexp.MustCompile(`(?m)^def[ \t]+([A-Za-z_]\w*)[ \t]*\(([^)\n]*)\)[ \t]*:`)

	// Class headers anchored at column zero, followed by the greedy run of
	// indented-or-blank lines that forms the class body. Body capture stops
	// at the first column-zero line, so a doubly-nested inner class is
	// still attributed to the outer class (accepted approximation).
	classPattern = regexp.MustCompile(`(?m)^class[ \t]+([A-Za-z_]\w*)[ \t]*(?:\(([^)\n]*)\))?[ \t]*:[^\n]*\n((?:[ \t]+[^\n]*\n?|[ \t]*\n)*)`)

	// Constructor header inside a captured class body. Unanchored search;
	// first match wins.
	initPattern = regexp.MustCompile(`(?m)^[ \t]+def[ \t]+__init__[ \t]*\(([^)\n]*)\)[ \t]*:`)

	// One comma-separated parameter fragment: optional * or ** marker,
	// identifier, optional ": annotation" (greedy up to the first =),
	// optional "= default" (captured and discarded).
	argPattern = regexp.MustCompile(`^(\*{0,2})([A-Za-z_]\w*)[ \t]*(?::[ \t]*([^=]+))?(?:=.*)?$`)

	// Module-level assignment in the filtered line set: name, optional
	// annotation drawn from a restricted character class (identifiers,
	// dots, brackets, commas, spaces), then = and the raw value text.
	globalPattern = regexp.MustCompile(`(?m)^([A-Za-z_]\w*)[ \t]*(?::[ \t]*([A-Za-z0-9_.\[\], ]+))?[ \t]*=[ \t]*(.+)$`)
)

// ScanSource runs all three extraction passes over one file's content and
// returns the aggregate result. Each pass reads the same immutable text;
// repeated calls on identical input yield structurally equal results.
func ScanSource(filePath, source string) (*types.FileScanResult, error) {
	functions, err := ScanFunctions(source)
	if err != nil {
		return nil, err
	}
	classes, err := ScanClasses(source)
	if err != nil {
		return nil, err
	}
	globals, err := ScanGlobals(source)
	if err != nil {
		return nil, err
	}

	return &types.FileScanResult{
		FilePath:   filePath,
		Functions:  functions,
		Classes:    classes,
		Globals:    globals,
		TotalLines: util.CountLines(source),
	}, nil
}
