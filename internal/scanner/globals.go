package scanner

import (
	"strings"

	"github.com/duyhunghd6/pysig-cli/internal/types"
)

// ScanGlobals returns a descriptor for every module-level assignment in
// source, in appearance order. The source is first reduced to lines that
// begin at column zero and are not definitions, decorators, or blank;
// assignments are then matched against the rejoined reduced text. A line
// indented by even one space is excluded regardless of its semantic
// nesting depth.
func ScanGlobals(source string) ([]types.GlobalVariable, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	filtered := filterTopLevel(source)

	var globals []types.GlobalVariable
	for _, m := range globalPattern.FindAllStringSubmatch(filtered, -1) {
		globals = append(globals, types.GlobalVariable{
			Name:            m[1],
			TypeAnnotation:  strings.TrimSpace(m[2]),
			ValueExpression: strings.TrimSpace(m[3]),
		})
	}
	return globals, nil
}

// filterTopLevel keeps only the lines that can carry a global assignment:
// non-blank, non-indented, and not starting a def, class, or decorator.
func filterTopLevel(source string) string {
	var kept []string
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "def ") ||
			strings.HasPrefix(trimmed, "class ") ||
			strings.HasPrefix(trimmed, "@") {
			continue
		}
		// The original line must start at column zero.
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
