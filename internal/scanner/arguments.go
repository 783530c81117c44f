package scanner

import (
	"strings"

	"github.com/duyhunghd6/pysig-cli/internal/types"
)

// ParseArgumentList splits a raw parameter-list string into Argument
// records. The split is on every comma; commas nested inside default
// values like {"a": 1, "b": 2} are NOT respected. This matches the
// known limitation of the original extractor and keeps the parser a
// single linear pass; see the limitations section of the README.
//
// Fragments that do not look like a parameter at all are degraded to a
// name-only Argument carrying the whole trimmed fragment, so the parser
// never fails on malformed input.
func ParseArgumentList(raw string) []types.Argument {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var args []types.Argument
	for _, fragment := range strings.Split(raw, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		m := argPattern.FindStringSubmatch(fragment)
		if m == nil {
			// Fallback: keep the fragment verbatim rather than dropping it.
			args = append(args, types.Argument{Name: fragment})
			continue
		}

		// m[1] is the variadic marker (* or **), prepended verbatim so the
		// name round-trips to source-like text. m[3] is the annotation;
		// the default value, if any, is discarded.
		args = append(args, types.Argument{
			Name:           m[1] + m[2],
			TypeAnnotation: strings.TrimSpace(m[3]),
		})
	}
	return args
}
