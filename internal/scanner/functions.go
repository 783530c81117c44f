package scanner

import "github.com/duyhunghd6/pysig-cli/internal/types"

// ScanFunctions returns a descriptor for every column-zero def header in
// source, in source order. Indented (nested) definitions cannot match the
// column-zero anchor and are skipped, as are malformed headers such as
// unbalanced parentheses or parameter lists split across lines: no match,
// no descriptor, no error.
func ScanFunctions(source string) ([]types.Function, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	var functions []types.Function
	for _, m := range funcPattern.FindAllStringSubmatch(source, -1) {
		functions = append(functions, types.Function{
			Name:      m[1],
			Arguments: ParseArgumentList(m[2]),
		})
	}
	return functions, nil
}
