package scanner

import (
	"strings"

	"github.com/duyhunghd6/pysig-cli/internal/types"
)

// ScanClasses returns a descriptor for every column-zero class header in
// source, in source order. The class body is the run of indented or blank
// lines immediately following the header; the first def __init__ found
// anywhere in that run supplies the constructor arguments. The leading
// self parameter is emitted like any other argument.
func ScanClasses(source string) ([]types.Class, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	var classes []types.Class
	for _, m := range classPattern.FindAllStringSubmatch(source, -1) {
		cls := types.Class{
			Name:        m[1],
			BaseClasses: splitBases(m[2]),
		}
		if init := initPattern.FindStringSubmatch(m[3]); init != nil {
			cls.ConstructorArguments = ParseArgumentList(init[1])
		}
		classes = append(classes, cls)
	}
	return classes, nil
}

// splitBases splits a parenthesized base-class list on commas, trimming
// each entry and dropping empties. A class without an inheritance list
// gets an empty slice, never nil.
func splitBases(raw string) []string {
	bases := []string{}
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			bases = append(bases, b)
		}
	}
	return bases
}
