// Package astcheck cross-checks the regex scanner against a real
// tree-sitter parse of the same source. It is a development aid for
// spotting constructs the pattern-based extraction misses; the scanner
// itself never depends on it.
package astcheck

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/duyhunghd6/pysig-cli/internal/scanner"
)

// Counts holds the number of top-level constructs found by one method.
type Counts struct {
	Functions   int `json:"functions"`
	Classes     int `json:"classes"`
	Assignments int `json:"assignments"`
}

// Report compares scanner output with parser output for one file.
type Report struct {
	File    string `json:"file"`
	Scanner Counts `json:"scanner"`
	Parser  Counts `json:"parser"`
	Agree   bool   `json:"agree"`
}

// ParseCounts parses source with the tree-sitter Python grammar and counts
// top-level function definitions, class definitions, and assignment
// statements.
func ParseCounts(source []byte) (Counts, error) {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return Counts{}, fmt.Errorf("parse error: %w", err)
	}
	defer tree.Close()

	var counts Counts
	root := tree.RootNode()
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		switch child.Type() {
		case "function_definition":
			counts.Functions++
		case "class_definition":
			counts.Classes++
		case "decorated_definition":
			// A decorated_definition wraps either a function or a class.
			for j := 0; j < int(child.ChildCount()); j++ {
				switch child.Child(j).Type() {
				case "function_definition":
					counts.Functions++
				case "class_definition":
					counts.Classes++
				}
			}
		case "expression_statement":
			if child.ChildCount() > 0 && child.Child(0).Type() == "assignment" {
				counts.Assignments++
			}
		}
	}
	return counts, nil
}

// Compare scans source with the regex engine and parses it with
// tree-sitter, returning both counts. Counts can legitimately differ:
// the scanner skips multi-line headers and tuple assignments while the
// parser sees them, so a disagreement is a lead, not a verdict.
func Compare(filePath, source string) (*Report, error) {
	result, err := scanner.ScanSource(filePath, source)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseCounts([]byte(source))
	if err != nil {
		return nil, err
	}

	scanned := Counts{
		Functions:   len(result.Functions),
		Classes:     len(result.Classes),
		Assignments: len(result.Globals),
	}
	return &Report{
		File:    filePath,
		Scanner: scanned,
		Parser:  parsed,
		Agree:   scanned == parsed,
	}, nil
}
