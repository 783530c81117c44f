// astcheck runs the regex scanner and a tree-sitter parse over the same
// files and reports where the two disagree. Development tool; the scanner
// never depends on tree-sitter.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/duyhunghd6/pysig-cli/internal/astcheck"
	"github.com/duyhunghd6/pysig-cli/internal/loader"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: astcheck <repo-path>")
		os.Exit(2)
	}

	repo, err := loader.LoadRepository(os.Args[1], loader.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load error: %v\n", err)
		os.Exit(1)
	}

	var reports []*astcheck.Report
	disagreements := 0
	for _, f := range repo.Files {
		content, err := loader.ReadFileContent(f.Path)
		if err != nil || content == "" {
			continue
		}
		report, err := astcheck.Compare(f.RelativePath, content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compare %s: %v\n", f.RelativePath, err)
			continue
		}
		if !report.Agree {
			disagreements++
		}
		reports = append(reports, report)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{
		"files":         len(reports),
		"disagreements": disagreements,
		"reports":       reports,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
		os.Exit(1)
	}

	if disagreements > 0 {
		os.Exit(1)
	}
}
