// Package render turns scan results into output text. The scanner keeps
// variadic markers inside argument names, so signatures rebuild into
// source-like text without special cases.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/duyhunghd6/pysig-cli/internal/types"
	"github.com/duyhunghd6/pysig-cli/internal/util"
)

// Formats supported by Render.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Render formats the results in the requested format.
func Render(format string, results []*types.FileScanResult) (string, error) {
	switch format {
	case FormatText:
		return Text(results), nil
	case FormatJSON:
		return JSON(results)
	case FormatMarkdown:
		return Markdown(results), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// FormatArgument renders one argument as it would appear in a def header,
// minus any default value (defaults are not extracted).
func FormatArgument(a types.Argument) string {
	if a.TypeAnnotation != "" {
		return a.Name + ": " + a.TypeAnnotation
	}
	return a.Name
}

func formatArguments(args []types.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = FormatArgument(a)
	}
	return strings.Join(parts, ", ")
}

// FunctionSignature renders a function descriptor as a def header without
// the trailing colon.
func FunctionSignature(f types.Function) string {
	return fmt.Sprintf("def %s(%s)", f.Name, formatArguments(f.Arguments))
}

// ClassSignature renders a class descriptor header.
func ClassSignature(c types.Class) string {
	if len(c.BaseClasses) == 0 {
		return "class " + c.Name
	}
	return fmt.Sprintf("class %s(%s)", c.Name, strings.Join(c.BaseClasses, ", "))
}

// GlobalLine renders a global variable as the assignment it came from.
func GlobalLine(g types.GlobalVariable) string {
	if g.TypeAnnotation != "" {
		return fmt.Sprintf("%s: %s = %s", g.Name, g.TypeAnnotation, g.ValueExpression)
	}
	return fmt.Sprintf("%s = %s", g.Name, g.ValueExpression)
}

// Text renders a plain indented listing, one block per file.
func Text(results []*types.FileScanResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		path := r.RelativePath
		if path == "" {
			path = r.FilePath
		}
		fmt.Fprintf(&b, "%s (%d lines)\n", path, r.TotalLines)
		for _, g := range r.Globals {
			fmt.Fprintf(&b, "  %s\n", GlobalLine(g))
		}
		for _, f := range r.Functions {
			fmt.Fprintf(&b, "  %s\n", FunctionSignature(f))
		}
		for _, c := range r.Classes {
			fmt.Fprintf(&b, "  %s\n", ClassSignature(c))
			if len(c.ConstructorArguments) > 0 {
				fmt.Fprintf(&b, "    __init__(%s)\n", formatArguments(c.ConstructorArguments))
			}
		}
	}
	return b.String()
}

// JSON renders the results as indented JSON.
func JSON(results []*types.FileScanResult) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode results: %w", err)
	}
	return string(data) + "\n", nil
}

// Markdown renders a per-module summary with fenced signature blocks.
func Markdown(results []*types.FileScanResult) string {
	var b strings.Builder
	for _, r := range results {
		path := r.RelativePath
		if path == "" {
			path = r.FilePath
		}
		fmt.Fprintf(&b, "## %s\n\n", util.FilePathToModulePath(path))
		if len(r.Globals) > 0 {
			b.WriteString("Globals:\n\n```python\n")
			for _, g := range r.Globals {
				b.WriteString(GlobalLine(g) + "\n")
			}
			b.WriteString("```\n\n")
		}
		if len(r.Functions) > 0 {
			b.WriteString("Functions:\n\n```python\n")
			for _, f := range r.Functions {
				b.WriteString(FunctionSignature(f) + "\n")
			}
			b.WriteString("```\n\n")
		}
		if len(r.Classes) > 0 {
			b.WriteString("Classes:\n\n```python\n")
			for _, c := range r.Classes {
				b.WriteString(ClassSignature(c) + "\n")
				if len(c.ConstructorArguments) > 0 {
					fmt.Fprintf(&b, "    def __init__(%s)\n", formatArguments(c.ConstructorArguments))
				}
			}
			b.WriteString("```\n\n")
		}
	}
	return b.String()
}
