package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duyhunghd6/pysig-cli/internal/config"
	"github.com/duyhunghd6/pysig-cli/internal/render"
	"github.com/duyhunghd6/pysig-cli/internal/scanner"
	"github.com/duyhunghd6/pysig-cli/internal/types"
)

// Descriptor kinds for the filtered-view subcommands.
const (
	viewFunctions = "functions"
	viewClasses   = "classes"
	viewGlobals   = "globals"
)

// buildRootCmd creates the root cobra command with all subcommands.
func buildRootCmd(cfg *config.PysigConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pysig",
		Short: "pysig — lightweight Python signature scanner",
		Long: `pysig extracts top-level function signatures, class definitions,
and global assignments from Python source without running a full parser.
Scope is approximated from indentation: only column-zero constructs count
as top level.`,
		Version: version,
	}

	var format string
	var excludeDirs []string
	rootCmd.PersistentFlags().StringVar(&format, "format", cfg.DefaultFormat,
		"Output format: text, json, or markdown")
	rootCmd.PersistentFlags().StringSliceVar(&excludeDirs, "exclude", nil,
		"Additional directory names to skip (repeatable)")

	// --- scan command ---
	var jsonOutput bool

	scanCmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan a Python file or directory",
		Long:  "Extract functions, classes, and globals from one file or every Python file under a directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := scanPath(args[0], cfg, excludeDirs)
			if err != nil {
				return err
			}
			out, err := render.Render(resolveFormat(format, jsonOutput), results)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	scanCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(scanCmd)

	// --- filtered views: funcs / classes / globals ---
	rootCmd.AddCommand(
		viewCmd("funcs", "List top-level functions only", viewFunctions, cfg, &format, &excludeDirs),
		viewCmd("classes", "List top-level classes only", viewClasses, cfg, &format, &excludeDirs),
		viewCmd("globals", "List global assignments only", viewGlobals, cfg, &format, &excludeDirs),
	)

	// --- args command ---
	argsCmd := &cobra.Command{
		Use:   "args <parameter-list>",
		Short: "Parse a raw parameter-list string",
		Long:  `Split a def-style parameter list (e.g. "url: str, timeout: float = 30.0, *args") into arguments.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := scanner.ParseArgumentList(strings.Join(args, " "))
			for _, a := range parsed {
				fmt.Println(render.FormatArgument(a))
			}
			return nil
		},
	}
	rootCmd.AddCommand(argsCmd)

	// --- find command ---
	var findClass bool
	var findBase bool

	findCmd := &cobra.Command{
		Use:   "find <name> <path>",
		Short: "Find a function or class by name",
		Long: `Look up a top-level function (default) or class by exact name across
the scanned files. With --base, list every class inheriting from <name>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			results, err := scanPath(path, cfg, excludeDirs)
			if err != nil {
				return err
			}

			found := false
			for _, r := range results {
				switch {
				case findBase:
					for _, c := range scanner.FindClassesWithBase(name, r.Classes) {
						fmt.Printf("%s: %s\n", r.RelativePath, render.ClassSignature(c))
						found = true
					}
				case findClass:
					if c := scanner.FindClassByName(name, r.Classes); c != nil {
						fmt.Printf("%s: %s\n", r.RelativePath, render.ClassSignature(*c))
						found = true
					}
				default:
					if f := scanner.FindFunctionByName(name, r.Functions); f != nil {
						fmt.Printf("%s: %s\n", r.RelativePath, render.FunctionSignature(*f))
						found = true
					}
				}
			}
			if !found {
				return fmt.Errorf("no match for %q", name)
			}
			return nil
		},
	}
	findCmd.Flags().BoolVar(&findClass, "class", false, "Look up a class instead of a function")
	findCmd.Flags().BoolVar(&findBase, "base", false, "List classes inheriting from <name>")
	rootCmd.AddCommand(findCmd)

	// --- completion command ---
	completionCmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	rootCmd.AddCommand(completionCmd)

	return rootCmd
}

// viewCmd builds a scan subcommand restricted to one descriptor kind.
func viewCmd(use, short, kind string, cfg *config.PysigConfig, format *string, excludeDirs *[]string) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   use + " <path>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := scanPath(args[0], cfg, *excludeDirs)
			if err != nil {
				return err
			}
			out, err := render.Render(resolveFormat(*format, jsonOutput), filterResults(results, kind))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// filterResults keeps only one descriptor kind per file so the renderers
// print a single section.
func filterResults(results []*types.FileScanResult, kind string) []*types.FileScanResult {
	filtered := make([]*types.FileScanResult, len(results))
	for i, r := range results {
		f := &types.FileScanResult{
			FilePath:     r.FilePath,
			RelativePath: r.RelativePath,
			TotalLines:   r.TotalLines,
		}
		switch kind {
		case viewFunctions:
			f.Functions = r.Functions
		case viewClasses:
			f.Classes = r.Classes
		case viewGlobals:
			f.Globals = r.Globals
		}
		filtered[i] = f
	}
	return filtered
}

// resolveFormat applies the --json shorthand over the --format flag.
func resolveFormat(format string, jsonOutput bool) string {
	if jsonOutput {
		return render.FormatJSON
	}
	return format
}

// scanPath scans either a single file or every Python file under a
// directory, returning results in walk order.
func scanPath(path string, cfg *config.PysigConfig, excludeDirs []string) ([]*types.FileScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}
	if info.IsDir() {
		return scanDirectory(path, cfg, excludeDirs)
	}
	return scanSingleFile(path)
}
