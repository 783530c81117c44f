// Package loader walks a directory tree and collects the Python source
// files the scanner should process. File discovery and reading live here,
// outside the extraction core.
package loader

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/duyhunghd6/pysig-cli/internal/util"
)

// FileInfo describes one discovered Python source file.
type FileInfo struct {
	Path         string `json:"path"`
	RelativePath string `json:"relative_path"`
	Size         int64  `json:"size"`
}

// Config holds loader configuration.
type Config struct {
	MaxFileSize int64    // skip files larger than this (bytes)
	ExcludeDirs []string // directory names to skip entirely
}

// DefaultConfig returns the default loader configuration.
func DefaultConfig() Config {
	return Config{
		MaxFileSize: 5 * 1024 * 1024,
		ExcludeDirs: []string{
			".git", "__pycache__", "venv", ".venv", "env",
			"node_modules", "dist", "build", ".tox", ".mypy_cache",
		},
	}
}

// Repository is the set of Python files found under one root.
type Repository struct {
	RootPath string
	Name     string
	Files    []FileInfo
}

// LoadRepository walks rootPath and returns all Python source files,
// honoring .gitignore patterns at the repository root.
func LoadRepository(rootPath string, cfg Config) (*Repository, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", rootPath, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", absRoot)
	}

	repo := &Repository{
		RootPath: absRoot,
		Name:     filepath.Base(absRoot),
	}

	ignore := loadGitignore(absRoot)
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, d := range cfg.ExcludeDirs {
		excluded[d] = true
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		relPath := util.RelativePath(absRoot, path)

		if d.IsDir() {
			if excluded[d.Name()] || ignore.matches(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !util.IsPythonFile(path) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		if cfg.MaxFileSize > 0 && fi.Size() > cfg.MaxFileSize {
			return nil
		}
		if ignore.matches(relPath) {
			return nil
		}

		repo.Files = append(repo.Files, FileInfo{
			Path:         path,
			RelativePath: relPath,
			Size:         fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk error: %w", err)
	}

	return repo, nil
}

// ReadFileContent reads the content of a file.
func ReadFileContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// gitignoreSet holds the patterns read from a repository-root .gitignore.
// Negation patterns (!) are not supported; a negated line is ignored.
type gitignoreSet struct {
	patterns []string
}

func loadGitignore(rootPath string) gitignoreSet {
	f, err := os.Open(filepath.Join(rootPath, ".gitignore"))
	if err != nil {
		return gitignoreSet{}
	}
	defer f.Close()

	var set gitignoreSet
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		set.patterns = append(set.patterns, line)
	}
	return set
}

// matches reports whether relPath is covered by any pattern. Directory
// paths are passed with a trailing slash.
func (g gitignoreSet) matches(relPath string) bool {
	cleanPath := strings.TrimSuffix(relPath, "/")
	base := filepath.Base(cleanPath)

	for _, pat := range g.patterns {
		cleanPat := strings.TrimSuffix(pat, "/")

		// Basename glob: "*.pyc" matches "pkg/mod.pyc".
		if ok, _ := filepath.Match(cleanPat, base); ok {
			return true
		}
		// Full relative path glob: "dist/*" matches "dist/setup.py".
		if ok, _ := filepath.Match(cleanPat, cleanPath); ok {
			return true
		}
		// Directory prefix: "docs/generated" covers everything under it.
		if cleanPath == cleanPat || strings.HasPrefix(cleanPath, cleanPat+"/") {
			return true
		}
		// Bare directory names match as any path component.
		if !strings.ContainsAny(cleanPat, "*?[/") &&
			strings.Contains("/"+cleanPath+"/", "/"+cleanPat+"/") {
			return true
		}
	}
	return false
}
