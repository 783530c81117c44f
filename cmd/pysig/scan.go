package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/duyhunghd6/pysig-cli/internal/config"
	"github.com/duyhunghd6/pysig-cli/internal/loader"
	"github.com/duyhunghd6/pysig-cli/internal/scanner"
	"github.com/duyhunghd6/pysig-cli/internal/types"
	"github.com/duyhunghd6/pysig-cli/internal/util"
)

func loaderConfig(cfg *config.PysigConfig, excludeDirs []string) loader.Config {
	lcfg := loader.DefaultConfig()
	if cfg.MaxFileSize > 0 {
		lcfg.MaxFileSize = cfg.MaxFileSize
	}
	lcfg.ExcludeDirs = append(lcfg.ExcludeDirs, cfg.ExcludeDirs...)
	lcfg.ExcludeDirs = append(lcfg.ExcludeDirs, excludeDirs...)
	return lcfg
}

func scanSingleFile(path string) ([]*types.FileScanResult, error) {
	if !util.IsPythonFile(path) {
		return nil, fmt.Errorf("%q is not a Python source file (expected %s)",
			path, strings.Join(util.PythonExtensions(), ", "))
	}
	content, err := loader.ReadFileContent(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	result, err := scanFileContent(path, path, content)
	if err != nil {
		return nil, err
	}
	return []*types.FileScanResult{result}, nil
}

func scanDirectory(path string, cfg *config.PysigConfig, excludeDirs []string) ([]*types.FileScanResult, error) {
	repo, err := loader.LoadRepository(path, loaderConfig(cfg, excludeDirs))
	if err != nil {
		return nil, err
	}

	var results []*types.FileScanResult
	for _, f := range repo.Files {
		content, err := loader.ReadFileContent(f.Path)
		if err != nil {
			log.Printf("[scan] skipping %s: %v", f.RelativePath, err)
			continue
		}
		result, err := scanFileContent(f.Path, f.RelativePath, content)
		if err != nil {
			log.Printf("[scan] skipping %s: %v", f.RelativePath, err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// scanFileContent runs the scanner, mapping an empty file to an empty
// result instead of an error; an empty module is fine at CLI level.
func scanFileContent(path, relPath, content string) (*types.FileScanResult, error) {
	result, err := scanner.ScanSource(path, content)
	if errors.Is(err, scanner.ErrEmptySource) {
		result = &types.FileScanResult{FilePath: path}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	result.RelativePath = relPath
	return result, nil
}
