package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PysigConfig holds global configuration loaded from ~/.pysig/config.yaml.
// Environment variables take precedence over the config file.
type PysigConfig struct {
	DefaultFormat string   `yaml:"default_format"` // text, json, or markdown
	MaxFileSize   int64    `yaml:"max_file_size"`  // bytes; 0 means unlimited
	ExcludeDirs   []string `yaml:"exclude_dirs"`
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pysig", "config.yaml")
}

// Load reads the default YAML config file and applies env overrides.
func Load() (*PysigConfig, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom reads a specific YAML config file and applies env overrides.
// A missing file is not an error; the zero config is returned.
func LoadFrom(path string) (*PysigConfig, error) {
	cfg := &PysigConfig{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PYSIG_FORMAT"); v != "" {
		cfg.DefaultFormat = v
	}
	if v := os.Getenv("PYSIG_MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PYSIG_MAX_FILE_SIZE %q: %w", v, err)
		}
		cfg.MaxFileSize = size
	}
	if v := os.Getenv("PYSIG_EXCLUDE_DIRS"); v != "" {
		cfg.ExcludeDirs = splitList(v)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "text"
	}
	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
