// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = ".flatcode.yaml"

// Config is the per-project configuration read from ConfigFileName.
// Zero values mean "not set"; the CLI layers flags and environment
// overrides on top.
type Config struct {
	// Output is the combined document filename.
	Output string `yaml:"output,omitempty"`
	// Extensions is the file suffix/filename allow-list ("*" matches all).
	Extensions []string `yaml:"extensions,omitempty"`
	// NestedRules enables per-directory rules files during the walk.
	NestedRules bool `yaml:"nested_rules,omitempty"`
	// CacheSize bounds the nested rule set cache.
	CacheSize int `yaml:"cache_size,omitempty"`
}

// LoadConfig reads the project configuration from rootDir.
// A missing file yields a zero Config, not an error.
func LoadConfig(rootDir string) (Config, error) {
	var cfg Config

	content, err := os.ReadFile(filepath.Join(rootDir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	return cfg, nil
}
