// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BootstrapOptions configures rules file bootstrapping.
type BootstrapOptions struct {
	// Confirm answers yes/no prompts (for example "copy .gitignore rules?").
	// Nil defaults to always-yes, matching non-interactive use.
	Confirm func(prompt string) bool
	// Logf receives human-readable progress lines. Nil silences them.
	Logf func(format string, args ...any)
	// GitignoreName overrides the seed file name. Empty defaults to ".gitignore".
	GitignoreName string
}

// LoadRulesFile reads and parses rules from a file.
// A missing file yields an empty rule list, not an error.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	return rules, nil
}

// BootstrapRulesFile ensures a usable rules file exists at the scan root and
// that it ignores the tool's own output artifact.
//
// Behavior:
//  1. Missing rules file: create it, seeded from the root .gitignore when
//     present and confirmed, otherwise from DefaultIgnorePatterns; the
//     output filename is always appended.
//  2. Existing rules file: when its compiled rules do not already ignore
//     outputName, append it. Append failures degrade to a logged warning.
//
// Returns the rules file path.
func BootstrapRulesFile(rootDir, outputName string, opts BootstrapOptions) (string, error) {
	rulesPath := filepath.Join(rootDir, DefaultRulesFileName)

	if _, err := os.Lstat(rulesPath); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %s: %w", rulesPath, err)
		}

		if err := createRulesFile(rootDir, rulesPath, outputName, opts); err != nil {
			return "", err
		}

		return rulesPath, nil
	}

	if err := ensureOutputIgnored(rulesPath, outputName, opts); err != nil {
		opts.logf("Warning: could not update %s: %v", DefaultRulesFileName, err)
	}

	return rulesPath, nil
}

// createRulesFile writes a fresh rules file seeded from .gitignore or defaults.
func createRulesFile(rootDir, rulesPath, outputName string, opts BootstrapOptions) error {
	opts.logf("'%s' not found. Initializing...", DefaultRulesFileName)

	gitignoreName := opts.GitignoreName
	if gitignoreName == "" {
		gitignoreName = ".gitignore"
	}

	var patterns []string

	gitignorePath := filepath.Join(rootDir, gitignoreName)
	if content, err := os.ReadFile(gitignorePath); err == nil {
		if seed := strings.TrimRight(string(content), "\n"); seed != "" {
			prompt := fmt.Sprintf("Found %s. Copy rules to %s?", gitignoreName, DefaultRulesFileName)
			if opts.confirm(prompt) {
				patterns = strings.Split(seed, "\n")
				opts.logf("Copied rules from %s.", gitignoreName)
			}
		}
	}

	if len(patterns) == 0 {
		opts.logf("Using default ignore patterns.")
		patterns = append(patterns, DefaultIgnorePatterns...)
	}

	patterns = append(patterns, "", "# Exclude this tool's output", outputName)

	data := strings.Join(patterns, "\n") + "\n"
	if err := os.WriteFile(rulesPath, []byte(data), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", rulesPath, err)
	}

	opts.logf("Successfully created: %s", DefaultRulesFileName)
	return nil
}

// ensureOutputIgnored appends outputName when existing rules do not ignore it.
func ensureOutputIgnored(rulesPath, outputName string, opts BootstrapOptions) error {
	rules, err := LoadRulesFile(rulesPath)
	if err != nil {
		return err
	}

	if CompileRules(rules).Match(outputName, false) {
		return nil
	}

	opts.logf("Updating %s: adding '%s' to ignore list.", DefaultRulesFileName, outputName)

	f, err := os.OpenFile(rulesPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", rulesPath, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "\n# Auto-added output file\n%s\n", outputName); err != nil {
		return fmt.Errorf("append %s: %w", rulesPath, err)
	}

	return nil
}

// confirm runs the configured prompt callback with an always-yes default.
func (opts BootstrapOptions) confirm(prompt string) bool {
	if opts.Confirm == nil {
		return true
	}

	return opts.Confirm(prompt)
}

// logf runs the configured log callback when present.
func (opts BootstrapOptions) logf(format string, args ...any) {
	if opts.Logf == nil {
		return
	}

	opts.Logf(format, args...)
}
