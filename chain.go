// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultChainCacheSize bounds the compiled per-directory rule set cache.
const defaultChainCacheSize = 256

// RuleChain loads per-directory rules files during a walk and caches the
// compiled rule sets, so repeated walks over the same tree do not reload or
// recompile them.
//
// Rules files deeper in the tree override shallower ones: the walker
// evaluates the base rule set first, then every directory-local rule set
// from the scan root down to the candidate's directory, and the last
// matching rule wins across the whole chain.
type RuleChain struct {
	cache    *lru.Cache[string, *RuleSet]
	fileName string
}

// scopedRules is one directory-local rule set bound to its relative prefix.
type scopedRules struct {
	rules  *RuleSet
	prefix string
}

// NewRuleChain creates a chain for the given per-directory rules file name.
// cacheSize <= 0 selects the default cache size.
func NewRuleChain(fileName string, cacheSize int) (*RuleChain, error) {
	name, err := cleanRulesFileName(fileName)
	if err != nil {
		return nil, err
	}

	if cacheSize <= 0 {
		cacheSize = defaultChainCacheSize
	}

	cache, err := lru.New[string, *RuleSet](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("rule chain cache: %w", err)
	}

	return &RuleChain{fileName: name, cache: cache}, nil
}

// load returns the compiled rule set for one absolute directory, nil when
// the directory has no rules file. Unreadable or unparsable rules files are
// reported once per walk through the returned error; the caller treats that
// as a non-fatal warning.
func (c *RuleChain) load(dirAbs string) (*RuleSet, error) {
	if rs, ok := c.cache.Get(dirAbs); ok {
		return rs, nil
	}

	content, err := os.ReadFile(filepath.Join(dirAbs, c.fileName))
	if err != nil {
		if os.IsNotExist(err) {
			c.cache.Add(dirAbs, nil)
			return nil, nil
		}

		return nil, fmt.Errorf("read %s: %w", c.fileName, err)
	}

	rules, err := ParseRules(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.fileName, err)
	}

	rs := CompileRules(rules)
	c.cache.Add(dirAbs, rs)
	return rs, nil
}

// decide applies scoped rule sets over a base verdict, deepest last.
//
// A directory-local rule set applies to paths under its directory, not to
// the directory path itself when it is being evaluated as an entry.
func decide(base *RuleSet, scopes []scopedRules, relPath string, isDir bool) bool {
	ignored := false
	if base != nil {
		ignored, _ = base.Decide(relPath, isDir)
	}

	for i := range scopes {
		candidate := relPath
		if scopes[i].prefix != "" {
			if relPath == scopes[i].prefix {
				continue
			}

			prefix := scopes[i].prefix + "/"
			if !strings.HasPrefix(candidate, prefix) {
				continue
			}

			candidate = candidate[len(prefix):]
		}

		if scopedIgnored, matched := scopes[i].rules.Decide(candidate, isDir); matched {
			ignored = scopedIgnored
		}
	}

	return ignored
}

// cleanRulesFileName validates and normalizes a per-directory rules file name.
func cleanRulesFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = DefaultRulesFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidRulesFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidRulesFileName
	}

	return name, nil
}
