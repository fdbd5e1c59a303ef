// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ScanOptions configures a Scanner.
type ScanOptions struct {
	// Rules is the compiled base rule set. Nil means no rules: every file
	// passes the rule gate.
	Rules *RuleSet
	// Extensions is the suffix/filename allow-list. The zero value allows
	// nothing, so callers normally pass NewExtensionSet or the "*" sentinel.
	Extensions ExtensionSet
	// Measure produces the record size metric. Nil defaults to
	// EstimateTokens.
	Measure Measurer
	// Warn receives non-fatal per-path diagnostics. Nil silences them.
	Warn WarnFunc
	// NestedRuleFile enables per-directory rules files with the given name
	// during traversal. Empty disables nested rules.
	NestedRuleFile string
	// CacheSize bounds the nested rule set cache. Zero selects the default.
	CacheSize int
}

// Scanner walks a tree and yields one FileRecord per accepted file.
//
// Per-file gating order, cheapest first: rule verdict (inside the walker),
// extension allow-list, binary sniff of the leading bytes, full read with
// UTF-8 validation. A file rejected at any gate is skipped without aborting
// the scan, and no partial record is ever emitted.
type Scanner struct {
	root    string
	walker  *Walker
	exts    ExtensionSet
	measure Measurer
	warn    WarnFunc
}

// NewScanner creates a scanner rooted at root.
func NewScanner(root string, opts ScanOptions) (*Scanner, error) {
	var chain *RuleChain
	if opts.NestedRuleFile != "" {
		var err error
		chain, err = NewRuleChain(opts.NestedRuleFile, opts.CacheSize)
		if err != nil {
			return nil, err
		}
	}

	measure := opts.Measure
	if measure == nil {
		measure = EstimateTokens
	}

	return &Scanner{
		root: root,
		walker: NewWalker(WalkerOptions{
			Rules: opts.Rules,
			Chain: chain,
			Warn:  opts.Warn,
		}),
		exts:    opts.Extensions,
		measure: measure,
		warn:    opts.Warn,
	}, nil
}

// Scan streams accepted files to yield in traversal order. The sequence is
// lazy and finite; callers needing deterministic output must sort collected
// records themselves. Only an invalid root or a yield error aborts the scan.
func (s *Scanner) Scan(ctx context.Context, yield func(FileRecord) error) error {
	if yield == nil {
		return ErrNilYield
	}

	return s.walker.Walk(ctx, s.root, func(abs, rel string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		if !s.exts.Allows(d.Name()) {
			return nil
		}

		if LooksBinary(abs) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		content, err := os.ReadFile(abs)
		if err != nil {
			s.warnf(rel, fmt.Errorf("read error: %w", err))
			return nil
		}

		if !utf8.Valid(content) {
			s.warnf(rel, errors.New("not valid UTF-8 text"))
			return nil
		}

		text := string(content)
		return yield(FileRecord{
			Path:    abs,
			RelPath: rel,
			Content: text,
			Tokens:  s.measure(text),
		})
	})
}

// ScanAll collects the full scan result into a slice.
func (s *Scanner) ScanAll(ctx context.Context) ([]FileRecord, error) {
	var records []FileRecord
	err := s.Scan(ctx, func(rec FileRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// warnf reports one non-fatal scan diagnostic.
func (s *Scanner) warnf(relPath string, err error) {
	if s.warn == nil {
		return
	}

	s.warn(relPath, err)
}
