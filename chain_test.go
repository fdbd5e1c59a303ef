// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"errors"
	"testing"
)

func TestNewRuleChainDefaultName(t *testing.T) {
	t.Parallel()

	chain, err := NewRuleChain("", 0)
	if err != nil {
		t.Fatalf("NewRuleChain: %v", err)
	}

	if chain.fileName != DefaultRulesFileName {
		t.Fatalf("fileName=%q, want %q", chain.fileName, DefaultRulesFileName)
	}
}

func TestNewRuleChainInvalidName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a/b", ".", "..", "/abs"} {
		if _, err := NewRuleChain(name, 0); !errors.Is(err, ErrInvalidRulesFileName) {
			t.Fatalf("NewRuleChain(%q) err=%v, want ErrInvalidRulesFileName", name, err)
		}
	}
}

func TestRuleChainLoadMissingFile(t *testing.T) {
	t.Parallel()

	chain, err := NewRuleChain(".mergeignore", 0)
	if err != nil {
		t.Fatalf("NewRuleChain: %v", err)
	}

	dir := t.TempDir()

	rs, err := chain.load(dir)
	if err != nil || rs != nil {
		t.Fatalf("load(missing)=(%v,%v), want (nil,nil)", rs, err)
	}

	// Absence is cached too.
	if _, ok := chain.cache.Get(dir); !ok {
		t.Fatalf("missing rules file must be cached as nil")
	}
}

func TestDecideScopePrefixBoundary(t *testing.T) {
	t.Parallel()

	scoped := []scopedRules{{
		rules:  CompileLines([]string{"*.md"}),
		prefix: "docs",
	}}

	if !decide(nil, scoped, "docs/readme.md", false) {
		t.Fatalf("scope must apply under its prefix")
	}

	if decide(nil, scoped, "docs", true) {
		t.Fatalf("scope must not apply to its own directory entry")
	}

	if decide(nil, scoped, "docserver/readme.md", false) {
		t.Fatalf("scope must respect segment boundary, not raw string prefix")
	}
}
