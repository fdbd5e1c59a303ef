// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import "testing"

func TestExtensionSetSuffix(t *testing.T) {
	t.Parallel()

	e := NewExtensionSet([]string{".py", ".md"})

	if !e.Allows("app.py") {
		t.Fatalf("app.py must be allowed")
	}

	if !e.Allows("README.md") {
		t.Fatalf("README.md must be allowed")
	}

	if e.Allows("app.js") {
		t.Fatalf("app.js must not be allowed")
	}
}

func TestExtensionSetExactName(t *testing.T) {
	t.Parallel()

	e := NewExtensionSet([]string{".py", "Dockerfile"})

	if !e.Allows("Dockerfile") {
		t.Fatalf("exact filename member must be allowed")
	}

	if e.Allows("Makefile") {
		t.Fatalf("Makefile must not be allowed")
	}
}

func TestExtensionSetMatchAll(t *testing.T) {
	t.Parallel()

	e := NewExtensionSet([]string{"*"})

	if !e.MatchesAll() {
		t.Fatalf("MatchesAll must be true")
	}

	if !e.Allows("anything.weird") || !e.Allows("LICENSE") {
		t.Fatalf("* must allow every filename")
	}
}

func TestParseExtensionList(t *testing.T) {
	t.Parallel()

	e := ParseExtensionList(" .py , Dockerfile ,, .md ")

	if e.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", e.Len())
	}

	if !e.Allows("a.py") || !e.Allows("Dockerfile") || !e.Allows("b.md") {
		t.Fatalf("trimmed members must be allowed")
	}
}

func TestExtensionSetZeroValue(t *testing.T) {
	t.Parallel()

	var e ExtensionSet

	if e.Allows("a.py") {
		t.Fatalf("zero-value set must allow nothing")
	}
}
