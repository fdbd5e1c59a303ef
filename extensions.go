// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"path/filepath"
	"strings"
)

// MatchAllExtensions is the sentinel value that disables extension filtering.
const MatchAllExtensions = "*"

// ExtensionSet is an immutable allow-list of file suffixes and exact
// filenames.
//
// Accepted member forms:
//   - ".py" — dotted suffix
//   - "Dockerfile" — exact filename
//   - "*" — match every file regardless of suffix
type ExtensionSet struct {
	names map[string]struct{}
	all   bool
}

// NewExtensionSet builds an extension set from raw values.
// Empty values are skipped; "*" anywhere makes the set match all files.
func NewExtensionSet(values []string) ExtensionSet {
	names := make(map[string]struct{}, len(values))
	all := false

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if v == MatchAllExtensions {
			all = true
			continue
		}

		names[v] = struct{}{}
	}

	return ExtensionSet{names: names, all: all}
}

// ParseExtensionList builds an extension set from a comma-separated list.
func ParseExtensionList(list string) ExtensionSet {
	return NewExtensionSet(strings.Split(list, ","))
}

// Allows reports whether a file with the given basename passes the set:
// either its suffix or its exact name is a member, or the set matches all.
func (e ExtensionSet) Allows(name string) bool {
	if e.all {
		return true
	}

	if _, ok := e.names[filepath.Ext(name)]; ok {
		return true
	}

	_, ok := e.names[name]
	return ok
}

// MatchesAll reports whether the set contains the "*" sentinel.
func (e ExtensionSet) MatchesAll() bool {
	return e.all
}

// Len returns the number of explicit members, sentinel excluded.
func (e ExtensionSet) Len() int {
	return len(e.names)
}
