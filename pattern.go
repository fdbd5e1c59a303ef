// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// compiledRule is the rule-set-internal compiled representation of one rule.
type compiledRule struct {
	// source is the original source rule.
	source Rule
	// pattern is the normalized pattern without anchoring "/" affixes.
	pattern string
	// dirOnly means the source pattern ends with "/" and matches a
	// directory plus everything below it.
	dirOnly bool
	// hasSlash means the pattern addresses a full relative path; slash-free
	// patterns additionally match against the candidate basename.
	hasSlash bool
	// literal means the pattern failed glob validation and is matched as a
	// verbatim string instead.
	literal bool
}

// compileRule compiles one source rule. Compilation never fails: a pattern
// that is not a valid glob degrades to literal string matching.
func compileRule(rule Rule) compiledRule {
	pattern := normalizePattern(rule.Pattern)

	cr := compiledRule{source: rule}

	cr.dirOnly = strings.HasSuffix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")

	anchored := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")

	// A slash anywhere (or an explicit leading "/") pins the pattern to the
	// full path from the scan root and disables basename matching.
	cr.hasSlash = strings.Contains(pattern, "/") || anchored
	cr.pattern = pattern
	cr.literal = !doublestar.ValidatePattern(pattern)

	return cr
}

// matches reports whether the compiled rule matches a normalized candidate.
func (r *compiledRule) matches(candidate string, isDir bool) bool {
	if r.pattern == "" || candidate == "" {
		return false
	}

	if r.dirOnly {
		return r.matchesDir(candidate, isDir)
	}

	if r.matchGlob(candidate) {
		return true
	}

	return !r.hasSlash && r.matchGlob(pathBase(candidate))
}

// matchesDir matches a directory-only rule: the directory itself (when the
// candidate is directory-shaped) or any descendant of a matched directory
// prefix. Matching is anchored at the scan root.
func (r *compiledRule) matchesDir(candidate string, isDir bool) bool {
	if isDir && r.matchGlob(candidate) {
		return true
	}

	for i := 0; i < len(candidate); i++ {
		if candidate[i] != '/' {
			continue
		}

		if r.matchGlob(candidate[:i]) {
			return true
		}
	}

	return false
}

// matchGlob matches the pattern against one candidate string.
func (r *compiledRule) matchGlob(candidate string) bool {
	if r.literal {
		return candidate == r.pattern
	}

	ok, err := doublestar.Match(r.pattern, candidate)
	if err != nil {
		// Unreachable after ValidatePattern, kept as a literal fallback.
		return candidate == r.pattern
	}

	return ok
}
