// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

// MergeRules merges rule slices preserving input order.
//
// Later slices take final precedence under last-match-wins, which is how
// callers append programmatic extra patterns (for example the tool's own
// output filename) after file-derived rules.
func MergeRules(ruleSets ...[]Rule) []Rule {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	out := make([]Rule, 0, total)
	for _, set := range ruleSets {
		out = append(out, set...)
	}

	return out
}

// ExcludePatterns converts plain pattern strings to exclusion rules.
func ExcludePatterns(patterns ...string) []Rule {
	rules := make([]Rule, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		rules = append(rules, Rule{Pattern: pattern})
	}

	return rules
}
