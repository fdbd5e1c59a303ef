// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

// Rule is one user-visible path rule.
type Rule struct {
	// Pattern is a gitignore-like pattern as read from the rules file,
	// without the leading "!" but with a trailing "/" preserved.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Include marks a negated ("!") rule that re-includes matching paths.
	Include bool `json:"include,omitempty" yaml:"include,omitempty"`
}

// FileRecord is one accepted scan result. Records are immutable: one record
// per accepted file, constructed at read time and never mutated afterward.
type FileRecord struct {
	// Path is the absolute file path.
	Path string `json:"path" yaml:"path"`
	// RelPath is the path relative to the scan root, slash-separated on
	// every platform.
	RelPath string `json:"rel_path" yaml:"rel_path"`
	// Content is the decoded UTF-8 text content.
	Content string `json:"content" yaml:"content"`
	// Tokens is the opaque size metric produced by the scanner's Measurer.
	Tokens int `json:"tokens" yaml:"tokens"`
}

// Measurer estimates a size metric for decoded file content.
// The scanner treats the result as opaque.
type Measurer func(content string) int

// WarnFunc receives non-fatal per-path diagnostics during a scan.
// Warnings never abort the scan.
type WarnFunc func(relPath string, err error)

// TotalTokens sums the size metric over records.
func TotalTokens(records []FileRecord) int {
	total := 0
	for i := range records {
		total += records[i].Tokens
	}

	return total
}
