// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules parses gitignore-like rules from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "!" creates an inclusion (override) rule on the remainder
// - any other non-empty line creates an exclusion rule
// - a trailing "/" is kept as part of the pattern text
// - "\#" and "\!" escape leading comment/negation tokens
//
// Rule order is preserved exactly as read.
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		include := false
		if strings.HasPrefix(line, "!") {
			include = true
			line = strings.TrimSpace(line[1:])
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		if line == "" {
			continue
		}

		rules = append(rules, Rule{
			Pattern: line,
			Include: include,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// ParseLines parses rules from pre-split lines.
// Line read errors cannot occur, so no error is returned.
func ParseLines(lines []string) []Rule {
	rules, _ := ParseRulesString(strings.Join(lines, "\n"))
	return rules
}
