// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

// RuleSet evaluates ignore decisions against compiled ordered rules.
type RuleSet struct {
	compiled []compiledRule
}

// CompileRules compiles ordered rules into a rule set.
// Compilation never fails: malformed patterns degrade to literals.
func CompileRules(rules []Rule) *RuleSet {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		cr := compileRule(rule)
		if cr.pattern == "" {
			continue
		}

		compiled = append(compiled, cr)
	}

	return &RuleSet{compiled: compiled}
}

// CompileLines parses rule lines and compiles them into a rule set.
func CompileLines(lines []string) *RuleSet {
	return CompileRules(ParseLines(lines))
}

// Decide returns the ignore verdict for one path relative to the scan root.
//
// Decision policy:
// - rules are evaluated in input order and the last matching rule wins
// - a path with no matching rule is not ignored
//
// matched reports whether at least one rule matched; callers chaining
// several rule sets use it to let later sets override earlier ones only
// when they actually matched.
func (s *RuleSet) Decide(relPath string, isDir bool) (ignored, matched bool) {
	candidate := normalizePath(relPath)
	if candidate == "" {
		return false, false
	}

	for i := range s.compiled {
		if !s.compiled[i].matches(candidate, isDir) {
			continue
		}

		matched = true
		ignored = !s.compiled[i].source.Include
	}

	return ignored, matched
}

// Match reports whether the path is ignored by the rule set.
func (s *RuleSet) Match(relPath string, isDir bool) bool {
	ignored, _ := s.Decide(relPath, isDir)
	return ignored
}

// Len returns the number of compiled rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.compiled)
}
