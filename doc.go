// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

/*
Package flatcode flattens a project directory tree into a single LLM-friendly
context document.

The package is built around a gitignore-like rule engine and a pruning
directory walker: rules decide which paths are excluded, the walker never
descends into an excluded subtree, and the scanner reads the surviving text
files and yields immutable records for downstream assembly.

Basic flow:
  - bootstrap or load the rules file (`BootstrapRulesFile` / `LoadRulesFile`)
  - compile rules into a rule set (`CompileRules` / `CompileLines`)
  - create a scanner with extensions and a token measurer (`NewScanner`)
  - stream accepted files (`Scan` / `ScanAll`)
  - render the tree diagram and write the combined document
    (`RenderTree`, `WriteDocument`)

Rule semantics follow the familiar ignore-file model: blank lines and "#"
comments are skipped, "!" negates, a trailing "/" restricts a pattern to a
directory and its descendants, and the last matching rule wins. Paths with no
matching rule are not ignored. Globs use the segment-aware dialect with "**"
support; a pattern that fails to compile as a glob degrades to a literal
string instead of aborting compilation.

Per-directory rule files are supported through `RuleChain`: rule files found
deeper in the tree override rules from shallower directories, and compiled
per-directory rule sets are cached so repeated walks do not recompile them.
*/
package flatcode
