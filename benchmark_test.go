// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	benchRuleCount = 64
	benchPathCount = 512
)

var (
	benchBoolSink  bool
	benchCountSink int
)

func buildBenchmarkRules(n int) []Rule {
	rules := make([]Rule, 0, n)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			rules = append(rules, Rule{Pattern: fmt.Sprintf("*.ext%03d", i)})
		case 1:
			rules = append(rules, Rule{Pattern: fmt.Sprintf("dir%03d/", i)})
		case 2:
			rules = append(rules, Rule{Pattern: fmt.Sprintf("**/gen%03d/*.go", i)})
		default:
			rules = append(rules, Rule{Pattern: fmt.Sprintf("keep%03d.txt", i), Include: true})
		}
	}

	return rules
}

func buildBenchmarkPaths(n int) []string {
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		paths = append(paths, fmt.Sprintf("dir%03d/sub/file%03d.ext%03d", i%32, i, i%benchRuleCount))
	}

	return paths
}

func BenchmarkCompileRules(b *testing.B) {
	rules := buildBenchmarkRules(benchRuleCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := CompileRules(rules)
		if s.Len() == 0 {
			b.Fatal("empty rule set")
		}
	}
}

func BenchmarkRuleSetMatch(b *testing.B) {
	s := CompileRules(buildBenchmarkRules(benchRuleCount))
	paths := buildBenchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = s.Match(paths[i%len(paths)], false)
	}
}

func BenchmarkWalkPruned(b *testing.B) {
	root := b.TempDir()
	for d := 0; d < 8; d++ {
		dir := filepath.Join(root, fmt.Sprintf("src%d", d))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.Fatal(err)
		}

		for f := 0; f < 16; f++ {
			path := filepath.Join(dir, fmt.Sprintf("f%02d.go", f))
			if err := os.WriteFile(path, []byte("package x\n"), 0o600); err != nil {
				b.Fatal(err)
			}
		}
	}

	pruned := filepath.Join(root, "node_modules", "deep")
	if err := os.MkdirAll(pruned, 0o755); err != nil {
		b.Fatal(err)
	}

	w := NewWalker(WalkerOptions{Rules: CompileLines([]string{"node_modules/"})})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		err := w.Walk(ctx, root, func(_, _ string, d fs.DirEntry) error {
			if !d.IsDir() {
				count++
			}

			return nil
		})
		if err != nil {
			b.Fatal(err)
		}

		benchCountSink = count
	}
}
