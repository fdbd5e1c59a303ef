// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

// Command flatcode flattens a project tree into one LLM-friendly context
// document, honoring .mergeignore rules and an extension allow-list.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/woozymasta/flatcode"
)

const defaultOutputName = "merged_code_context.txt"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory may carry FLATCODE_* defaults.
	_ = godotenv.Load()

	output := flag.String("o", "", "output filename (default \""+defaultOutputName+"\")")
	extensions := flag.String("e", "", "comma-separated file extensions to include")
	yes := flag.Bool("y", false, "auto-confirm prompts")
	nested := flag.Bool("nested", false, "honor "+flatcode.DefaultRulesFileName+" files in subdirectories")
	flag.Parse()

	root := flag.Arg(0)
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	cfg, err := flatcode.LoadConfig(absRoot)
	if err != nil {
		return err
	}

	outputName := firstNonEmpty(*output, os.Getenv("FLATCODE_OUTPUT"), cfg.Output, defaultOutputName)
	extList := firstNonEmpty(
		*extensions,
		os.Getenv("FLATCODE_EXTENSIONS"),
		strings.Join(cfg.Extensions, ","),
		strings.Join(flatcode.DefaultExtensions, ","),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("--- flatcode ---")
	fmt.Printf("Scanning project: %s\n", absRoot)

	rulesPath, err := flatcode.BootstrapRulesFile(absRoot, outputName, flatcode.BootstrapOptions{
		Confirm: makeConfirm(*yes),
		Logf: func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		},
	})
	if err != nil {
		return err
	}

	rules, err := flatcode.LoadRulesFile(rulesPath)
	if err != nil {
		return err
	}

	// The output artifact itself must never be re-included by a later scan.
	ruleSet := flatcode.CompileRules(flatcode.MergeRules(
		rules,
		flatcode.ExcludePatterns(outputName, flatcode.ConfigFileName),
	))

	nestedName := ""
	if *nested || cfg.NestedRules {
		nestedName = flatcode.DefaultRulesFileName
	}

	scanner, err := flatcode.NewScanner(absRoot, flatcode.ScanOptions{
		Rules:      ruleSet,
		Extensions: flatcode.ParseExtensionList(extList),
		Warn: func(rel string, err error) {
			fmt.Fprintf(os.Stderr, "  > [Warning] Skipping %s (%v)\n", rel, err)
		},
		NestedRuleFile: nestedName,
		CacheSize:      cfg.CacheSize,
	})
	if err != nil {
		return err
	}

	records, err := scanner.ScanAll(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("\nScan complete. No matching files found to merge.")
		return nil
	}

	// Largest files first; ties break on path for stable output.
	sort.Slice(records, func(i, j int) bool {
		if records[i].Tokens != records[j].Tokens {
			return records[i].Tokens > records[j].Tokens
		}

		return records[i].RelPath < records[j].RelPath
	})

	printSummary(records)

	relPaths := make([]string, len(records))
	for i := range records {
		relPaths[i] = records[i].RelPath
	}
	tree := flatcode.RenderTree(relPaths, filepath.Base(absRoot))

	outputPath := filepath.Join(absRoot, outputName)
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := flatcode.WriteDocument(f, absRoot, records, tree); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	fmt.Printf("\nDone. Wrote %d files to %s\n", len(records), outputPath)
	return nil
}

// printSummary prints the largest-files table and scan totals.
func printSummary(records []flatcode.FileRecord) {
	const top = 10

	line := strings.Repeat("-", 70)

	fmt.Printf("\n--- Top %d Largest Files (Est. Tokens) ---\n", top)
	fmt.Println(line)
	fmt.Printf("%-5s | %-15s | %s\n", "Rank", "Tokens (Est.)", "File Path")
	fmt.Println(line)

	for i := 0; i < len(records) && i < top; i++ {
		fmt.Printf("%-5d | %-15d | %s\n", i+1, records[i].Tokens, records[i].RelPath)
	}

	fmt.Println(line)
	fmt.Printf("Total files to merge: %d\n", len(records))
	fmt.Printf("Total estimated tokens: %d\n", flatcode.TotalTokens(records))
	fmt.Println(line)
}

// makeConfirm builds the prompt callback: auto-yes with -y, interactive
// stdin prompt otherwise.
func makeConfirm(autoYes bool) func(string) bool {
	if autoYes {
		return func(string) bool { return true }
	}

	reader := bufio.NewReader(os.Stdin)
	return func(prompt string) bool {
		fmt.Printf("> %s (Y/n): ", prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			return true
		}

		return strings.ToLower(strings.TrimSpace(line)) != "n"
	}
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
