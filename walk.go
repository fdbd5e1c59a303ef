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
)

// WalkFunc receives one un-pruned directory entry. relPath is slash-separated
// and relative to the scan root. Returning an error aborts the walk.
type WalkFunc func(absPath, relPath string, d fs.DirEntry) error

// WalkerOptions configures a Walker.
type WalkerOptions struct {
	// Rules is the base rule set consulted for every entry. Nil means no
	// base rules.
	Rules *RuleSet
	// Chain enables per-directory rules files found during the walk.
	Chain *RuleChain
	// Warn receives non-fatal diagnostics for entries skipped due to
	// filesystem errors. Nil silences them.
	Warn WarnFunc
}

// Walker traverses a directory tree top-down and prunes excluded subtrees.
//
// Before descending into a child directory the walker evaluates the rule
// verdict for it; an excluded directory is skipped entirely, so none of its
// descendants incur any filesystem calls. Files with an ignore verdict are
// not emitted either. Each Walk call is an independent traversal; sibling
// ordering is not part of the contract.
type Walker struct {
	rules *RuleSet
	chain *RuleChain
	warn  WarnFunc

	// readDir is the directory listing function, replaceable in tests to
	// instrument traversal.
	readDir func(dir string) ([]fs.DirEntry, error)
}

// NewWalker creates a walker.
func NewWalker(opts WalkerOptions) *Walker {
	return &Walker{
		rules:   opts.Rules,
		chain:   opts.Chain,
		warn:    opts.Warn,
		readDir: os.ReadDir,
	}
}

// Walk traverses the tree rooted at root and calls fn for every un-pruned
// entry, directories included.
//
// A root that does not exist or is not a directory fails with ErrInvalidRoot
// before any traversal. Unreadable directories are reported through the
// warning callback and skipped; they never abort the walk. Cancellation is
// checked between directory entries.
func (w *Walker) Walk(ctx context.Context, root string, fn WalkFunc) error {
	if fn == nil {
		return ErrNilYield
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	return w.walkDir(ctx, absRoot, "", nil, fn)
}

// walkDir traverses one directory level.
func (w *Walker) walkDir(ctx context.Context, absDir, relDir string, scopes []scopedRules, fn WalkFunc) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if w.chain != nil {
		local, err := w.chain.load(absDir)
		if err != nil {
			w.warnf(relDir, err)
		} else if local != nil && local.Len() > 0 {
			scopes = append(scopes[:len(scopes):len(scopes)], scopedRules{
				rules:  local,
				prefix: relDir,
			})
		}
	}

	entries, err := w.readDir(absDir)
	if err != nil {
		w.warnf(relDir, err)
		return nil
	}

	for _, e := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel := joinRel(relDir, e.Name())
		abs := filepath.Join(absDir, e.Name())

		if e.IsDir() {
			if decide(w.rules, scopes, rel, true) {
				continue
			}

			if err := fn(abs, rel, e); err != nil {
				return err
			}

			if err := w.walkDir(ctx, abs, rel, scopes, fn); err != nil {
				return err
			}

			continue
		}

		// Devices, sockets and pipes are skipped; symlinks pass through and
		// are resolved (or rejected) when the file is actually opened.
		if !e.Type().IsRegular() && e.Type()&fs.ModeSymlink == 0 {
			continue
		}

		if decide(w.rules, scopes, rel, false) {
			continue
		}

		if err := fn(abs, rel, e); err != nil {
			return err
		}
	}

	return nil
}

// warnf reports one non-fatal walk diagnostic.
func (w *Walker) warnf(relPath string, err error) {
	if w.warn == nil {
		return
	}

	w.warn(relPath, err)
}

// joinRel joins slash-separated relative path parts.
func joinRel(dir, name string) string {
	if dir == "" {
		return name
	}

	return dir + "/" + name
}
