// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}

	return path
}

func TestLooksBinaryNulByte(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "bin.dat", []byte("PNG\x00HEADER"))

	if !LooksBinary(path) {
		t.Fatalf("file with NUL in sample must look binary")
	}
}

func TestLooksBinaryPlainText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "text.txt", []byte("hello\nworld\n"))

	if LooksBinary(path) {
		t.Fatalf("plain text must not look binary")
	}
}

func TestLooksBinaryEmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "empty.txt", nil)

	if LooksBinary(path) {
		t.Fatalf("empty file must not look binary")
	}
}

func TestLooksBinaryMissingFile(t *testing.T) {
	t.Parallel()

	if !LooksBinary(filepath.Join(t.TempDir(), "gone.txt")) {
		t.Fatalf("unreadable file must fail safe as binary")
	}
}

func TestLooksBinarySampleWindow(t *testing.T) {
	t.Parallel()

	// NUL beyond the sampled prefix is not seen by the heuristic.
	content := append(bytes.Repeat([]byte{'a'}, binarySniffLen), 0x00)
	dir := t.TempDir()
	path := writeTestFile(t, dir, "late-nul.txt", content)

	if LooksBinary(path) {
		t.Fatalf("NUL outside the %d-byte sample must not classify as binary", binarySniffLen)
	}
}
