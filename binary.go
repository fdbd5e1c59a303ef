// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"bytes"
	"io"
	"os"
)

// binarySniffLen is how many leading bytes are sampled for binary detection.
const binarySniffLen = 1024

// LooksBinary reports whether the file content looks binary.
//
// This is a heuristic, not a guarantee: the first 1024 bytes are read and a
// NUL byte anywhere in that sample classifies the file as binary. A file
// that cannot be opened or read is classified as binary as well, so that
// unreadable content is excluded rather than risk garbling downstream
// output. Files that pass the check are still subject to text decoding at
// read time.
func LooksBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, binarySniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}

	return bytes.IndexByte(buf[:n], 0x00) >= 0
}
