// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"path"
	"strings"
)

// normalizePath normalizes a matching candidate to slash-separated relative
// clean form. Empty result means "no candidate".
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// normalizePattern normalizes a source pattern for compilation.
// Trailing "/" is preserved: it changes matching behavior.
func normalizePattern(raw string) string {
	raw = strings.TrimSpace(raw)
	return strings.ReplaceAll(raw, `\`, `/`)
}

// pathBase returns the final path component using slash separator.
func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}

	return p
}
