// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	t.Parallel()

	records := []FileRecord{
		{RelPath: "big.py", Content: "print('big')", Tokens: 30},
		{RelPath: "small.md", Content: "# small", Tokens: 10},
	}
	tree := RenderTree([]string{"big.py", "small.md"}, "proj")

	var b strings.Builder
	require.NoError(t, WriteDocument(&b, "/tmp/proj", records, tree))

	out := b.String()
	require.Contains(t, out, "# --- flatcode: Project Context Snapshot --- #")
	require.Contains(t, out, "# Root: /tmp/proj")
	require.Contains(t, out, "# Files: 2")
	require.Contains(t, out, "# Est. Tokens: 40")
	require.Contains(t, out, "└── small.md")
	require.Contains(t, out, "--- File: big.py ---")
	require.Contains(t, out, "print('big')")
	require.Contains(t, out, "--- End: small.md ---")

	// Records are written in caller order.
	require.Less(t, strings.Index(out, "--- File: big.py ---"), strings.Index(out, "--- File: small.md ---"))
}

func TestTotalTokens(t *testing.T) {
	t.Parallel()

	records := []FileRecord{{Tokens: 3}, {Tokens: 7}}
	require.Equal(t, 10, TotalTokens(records))
	require.Equal(t, 0, TotalTokens(nil))
}

func TestEstimateTokens(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, EstimateTokens(""))
	require.Equal(t, 1, EstimateTokens("ab"))
	require.Equal(t, 4, EstimateTokens(strings.Repeat("x", 16)))
}
