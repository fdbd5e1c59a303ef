// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDocument assembles the combined context document: a snapshot header,
// the project tree diagram and one section per record, in record order.
// Callers pick the record order (typically largest first) before calling.
func WriteDocument(w io.Writer, root string, records []FileRecord, tree string) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("# --- flatcode: Project Context Snapshot --- #\n")
	fmt.Fprintf(bw, "# Root: %s\n", root)
	fmt.Fprintf(bw, "# Files: %d\n", len(records))
	fmt.Fprintf(bw, "# Est. Tokens: %d\n", TotalTokens(records))
	bw.WriteString("# --- Project Tree --- #\n")
	bw.WriteString(tree)
	bw.WriteString("# --- Start of Context --- #\n\n")

	for i := range records {
		fmt.Fprintf(bw, "--- File: %s ---\n\n", records[i].RelPath)
		bw.WriteString(records[i].Content)
		fmt.Fprintf(bw, "\n\n--- End: %s ---\n\n", records[i].RelPath)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}
