// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import (
	"sort"
	"strings"
)

// treeNode is one directory level of the rendered tree.
type treeNode map[string]treeNode

// RenderTree renders a box-drawing tree diagram from slash-separated
// relative file paths. Paths are sorted, so the diagram is deterministic
// regardless of input order.
func RenderTree(relPaths []string, rootName string) string {
	root := make(treeNode)
	for _, p := range relPaths {
		node := root
		for _, part := range strings.Split(p, "/") {
			if part == "" {
				continue
			}

			child, ok := node[part]
			if !ok {
				child = make(treeNode)
				node[part] = child
			}

			node = child
		}
	}

	var b strings.Builder
	b.WriteString(rootName)
	b.WriteString("/\n")
	renderTreeLevel(&b, root, "")

	return b.String()
}

// renderTreeLevel renders one tree level with its connector prefix.
func renderTreeLevel(b *strings.Builder, node treeNode, prefix string) {
	names := make([]string, 0, len(node))
	for name := range node {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		last := i == len(names)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(name)
		b.WriteByte('\n')

		if len(node[name]) > 0 {
			renderTreeLevel(b, node[name], childPrefix)
		}
	}
}
