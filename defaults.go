// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

// DefaultRulesFileName is the rules file consulted at the scan root.
const DefaultRulesFileName = ".mergeignore"

// DefaultIgnorePatterns seed a newly created rules file when no .gitignore
// is available to copy from.
var DefaultIgnorePatterns = []string{
	"# Default ignore patterns",
	".git/",
	"node_modules/",
	"venv/",
	".venv/",
	"__pycache__/",
	"dist/",
	"build/",
	".vscode/",
	".idea/",
	".DS_Store",
	"*.log",
	"logs/",
	"*_context.txt",
}

// DefaultExtensions is the extension allow-list used when the caller
// supplies none.
var DefaultExtensions = []string{
	".py", ".js", ".ts", ".jsx", ".tsx",
	".html", ".css", ".scss",
	".md", ".json", ".toml", ".yaml", ".yml",
	".sh", ".bat",
	"Dockerfile", ".dockerfile",
	".go", ".mod",
}
