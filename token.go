// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import "unicode/utf8"

// tokenCharRatio approximates how many text characters map to one LLM token.
const tokenCharRatio = 4

// EstimateTokens is the default Measurer: a character-count heuristic
// approximating LLM tokenizer output at roughly four characters per token.
// It is an estimate for budgeting and ranking, not an exact token count.
func EstimateTokens(content string) int {
	if content == "" {
		return 0
	}

	n := utf8.RuneCountInString(content) / tokenCharRatio
	if n == 0 {
		return 1
	}

	return n
}
