// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/flatcode

package flatcode

import "errors"

// Sentinel errors for flatcode operations.
var (
	// ErrInvalidRoot indicates a scan root that is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid scan root")
	// ErrInvalidRulesFileName indicates an invalid per-directory rules file name.
	ErrInvalidRulesFileName = errors.New("invalid rules file name")
	// ErrNilYield indicates a nil yield callback passed to a streaming API.
	ErrNilYield = errors.New("yield callback is nil")
)
