// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// UNICODE: Width is classified per rune, not per grapheme cluster.
// Combining marks and format characters ride on the cell of the rune
// before them, so they contribute nothing on their own.

// RuneWidth returns the number of terminal columns r occupies: 0, 1 or 2.
func RuneWidth(r rune) int {
	if r < utf8.RuneSelf {
		// C0 controls (ESC included) are neither combining nor Cf.
		return 1
	}
	if isCombining(r) {
		return 0
	}
	if unicode.Is(unicode.Cf, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	// Ambiguous counts as narrow, like most terminals.
	return 1
}

// Width returns the visible width of s in columns, ignoring control
// sequences.
func Width(s string) int {
	w := 0
	for _, r := range Strip(s) {
		w += RuneWidth(r)
	}
	return w
}

// isCombining reports whether r has a non-zero canonical combining class.
func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}
