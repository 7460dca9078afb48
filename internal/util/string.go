// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "github.com/mattn/go-runewidth"

// Ellipsis marks text cut by TruncateWidth.
const Ellipsis = "..."

// UNICODE: These helpers work on plain text only. Styled text goes through
// internal/ui/text, which understands control sequences.

// TruncateWidth cuts plain text to maxWidth terminal columns, ending it with
// an ellipsis when something was removed and there is room for one.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// FillRight pads plain text with spaces to exactly width columns, cutting
// it first when it is too wide.
func FillRight(s string, width int) string {
	return runewidth.FillRight(TruncateWidth(s, width), width)
}
