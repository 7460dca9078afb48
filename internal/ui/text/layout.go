// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import (
	"strings"
	"unicode/utf8"
)

// =============================================================================
// TRUNCATE
// =============================================================================

// Truncate cuts s to at most maxWidth visible columns.
//
// Control sequences are copied verbatim and cost nothing. Scanning stops at
// the first rune that does not fit, so anything after it (sequences
// included) is dropped. Reset is always appended so a style opened inside s
// cannot bleed into whatever is printed next.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return Reset
	}

	var b strings.Builder
	b.Grow(len(s) + len(Reset))

	w := 0
	for i := 0; i < len(s); {
		if seq, ok := ScanEscape(s, i); ok {
			b.WriteString(seq)
			i += len(seq)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := RuneWidth(r)
		if w+rw > maxWidth {
			break
		}
		b.WriteString(s[i : i+size])
		w += rw
		i += size
	}

	b.WriteString(Reset)
	return b.String()
}

// =============================================================================
// WRAP
// =============================================================================

// Wrap splits s into lines no wider than width columns.
//
// The split is greedy and per character: words are broken wherever the
// column budget runs out. An explicit '\n' always ends a line. Every line
// ends with Reset, and a style opened on one line is not re-opened on the
// next. A rune wider than width sits alone on its own line.
//
// With width <= 0 nothing fits, so each visible rune gets a line of its own
// and no line is within width. Callers that need the width bound must pass
// width >= 1.
//
// The result always holds at least one line; Wrap("", w) is a single line
// with no visible content.
func Wrap(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, cur.String()+Reset)
		cur.Reset()
		curWidth = 0
	}

	for i := 0; i < len(s); {
		if seq, ok := ScanEscape(s, i); ok {
			cur.WriteString(seq)
			i += len(seq)
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '\n' {
			flush()
			i += size
			continue
		}

		rw := RuneWidth(r)
		if rw > 0 && curWidth > 0 && curWidth+rw > width {
			flush()
		}
		cur.WriteString(s[i : i+size])
		curWidth += rw
		i += size
	}

	if cur.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// =============================================================================
// PAD
// =============================================================================

// Pad returns s occupying exactly width columns: short strings get trailing
// spaces and a Reset, long ones are truncated.
func Pad(s string, width int) string {
	vis := Width(s)
	if vis < width {
		return s + strings.Repeat(" ", width-vis) + Reset
	}
	return Truncate(s, width)
}
