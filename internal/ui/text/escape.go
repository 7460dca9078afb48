// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import (
	"strings"

	"github.com/muesli/termenv"
)

// =============================================================================
// STYLE CONSTANTS
// =============================================================================

const (
	// Reset clears every active attribute and color.
	Reset = termenv.CSI + termenv.ResetSeq + "m"

	// Bold turns on bold (increased intensity).
	Bold = termenv.CSI + termenv.BoldSeq + "m"

	// Dim turns on faint (decreased intensity).
	Dim = termenv.CSI + termenv.FaintSeq + "m"
)

// =============================================================================
// ESCAPE SCANNER
// =============================================================================

// ScanEscape reports whether a complete control sequence starts at byte
// offset i of s and returns it.
//
// A sequence is ESC, '[', any parameter bytes (digits, ';', '?'), any
// intermediate bytes (0x20-0x2F) and exactly one final byte (0x40-0x7E).
// If the input ends before the final byte, or a byte outside these classes
// shows up first, there is no match and the ESC is an ordinary character.
func ScanEscape(s string, i int) (string, bool) {
	if i < 0 || i+1 >= len(s) || rune(s[i]) != termenv.ESC || s[i+1] != '[' {
		return "", false
	}

	j := i + 2
	for j < len(s) && isParamByte(s[j]) {
		j++
	}
	for j < len(s) && isIntermediateByte(s[j]) {
		j++
	}
	if j < len(s) && isFinalByte(s[j]) {
		return s[i : j+1], true
	}
	return "", false
}

// Strip removes every control sequence matched by ScanEscape from s.
// Unmatched ESC bytes are left in place.
func Strip(s string) string {
	if strings.IndexByte(s, byte(termenv.ESC)) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if seq, ok := ScanEscape(s, i); ok {
			i += len(seq)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isParamByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == ';' || c == '?'
}

func isIntermediateByte(c byte) bool {
	return c >= 0x20 && c <= 0x2F
}

func isFinalByte(c byte) bool {
	return c >= 0x40 && c <= 0x7E
}
