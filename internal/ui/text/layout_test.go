// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples mixes plain, styled, wide and combining input.
var samples = []string{
	"",
	"a",
	"Linear Algebra",
	"日本語のテキスト",
	"e\u0301te\u0301",
	Bold + "Quantum" + Reset + " Mechanics",
	"\x1b[48;2;0;120;215m\x1b[38;2;255;255;255m[Lecture]" + Reset + " [Lab]",
	"⏰ 09:00–10:30  " + Bold + "Signals & Systems" + Reset,
	"line one\nline two",
}

// =============================================================================
// TRUNCATE TESTS
// =============================================================================

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "abc", 5, "abc" + Reset},
		{"exact", "abc", 3, "abc" + Reset},
		{"cut", "abcdef", 4, "abcd" + Reset},
		{"zero width budget", "abc", 0, Reset},
		{"negative budget", Bold + "abc", -3, Reset},
		{"wide char does not fit", "a日b", 2, "a" + Reset},
		{"wide char fits", "a日b", 3, "a日" + Reset},
		{"keeps leading style", Bold + "abcdef", 2, Bold + "ab" + Reset},
		{"keeps interior style", "a" + Bold + "b" + Reset + "cd", 3, "a" + Bold + "b" + Reset + "c" + Reset},
		{"sequence before cut kept", "ab" + Bold + "cd", 2, "ab" + Bold + Reset},
		{"combining mark stays", "e\u0301x", 1, "e\u0301" + Reset},
		{"empty", "", 10, Reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.width))
		})
	}
}

func TestTruncate_Properties(t *testing.T) {
	for _, s := range samples {
		plain := Strip(s)
		for w := 0; w <= Width(s)+2; w++ {
			got := Truncate(s, w)

			require.True(t, strings.HasSuffix(got, Reset), "missing reset for %q/%d", s, w)
			assert.LessOrEqual(t, Width(got), w, "width of Truncate(%q, %d)", s, w)

			// Without styling, the result is the longest fitting prefix.
			if w > 0 {
				cut := strings.TrimSuffix(Truncate(plain, w), Reset)
				assert.True(t, strings.HasPrefix(plain, cut))
				if len(cut) < len(plain) {
					next := []rune(plain[len(cut):])[0]
					assert.Greater(t, Width(cut)+RuneWidth(next), w)
				}
			}
		}
	}
}

// =============================================================================
// WRAP TESTS
// =============================================================================

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{Reset}},
		{"fits", "abc", 10, []string{"abc" + Reset}},
		{"exact", "abcd", 4, []string{"abcd" + Reset}},
		{"breaks mid word", "abcdef", 4, []string{"abcd" + Reset, "ef" + Reset}},
		{"explicit newline", "ab\ncd", 10, []string{"ab" + Reset, "cd" + Reset}},
		{"trailing newline", "ab\n", 10, []string{"ab" + Reset}},
		{"only newline", "\n", 10, []string{Reset}},
		{"blank line kept", "a\n\nb", 10, []string{"a" + Reset, Reset, "b" + Reset}},
		{"wide char moves down", "abc日", 4, []string{"abc" + Reset, "日" + Reset}},
		{"too wide rune alone", "日本", 1, []string{"日" + Reset, "本" + Reset}},
		{
			"style not carried",
			Bold + "abcdef" + Reset, 3,
			[]string{Bold + "abc" + Reset, "def" + Reset + Reset},
		},
		{"style only", Bold + Reset, 5, []string{Bold + Reset + Reset}},
		{"combining mark stays on line", "abe\u0301", 3, []string{"abe\u0301" + Reset}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width))
		})
	}
}

func TestWrap_Properties(t *testing.T) {
	for _, s := range samples {
		for w := 2; w <= 20; w++ {
			lines := Wrap(s, w)
			require.NotEmpty(t, lines)

			var joined strings.Builder
			for _, line := range lines {
				require.True(t, strings.HasSuffix(line, Reset))
				assert.LessOrEqual(t, Width(line), w, "line %q of Wrap(%q, %d)", line, s, w)
				assert.Equal(t, ansi.Strip(line), Strip(line))
				joined.WriteString(Strip(line))
			}

			// Wrapping only removes the newlines it breaks on.
			assert.Equal(t, strings.ReplaceAll(Strip(s), "\n", ""), joined.String())
		}
	}
}

func TestWrap_NonPositiveWidthSplitsEveryRune(t *testing.T) {
	for _, w := range []int{0, -3} {
		assert.Equal(t, []string{"a" + Reset, "b" + Reset, "日" + Reset}, Wrap("ab日", w))
	}
}

func TestWrap_EmptyIsOneBlankLine(t *testing.T) {
	for _, w := range []int{0, 1, 40} {
		lines := Wrap("", w)
		require.Len(t, lines, 1)
		assert.Equal(t, 0, Width(lines[0]))
	}
}

// =============================================================================
// PAD TESTS
// =============================================================================

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   "+Reset, Pad("ab", 5))
	assert.Equal(t, Bold+"ab"+Reset+"  "+Reset, Pad(Bold+"ab"+Reset, 4))
	assert.Equal(t, "日 "+Reset, Pad("日", 3))
	assert.Equal(t, "abc"+Reset, Pad("abc", 3))
	assert.Equal(t, "ab"+Reset, Pad("abcdef", 2))
}

func TestPad_Properties(t *testing.T) {
	for _, s := range samples {
		if strings.Contains(s, "\n") {
			continue
		}
		vis := Width(s)
		for w := 0; w <= vis+5; w++ {
			got := Pad(s, w)
			if w >= vis {
				assert.Equal(t, w, Width(got), "Pad(%q, %d)", s, w)
			} else {
				assert.Equal(t, Truncate(s, w), got)
			}
		}
	}
}
