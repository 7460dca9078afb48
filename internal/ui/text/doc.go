// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package text measures and lays out terminal strings that carry embedded
styling sequences.

Strings handled here are "styled strings": ordinary UTF-8 text interleaved
with CSI runs such as "\x1b[1m" or "\x1b[38;2;255;0;0m". A run occupies no
columns and is never split by any function in this package.

# Width Model

Every rune is classified on its own (no grapheme clustering):

	combining mark (ccc != 0)   0 columns
	format character (Cf)       0 columns
	East Asian Wide/Fullwidth   2 columns
	everything else             1 column

Ambiguous-width characters count as narrow, which is what most terminals do.

# Layout

	Width(s)       visible columns of s
	Truncate(s, w) longest prefix of s that fits in w columns, plus Reset
	Wrap(s, w)     greedy character wrap into lines of at most w columns
	Pad(s, w)      s padded with spaces (or truncated) to exactly w columns

Every result that could leave a style open ends with Reset so the next
thing printed starts clean.

# Usage

	line := text.Pad(text.Bold+"Lecture"+text.Reset, 20)
	for _, l := range text.Wrap(title, 30) {
		fmt.Println(l)
	}
*/
package text
