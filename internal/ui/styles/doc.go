// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the color system for sched output.

# Color Model (color.go)

Colors are parsed from hex strings and emitted as 24-bit SGR sequences:

	c, err := styles.ParseHex("#0078D7")
	fg := c.Fg() // ESC[38;2;0;120;215m
	bg := c.Bg() // ESC[48;2;0;120;215m

ParseHex accepts "#RGB", "RGB", "#RRGGBB" and "RRGGBB". Every failure
matches ErrInvalidColor via errors.Is.

ContrastText picks Black or White for text drawn on a colored background,
using integer luma with a fixed threshold of 128.

# Themes (theme.go)

Two built-in themes exist. Each maps the semantic roles below to a color:

	fg              - Body text and day headers
	muted           - Secondary text
	border          - Card borders
	rule            - Day separator rules
	highlight       - Card border and arrow for the current event
	dim             - Dimmed text
	stripe_fallback - Stripe color when no tag has a palette entry

ThemeByName maps "gruvbox", "gruvbox-dark" and "gruvboxd" to ThemeGruvbox.
Anything else selects ThemeDark.

# Palettes (palette.go)

A Palette maps tag names to hex colors. Layers are merged with
MergePalette, later layers winning:

	pal := styles.MergePalette(styles.DefaultPalette(id), fromFile, fromConfig)
	c, err := styles.ResolveTagColor(event.Tags, pal, id.Theme())

# Decorations (badge.go)

	Badge     - "[tag]" on the tag color, contrasting text
	Stripe    - Two-cell colored block at a card's left edge
	Indicator - Colored square leading a compact line
	Colorize  - Foreground-colored text

Every decoration ends with text.Reset.
*/
package styles
