// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"

	"github.com/jeranaias/sched/internal/ui/text"
)

// =============================================================================
// INLINE DECORATIONS
// =============================================================================

// Colorize paints s in foreground color c.
func Colorize(s string, c Color) string {
	return c.Fg() + s + text.Reset
}

// Badge renders "[label]". With an empty hex the badge is unstyled;
// otherwise its background is the parsed color and its text the
// contrasting black or white.
func Badge(label, hex string) (string, error) {
	if hex == "" {
		return "[" + label + "]", nil
	}
	c, err := ParseHex(hex)
	if err != nil {
		return "", fmt.Errorf("badge %q: %w", label, err)
	}
	return c.Bg() + ContrastText(c).Fg() + "[" + label + "]" + text.Reset, nil
}

// Stripe is the two-cell colored block on the left edge of a card.
func Stripe(c Color) string {
	return c.Bg() + "  " + text.Reset
}

// Indicator is the one-cell colored square that leads a compact line.
func Indicator(c Color) string {
	return c.Fg() + "■" + text.Reset
}
