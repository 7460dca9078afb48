// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// =============================================================================
// COLOR
// =============================================================================

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Black and White are the two text colors ContrastText chooses between.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ErrInvalidColor is matched by every error ParseHex returns.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError describes a hex string that could not be parsed.
type InvalidColorError struct {
	Value  string
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidColor.
func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}

// ParseHex parses "#RGB", "RGB", "#RRGGBB" or "RRGGBB". Surrounding
// whitespace is ignored and at most one leading '#' is accepted. The short
// form doubles each digit.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, &InvalidColorError{Value: s, Reason: "expected 3 or 6 hex digits"}
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return Color{}, &InvalidColorError{Value: s, Reason: fmt.Sprintf("non-hex digit %q", h[i])}
		}
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, &InvalidColorError{Value: s, Reason: err.Error()}
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for built-in constants. It panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// Hex formats c as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Fg returns the truecolor foreground sequence for c.
func (c Color) Fg() string {
	return c.sequence(termenv.Foreground)
}

// Bg returns the truecolor background sequence for c.
func (c Color) Bg() string {
	return c.sequence(termenv.Background)
}

// sequence builds ESC[<layer>;2;R;G;Bm with exact channel values.
func (c Color) sequence(layer string) string {
	return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, layer, c.R, c.G, c.B)
}

// Luma returns the integer luma (299r + 587g + 114b) / 1000.
func (c Color) Luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// ContrastText returns Black for colors brighter than mid-grey and White
// otherwise. It is a binary threshold, not a perceptual contrast ratio.
func ContrastText(c Color) Color {
	if c.Luma() > 128 {
		return Black
	}
	return White
}
