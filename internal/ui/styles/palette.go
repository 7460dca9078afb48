// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"sort"
)

// Palette maps tag names to hex colors.
type Palette map[string]string

var darkPalette = Palette{
	"Lecture":  "#0078D7",
	"Lab":      "#E83E8C",
	"Seminar":  "#17A2B8",
	"Exam":     "#DC3545",
	"Study":    "#28A745",
	"EE":       "#FD7E14",
	"Math":     "#6F42C1",
	"CS":       "#20C997",
	"Physics":  "#6610F2",
	"Advising": "#FFC107",
}

var gruvboxPalette = Palette{
	"Lecture": "#83a598",
	"Lab":     "#d3869b",
	"Seminar": "#8ec07c",
	"Study":   "#b8bb26",
	"Exam":    "#fb4934",
	"EE":      "#fe8019",
	"Math":    "#b16286",
	"CS":      "#8ec07c",
	"Physics": "#fabd2f",
}

// DefaultPalette returns a fresh copy of the built-in palette for id.
func DefaultPalette(id ThemeID) Palette {
	src := darkPalette
	if id == ThemeGruvbox {
		src = gruvboxPalette
	}
	return MergePalette(src)
}

// MergePalette layers palettes left to right; later entries win.
// The inputs are not modified.
func MergePalette(layers ...Palette) Palette {
	out := make(Palette)
	for _, layer := range layers {
		for tag, hex := range layer {
			out[tag] = hex
		}
	}
	return out
}

// TagColor returns the hex of the first tag, in list order, that p knows.
// Matching is exact.
func (p Palette) TagColor(tags []string) (string, bool) {
	for _, tag := range tags {
		if hex, ok := p[tag]; ok {
			return hex, true
		}
	}
	return "", false
}

// Tags returns the palette's tag names sorted.
func (p Palette) Tags() []string {
	tags := make([]string, 0, len(p))
	for tag := range p {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Validate parses every entry and returns the first failure.
func (p Palette) Validate() error {
	for _, tag := range p.Tags() {
		if _, err := ParseHex(p[tag]); err != nil {
			return fmt.Errorf("tag %q: %w", tag, err)
		}
	}
	return nil
}

// ResolveTagColor returns the color of the first palette tag in tags, or
// the theme's stripe fallback when none matches. A matching entry that is
// not valid hex is an error.
func ResolveTagColor(tags []string, p Palette, t Theme) (Color, error) {
	hex, ok := p.TagColor(tags)
	if !ok {
		return t.StripeFallback, nil
	}
	c, err := ParseHex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("tag color: %w", err)
	}
	return c, nil
}
