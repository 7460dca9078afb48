// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME IDS
// =============================================================================

// ThemeID names one of the built-in themes.
type ThemeID int

const (
	// ThemeDark is the default theme.
	ThemeDark ThemeID = iota
	// ThemeGruvbox is the gruvbox dark variant.
	ThemeGruvbox
)

// String returns the canonical theme name.
func (id ThemeID) String() string {
	switch id {
	case ThemeGruvbox:
		return "gruvbox"
	default:
		return "dark"
	}
}

// ThemeByName resolves a user-supplied theme name. Matching is
// case-insensitive. The second result is false when name was not
// recognized and the dark theme was substituted.
func ThemeByName(name string) (ThemeID, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gruvbox", "gruvbox-dark", "gruvboxd":
		return ThemeGruvbox, true
	case "dark", "":
		return ThemeDark, true
	default:
		return ThemeDark, false
	}
}

// Theme returns the immutable color table for id.
func (id ThemeID) Theme() Theme {
	if id == ThemeGruvbox {
		return gruvboxTheme
	}
	return darkTheme
}

// =============================================================================
// ROLES
// =============================================================================

// Role is a semantic slot in a theme.
type Role string

const (
	RoleFg             Role = "fg"
	RoleMuted          Role = "muted"
	RoleBorder         Role = "border"
	RoleRule           Role = "rule"
	RoleHighlight      Role = "highlight"
	RoleDim            Role = "dim"
	RoleStripeFallback Role = "stripe_fallback"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleFg, RoleMuted, RoleBorder, RoleRule, RoleHighlight, RoleDim, RoleStripeFallback,
}

// =============================================================================
// THEME
// =============================================================================

// Theme maps every Role to a Color.
type Theme struct {
	ID             ThemeID
	Fg             Color
	Muted          Color
	Border         Color
	Rule           Color
	Highlight      Color
	Dim            Color
	StripeFallback Color
}

// Color returns the color assigned to role. Unknown roles get Fg.
func (t Theme) Color(role Role) Color {
	switch role {
	case RoleMuted:
		return t.Muted
	case RoleBorder:
		return t.Border
	case RoleRule:
		return t.Rule
	case RoleHighlight:
		return t.Highlight
	case RoleDim:
		return t.Dim
	case RoleStripeFallback:
		return t.StripeFallback
	default:
		return t.Fg
	}
}

// Lipgloss returns role as a lipgloss color for styles built with
// lipgloss (status bars, CLI messages).
func (t Theme) Lipgloss(role Role) lipgloss.Color {
	return lipgloss.Color(t.Color(role).Hex())
}

var darkTheme = Theme{
	ID:             ThemeDark,
	Fg:             MustParseHex("#e6edf3"),
	Muted:          MustParseHex("#9aa7b3"),
	Border:         MustParseHex("#374151"),
	Rule:           MustParseHex("#4b5563"),
	Highlight:      MustParseHex("#f59e0b"),
	Dim:            MustParseHex("#9aa7b3"),
	StripeFallback: MustParseHex("#9aa7b3"),
}

var gruvboxTheme = Theme{
	ID:             ThemeGruvbox,
	Fg:             MustParseHex("#ebdbb2"),
	Muted:          MustParseHex("#928374"),
	Border:         MustParseHex("#3c3836"),
	Rule:           MustParseHex("#504945"),
	Highlight:      MustParseHex("#fabd2f"),
	Dim:            MustParseHex("#7c6f64"),
	StripeFallback: MustParseHex("#928374"),
}
