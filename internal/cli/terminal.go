// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for sched output.
//
// USABILITY: TTY detection for proper terminal handling
//
// Agendas are drawn with truecolor sequences and sized to the terminal.
// When output is piped or NO_COLOR is set the same layout is written with
// every control sequence stripped.

package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsTTY reports whether stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

// TerminalWidth returns the column count of the terminal behind w, or
// fallback when w is not a terminal or its size is unknown.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(fdWriter)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorsEnabled decides whether styled output goes to w.
//
// Precedence: the --no-color flag, then NO_COLOR (any non-empty value, see
// https://no-color.org/), then FORCE_COLOR, then TTY detection.
func ColorsEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsTerminal(w)
}

// ColorProfile returns the termenv profile for w. Ascii means no colors.
func ColorProfile(w io.Writer, noColor bool) termenv.Profile {
	if !ColorsEnabled(w, noColor) {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		return termenv.NewOutput(f).EnvColorProfile()
	}
	// Forced colors on a pipe: agendas use 24-bit sequences anyway.
	return termenv.TrueColor
}
