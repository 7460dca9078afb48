// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Message styling for sched commands.
//
// Agendas carry their own truecolor sequences; these lipgloss styles only
// decorate the CLI's own messages (errors, warnings, config output).

package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// ErrorStyle is used for error messages. Red (#196).
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// WarningStyle is used for warnings. Yellow/Orange (#214).
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// SuccessStyle is used for confirmations. Green (#42).
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// DimStyle is used for hints and paths. Dim gray (#242).
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// SectionStyle is used for headings in config output.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)

// configureStyles points lipgloss at the chosen color profile.
// USABILITY: TTY detection for proper terminal handling
func configureStyles(profile termenv.Profile) {
	lipgloss.SetColorProfile(profile)
}
