// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
	"github.com/jeranaias/sched/internal/ui/text"
)

// Compact line geometry.
const (
	CompactMinWidth = 50
	CompactMaxWidth = 140

	compactLocationWidth = 7
	compactTitleWidth    = 26
)

// RenderCompactLine draws e on a single line no wider than the clamped
// terminal width.
func RenderCompactLine(e schedule.Event, status schedule.Status, opts Options) (string, error) {
	cols := clamp(opts.Width, CompactMinWidth, CompactMaxWidth)

	c, err := eventColor(e, opts)
	if err != nil {
		return "", err
	}

	title := text.Bold + e.Title + text.Reset
	if status == schedule.StatusCurrent {
		title = styles.Colorize("-> ", opts.Theme.Highlight) + title
	}

	badges, err := tagBadges(e.Tags, opts.Palette)
	if err != nil {
		return "", err
	}

	parts := []string{styles.Indicator(c), e.Times("-")}
	if e.Location != "" {
		parts = append(parts, text.Pad(text.Dim+e.Location+text.Reset, compactLocationWidth))
	}
	parts = append(parts, text.Pad(title, compactTitleWidth))
	if badges != "" {
		parts = append(parts, badges)
	}

	return text.Truncate(strings.Join(parts, "  "), cols), nil
}
