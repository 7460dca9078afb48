// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"

	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
	"github.com/jeranaias/sched/internal/ui/text"
)

// Card geometry.
const (
	CardMinWidth = 40
	CardMaxWidth = 100

	cardPadLeft = 1
	cardStripe  = 3 // two stripe cells and a separating space
)

// RenderCard draws e as a bordered card. The result has no trailing
// newline. When dimmed is set every line starts with text.Dim and the card
// ends with text.Reset.
func RenderCard(e schedule.Event, status schedule.Status, dimmed bool, opts Options) (string, error) {
	total := clamp(opts.Width, CardMinWidth, CardMaxWidth)
	inner := total - 2
	content := inner - cardPadLeft - cardStripe

	primary, err := eventColor(e, opts)
	if err != nil {
		return "", err
	}
	stripe := styles.Stripe(primary)

	borderColor := opts.Theme.Border
	if status == schedule.StatusCurrent {
		borderColor = opts.Theme.Highlight
	}
	border := func(s string) string { return styles.Colorize(s, borderColor) }

	line := func(txt string) string {
		return border("│") + strings.Repeat(" ", cardPadLeft) + stripe + " " + text.Pad(txt, content) + border("│")
	}

	title := "⏰ " + e.Times("–") + "  " + text.Bold + e.Title + text.Reset

	badges, err := tagBadges(e.Tags, opts.Palette)
	if err != nil {
		return "", err
	}
	if status == schedule.StatusCurrent {
		now, err := styles.Badge("NOW", NowBadgeColor)
		if err != nil {
			return "", err
		}
		if badges != "" {
			badges = now + "  " + badges
		} else {
			badges = now
		}
	}

	var meta []string
	if badges != "" {
		meta = append(meta, badges)
	}
	if e.Location != "" {
		meta = append(meta, text.Dim+"📍 "+e.Location+text.Reset)
	}

	var body []string
	body = append(body, text.Wrap(title, content)...)
	if len(meta) > 0 {
		body = append(body, text.Wrap(strings.Join(meta, "  "), content)...)
	}

	pre, post := "", ""
	if dimmed {
		pre, post = text.Dim, text.Reset
	}

	out := make([]string, 0, len(body)+2)
	out = append(out, pre+border("┌"+strings.Repeat("─", inner)+"┐"))
	for _, l := range body {
		out = append(out, pre+line(l))
	}
	out = append(out, pre+border("└"+strings.Repeat("─", inner)+"┘")+post)
	return strings.Join(out, "\n"), nil
}
