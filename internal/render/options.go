// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"

	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
)

// NowBadgeColor is the background of the badge marking the current event.
const NowBadgeColor = "#fabd2f"

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 90

// Options carries the shared inputs of every renderer.
type Options struct {
	Width   int // terminal columns
	Theme   styles.Theme
	Palette styles.Palette
}

// tagBadges renders one badge per tag, joined by a single space. Tags
// without a palette entry get a plain badge.
func tagBadges(tags []string, p styles.Palette) (string, error) {
	badges := make([]string, 0, len(tags))
	for _, tag := range tags {
		b, err := styles.Badge(tag, p[tag])
		if err != nil {
			return "", err
		}
		badges = append(badges, b)
	}
	return strings.Join(badges, " "), nil
}

// eventColor is the stripe/indicator color for e.
func eventColor(e schedule.Event, opts Options) (styles.Color, error) {
	c, err := styles.ResolveTagColor(e.Tags, opts.Palette, opts.Theme)
	if err != nil {
		return styles.Color{}, fmt.Errorf("event %q: %w", e.Title, err)
	}
	return c, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
