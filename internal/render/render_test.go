// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"time"

	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
)

var wednesday = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

func darkOptions(width int) Options {
	return Options{
		Width:   width,
		Theme:   styles.ThemeDark.Theme(),
		Palette: styles.DefaultPalette(styles.ThemeDark),
	}
}

func signals() schedule.Event {
	return schedule.Event{
		Date:     wednesday,
		Start:    "09:00",
		End:      "10:30",
		Title:    "Signals",
		Location: "A1",
		Tags:     []string{"Lecture", "EE"},
	}
}

func clockAt(hh, mm int) time.Time {
	return time.Date(2025, time.March, 12, hh, mm, 0, 0, time.UTC)
}
