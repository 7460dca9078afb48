// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"sort"
	"time"
)

// WeekBounds returns the Monday and Sunday of the week containing ref, as
// civil dates.
func WeekBounds(ref time.Time) (monday, sunday time.Time) {
	day := DateOf(ref)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday = day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// FilterToday keeps the events on ref's civil date.
func FilterToday(events []Event, ref time.Time) []Event {
	today := DateOf(ref)
	return filter(events, func(e Event) bool { return e.Date.Equal(today) })
}

// FilterWeek keeps the events in the Monday-Sunday week containing ref.
func FilterWeek(events []Event, ref time.Time) []Event {
	lo, hi := WeekBounds(ref)
	return filter(events, func(e Event) bool {
		return !e.Date.Before(lo) && !e.Date.After(hi)
	})
}

// DistinctDays returns the sorted set of dates that have events.
func DistinctDays(events []Event) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, e := range events {
		d := DateOf(e.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func filter(events []Event, keep func(Event) bool) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
