// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WeeklyRow is one entry of a weekly schedule.
type WeeklyRow struct {
	Weekday  int // 0 = Monday .. 6 = Sunday
	Start    string
	End      string
	Title    string
	Location string
	Tags     []string
}

var weekdayNames = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tues": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thur": 3, "thurs": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// ParseWeekday accepts a day name or abbreviation (any case), a number
// 0..6 with Monday as 0, or 7 for Sunday.
func ParseWeekday(s string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayNames[v]; ok {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 7 {
		return 0, ErrBadWeekday
	}
	if n == 7 {
		return 6, nil
	}
	return n, nil
}

// ParseWeeklyCSV reads a weekly schedule. Required columns are weekday,
// start and title. Rows are sorted by weekday, start, end and title.
func ParseWeeklyCSV(r io.Reader) ([]WeeklyRow, error) {
	records, err := readTable(r, weeklyColumns, true)
	if err != nil {
		return nil, err
	}

	rows := make([]WeeklyRow, 0, len(records))
	for _, rec := range records {
		raw := rec.get("weekday")
		wd, err := ParseWeekday(raw)
		if err != nil {
			return nil, &RowError{Line: rec.line, Field: "weekday", Value: raw, Err: err}
		}
		rows = append(rows, WeeklyRow{
			Weekday:  wd,
			Start:    rec.get("start"),
			End:      rec.get("end"),
			Title:    rec.get("title"),
			Location: rec.get("location"),
			Tags:     splitTags(rec.get("tags")),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Title < b.Title
	})
	return rows, nil
}

// ExpandWeekly places rows on the Monday-Sunday week containing ref.
func ExpandWeekly(rows []WeeklyRow, ref time.Time) []Event {
	monday, _ := WeekBounds(ref)

	events := make([]Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, Event{
			Date:     monday.AddDate(0, 0, r.Weekday),
			Start:    r.Start,
			End:      r.End,
			Title:    r.Title,
			Location: r.Location,
			Tags:     append([]string(nil), r.Tags...),
		})
	}

	SortEvents(events)
	return events
}
