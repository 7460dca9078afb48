// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// Loaded is the result of Load.
type Loaded struct {
	Events []Event
	Weekly bool // the file was a weekly schedule expanded onto ref's week
}

// IsWeekly reports whether a header describes a weekly schedule: it has a
// weekday column and no date column.
func IsWeekly(header []string) bool {
	var hasWeekday, hasDate bool
	for _, h := range header {
		switch normalizeHeader(h) {
		case "weekday":
			hasWeekday = true
		case "date":
			hasDate = true
		}
	}
	return hasWeekday && !hasDate
}

// Load reads the schedule at path. Weekly schedules are expanded onto the
// week containing ref.
func Load(path string, ref time.Time) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	loaded, err := Read(bytes.NewReader(data), ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

// Read is Load for an in-memory reader.
func Read(r io.ReadSeeker, ref time.Time) (*Loaded, error) {
	header, err := readHeader(csv.NewReader(r))
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if IsWeekly(header) {
		rows, err := ParseWeeklyCSV(r)
		if err != nil {
			return nil, err
		}
		return &Loaded{Events: ExpandWeekly(rows, ref), Weekly: true}, nil
	}

	events, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	return &Loaded{Events: events}, nil
}
