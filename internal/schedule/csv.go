// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// DateLayout is the layout of the date column.
const DateLayout = "2006-1-2"

var (
	datedColumns  = []string{"date", "start", "title"}
	weeklyColumns = []string{"weekday", "start", "title"}
)

// =============================================================================
// TABLE READING
// =============================================================================

// record is one data row keyed by normalized column name.
type record struct {
	line   int
	fields map[string]string
}

func (r record) get(col string) string {
	return strings.TrimSpace(r.fields[col])
}

// normalizeHeader trims and lower-cases a header cell. A UTF-8 BOM on the
// first cell is dropped.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

// readHeader returns the normalized header row. An empty input has an empty
// header.
func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	for i, h := range header {
		header[i] = normalizeHeader(h)
	}
	return header, nil
}

// readTable reads every non-blank row of r after checking that the header
// holds the required columns.
func readTable(r io.Reader, required []string, weekly bool) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	if missing := missingColumns(header, required); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing, Weekly: weekly}
	}

	var records []record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		rec := record{line: line, fields: make(map[string]string, len(header))}
		blank := true
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
			if i < len(header) {
				if _, seen := rec.fields[header[i]]; !seen {
					rec.fields[header[i]] = cell
				}
			}
		}
		if blank {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func missingColumns(header, required []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, col := range required {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}

// =============================================================================
// DATED SCHEDULES
// =============================================================================

// ParseCSV reads a dated schedule. Required columns are date, start and
// title; end, location and tags are optional. Header names are matched
// case-insensitively. Blank rows are skipped. The result is sorted.
func ParseCSV(r io.Reader) ([]Event, error) {
	records, err := readTable(r, datedColumns, false)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(records))
	for _, rec := range records {
		raw := rec.get("date")
		date, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, &RowError{Line: rec.line, Field: "date", Value: raw, Err: err}
		}
		events = append(events, Event{
			Date:     date,
			Start:    rec.get("start"),
			End:      rec.get("end"),
			Title:    rec.get("title"),
			Location: rec.get("location"),
			Tags:     splitTags(rec.get("tags")),
		})
	}

	SortEvents(events)
	return events, nil
}
