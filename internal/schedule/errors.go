// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadWeekday is wrapped by RowError when a weekday cell is not
// recognized.
var ErrBadWeekday = errors.New("bad weekday value (use Mon..Sun, 0..6 or 7)")

// MissingColumnsError reports required header columns that are absent.
type MissingColumnsError struct {
	Columns []string // sorted
	Weekly  bool
}

func (e *MissingColumnsError) Error() string {
	mode := ""
	if e.Weekly {
		mode = " for weekly mode"
	}
	return fmt.Sprintf("missing required columns%s: %s", mode, strings.Join(e.Columns, ", "))
}

// RowError describes a cell that could not be parsed.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
