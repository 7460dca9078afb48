// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/sched/internal/config"
	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
)

func TestExitCodeFor(t *testing.T) {
	_, colorErr := styles.ParseHex("12345")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"command", &CommandError{Command: "watch", Reason: "x"}, ExitGeneralError},
		{"validation", NewValidationError("--now", "x", "bad"), ExitUsageError},
		{"wrapped validation", fmt.Errorf("ctx: %w", NewValidationError("--tz", "", "bad")), ExitUsageError},
		{"config", &ConfigError{Err: errors.New("bad toml")}, ExitConfigError},
		{"config validation", fmt.Errorf("invalid config: %w", config.ValidateErrors{{Field: "display.width", Message: "neg"}}), ExitConfigError},
		{"config wins over color", &ConfigError{Err: colorErr}, ExitConfigError},
		{"missing columns", &schedule.MissingColumnsError{Columns: []string{"title"}}, ExitDataError},
		{"row", fmt.Errorf("a.csv: %w", &schedule.RowError{Line: 2, Field: "date", Err: errors.New("x")}), ExitDataError},
		{"weekday", schedule.ErrBadWeekday, ExitDataError},
		{"color", fmt.Errorf("event %q: %w", "X", colorErr), ExitDataError},
		{"not found", &NotFoundError{Resource: "schedule", ID: "a.csv"}, ExitNotFoundError},
		{"fs not exist", fmt.Errorf("open: %w", fs.ErrNotExist), ExitNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "watch failed: cannot watch files: boom",
		(&CommandError{Command: "watch", Reason: "cannot watch files", Err: errors.New("boom")}).Error())
	assert.Equal(t, "invalid --now: bad (got: x)\nExample: --now 2025-03-12T09:30",
		NewValidationErrorWithExample("--now", "x", "bad", "--now 2025-03-12T09:30").Error())
	assert.Equal(t, "config a.toml: boom", (&ConfigError{Path: "a.toml", Err: errors.New("boom")}).Error())
	assert.Equal(t, "palette not found: p.yaml", (&NotFoundError{Resource: "palette", ID: "p.yaml"}).Error())
}

func TestNotFoundOr(t *testing.T) {
	missing := fmt.Errorf("read: %w", fs.ErrNotExist)
	var nf *NotFoundError
	assert.ErrorAs(t, notFoundOr(missing, "palette", "p.yaml"), &nf)
	assert.Equal(t, "p.yaml", nf.ID)

	other := errors.New("parse error")
	assert.Same(t, other, notFoundOr(other, "palette", "p.yaml"))
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ExitSuccess, HandleError(&buf, nil))
	assert.Empty(t, buf.String())

	code := HandleError(&buf, &NotFoundError{Resource: "schedule", ID: "a.csv"})
	assert.Equal(t, ExitNotFoundError, code)
	assert.Contains(t, buf.String(), "schedule not found: a.csv")
}
