package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrWeekStartNotMonday = errors.New("week_start must be a Monday")
	ErrSummaryNotFound    = errors.New("weekly summary not found")
	ErrSnapshotNotFound   = errors.New("daily snapshot not found")
)
