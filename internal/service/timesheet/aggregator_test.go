package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
)

var testWeekStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

// weekOf builds five chronological snapshots with the given paid minutes.
func weekOf(paid ...int) []*timesheet.DailySnapshot {
	days := make([]*timesheet.DailySnapshot, len(paid))
	for i, p := range paid {
		days[i] = &timesheet.DailySnapshot{
			WorkDate:    testWeekStart.AddDate(0, 0, i),
			PaidMinutes: p,
			Exceptions:  []timesheet.Exception{},
			Status:      timesheet.SnapshotStatusAuto,
		}
	}
	return days
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func newAggregatorUnderTest() *WeeklyAggregator {
	return NewWeeklyAggregator(NewLatestFirstOvertimePolicy(2640))
}

func TestWeeklyAggregator_NoOvertime(t *testing.T) {
	agg := newAggregatorUnderTest()
	days := weekOf(510, 510, 510, 510, 510)

	summary := agg.Aggregate(officeEmployee(), testWeekStart, days)

	assertDecimal(t, "42.5", summary.TotalPaidHours)
	assertDecimal(t, "42.5", summary.RegularHours)
	assertDecimal(t, "0", summary.OvertimeHours)
	assert.Equal(t, 0, summary.TotalExceptions)
	assert.Equal(t, timesheet.SummaryStatusDraft, summary.Status)
	assert.Equal(t, testWeekStart, summary.WeekStart)
	assert.Equal(t, testWeekStart.AddDate(0, 0, 6), summary.WeekEnd)

	for _, day := range days {
		assert.Equal(t, 0, day.OvertimeMinutes)
		assert.Empty(t, day.Exceptions)
	}
}

func TestWeeklyAggregator_OvertimeOnLastDay(t *testing.T) {
	agg := newAggregatorUnderTest()
	days := weekOf(540, 540, 540, 540, 540) // 2700 paid, 60 over

	summary := agg.Aggregate(officeEmployee(), testWeekStart, days)

	assertDecimal(t, "45", summary.TotalPaidHours)
	assertDecimal(t, "44", summary.RegularHours)
	assertDecimal(t, "1", summary.OvertimeHours)

	// Friday absorbs the full excess
	assert.Equal(t, 60, days[4].OvertimeMinutes)
	for _, day := range days[:4] {
		assert.Equal(t, 0, day.OvertimeMinutes)
		assert.Empty(t, day.Exceptions)
	}

	require.Len(t, days[4].Exceptions, 1)
	assert.Equal(t, timesheet.ExceptionOvertimeThreshold, days[4].Exceptions[0].Type)
	assert.Equal(t, 100, days[4].Exceptions[0].Confidence)
	assert.Equal(t, 1, summary.TotalExceptions)
}

func TestWeeklyAggregator_OvertimeSpansBackward(t *testing.T) {
	agg := newAggregatorUnderTest()
	days := weekOf(700, 700, 700, 700, 40) // 2840 paid, 200 over

	summary := agg.Aggregate(officeEmployee(), testWeekStart, days)

	assertDecimal(t, "3.33", summary.OvertimeHours)

	// Friday caps at its own 40 paid minutes, Thursday takes the rest
	assert.Equal(t, 40, days[4].OvertimeMinutes)
	assert.Equal(t, 160, days[3].OvertimeMinutes)
	assert.Equal(t, 0, days[2].OvertimeMinutes)

	assert.Len(t, days[4].Exceptions, 1)
	assert.Len(t, days[3].Exceptions, 1)
	assert.Empty(t, days[2].Exceptions)
	assert.Equal(t, 2, summary.TotalExceptions)
}

func TestWeeklyAggregator_ZeroPaidDaySkipped(t *testing.T) {
	agg := newAggregatorUnderTest()
	days := weekOf(700, 700, 700, 740, 0) // 2840 paid, 200 over, empty Friday

	summary := agg.Aggregate(officeEmployee(), testWeekStart, days)

	assert.Equal(t, 0, days[4].OvertimeMinutes)
	assert.Empty(t, days[4].Exceptions)
	assert.Equal(t, 200, days[3].OvertimeMinutes)
	assert.Equal(t, 1, summary.TotalExceptions)
}

func TestWeeklyAggregator_ThresholdExact(t *testing.T) {
	agg := newAggregatorUnderTest()
	days := weekOf(528, 528, 528, 528, 528) // exactly 2640

	summary := agg.Aggregate(officeEmployee(), testWeekStart, days)

	assertDecimal(t, "0", summary.OvertimeHours)
	assertDecimal(t, "44", summary.RegularHours)
	for _, day := range days {
		assert.Equal(t, 0, day.OvertimeMinutes)
	}
}

func TestWeeklyAggregator_CountsDailyExceptions(t *testing.T) {
	agg := newAggregatorUnderTest()
	days := weekOf(510, 510, 510, 510, 0)
	days[4].Exceptions = append(days[4].Exceptions, timesheet.Exception{
		Type:       timesheet.ExceptionMissingPunch,
		Message:    "no punches recorded for this date",
		Confidence: 95,
	})

	summary := agg.Aggregate(officeEmployee(), testWeekStart, days)

	assert.Equal(t, 1, summary.TotalExceptions)
	assertDecimal(t, "34", summary.TotalPaidHours)
}
