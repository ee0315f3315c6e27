package service

import (
	"fmt"
	"time"

	"cardledger/internal/model"
)

// Gap bounds for the bill-to-due sanity check, in days.
const (
	minDueGapDays = 20
	maxDueGapDays = 25
)

// CycleDeriver computes billing-cycle keys and due dates from a card's
// anchor days. Pure computation, no I/O.
type CycleDeriver struct{}

// NewCycleDeriver creates a new cycle deriver.
func NewCycleDeriver() *CycleDeriver {
	return &CycleDeriver{}
}

// CurrentCycleKey returns the YYYY-MM key of the cycle that is current on
// the given day. Before the bill anchor day the statement for this month
// has not generated yet, so the current cycle is the previous month.
func (d *CycleDeriver) CurrentCycleKey(billDay int, today time.Time) string {
	year, month, day := today.Date()
	if day < billDay {
		month--
		if month < time.January {
			month = time.December
			year--
		}
	}
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DueDate returns the YYYY-MM-DD due date for a cycle. The due date falls
// in the cycle's month when the due anchor day is on or after the bill
// anchor day, otherwise in the following month. A due day that does not
// exist in the target month (29-31) is clamped to the month's last day.
func (d *CycleDeriver) DueDate(billDay, dueDay int, cycleKey string) (string, error) {
	cycleMonth, err := time.Parse(model.CycleDateLayout, cycleKey)
	if err != nil {
		return "", fmt.Errorf("parse cycle key %q: %w", cycleKey, err)
	}

	year, month, _ := cycleMonth.Date()
	if dueDay < billDay {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}

	day := dueDay
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(model.DueDateLayout), nil
}

// DueDateSanity returns a warning when the gap between bill and due anchor
// days falls outside the usual 20-25 day window, or an empty string when
// the pair looks normal. The gap uses a fixed 31-day month, so it is
// slightly off around February; it is advisory only and never blocks
// card creation.
func (d *CycleDeriver) DueDateSanity(billDay, dueDay int) string {
	gap := dueDay - billDay
	if dueDay <= billDay {
		gap = 31 - billDay + dueDay
	}

	switch {
	case gap < minDueGapDays:
		return fmt.Sprintf("%d days from bill to due date is short; most cards allow %d-%d days", gap, minDueGapDays, maxDueGapDays)
	case gap > maxDueGapDays:
		return fmt.Sprintf("%d days from bill to due date is unusually long; most due dates land %d-%d days after the bill", gap, minDueGapDays, maxDueGapDays)
	default:
		return ""
	}
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
