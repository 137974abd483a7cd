package nutrition

import (
	"math"
	"time"
)

// DayBounds returns [start, end) for the calendar day containing now, in now's
// location. End is the next local midnight, so DST days are 23 or 25 hours long.
func DayBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// DailyLogs keeps the logs whose timestamp falls on the same local calendar day
// as now. Input order is preserved.
func DailyLogs(logs []MealLog, now time.Time) []MealLog {
	start, end := DayBounds(now)
	day := make([]MealLog, 0, len(logs))
	for _, l := range logs {
		if !l.Timestamp.Before(start) && l.Timestamp.Before(end) {
			day = append(day, l)
		}
	}
	return day
}

// SumTotals adds up the snapshot nutrients of logs. Empty input sums to zero.
func SumTotals(logs []MealLog) Totals {
	var t Totals
	for _, l := range logs {
		t.Calories += l.TotalCalories
		t.Protein += l.Protein
		t.Carbs += l.Carbs
		t.Fat += l.Fat
	}
	return t
}

// Progress is the dashboard fill percentage, capped at 100. A non-positive
// target has no meaningful progress and reports 0.
func Progress(consumed, target int) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(float64(consumed) / float64(target) * 100))
	if p > 100 {
		return 100
	}
	return p
}
