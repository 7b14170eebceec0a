package stats

import "time"

// Bucket resolves the ISO-8601 week bucket for a timestamp. The ISO year
// is not always the calendar year: late-December dates can belong to week 1
// of the following year (e.g. 2024-12-30 is week 1 of 2025).
func Bucket(t time.Time) (week, year int) {
	year, week = t.ISOWeek()
	return week, year
}

// PreviousBucket resolves the ISO week bucket of the week that ended
// before t. Stepping back one full day from a Monday 00:00 boundary
// always lands in the prior ISO week.
func PreviousBucket(t time.Time) (week, year int) {
	return Bucket(t.AddDate(0, 0, -1))
}
