package util

import "time"

// StartOfMonth returns the first instant of t's calendar month in UTC.
// Monthly trend buckets are keyed by it.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
