// Package dateutil provides small calendar helpers shared by the
// calculators and their output layers.
package dateutil

import "time"

// AddMonths returns t advanced by n calendar months. Go's AddDate
// normalizes overflow, so Jan 31 + 1 month lands in early March rather
// than erroring.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// MonthsBetween returns the number of whole calendar months from a to b.
// Negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// StartOfMonth truncates t to midnight on the first of its month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
