// Package dateutil formats and shifts calendar dates. All calendar fields are
// read in the location carried by the time value.
package dateutil

import (
	"fmt"
	"time"
)

// Calendar constants.
const (
	DaysInWeek   = 7
	MonthsInYear = 12
)

const millisPerDay = 1000 * 3600 * 24

// Layout selects one of the supported date formats.
type Layout string

// Supported layouts. Any other value formats as LayoutISO.
const (
	LayoutISO      Layout = "YYYY-MM-DD"
	LayoutEuropean Layout = "DD/MM/YYYY"
	LayoutUS       Layout = "MM-DD-YYYY"
)

// FormatDate renders the calendar date of t using layout. Month and day are
// zero-padded to two digits.
func FormatDate(t time.Time, layout Layout) string {
	year, month, day := t.Date()
	switch layout {
	case LayoutEuropean:
		return fmt.Sprintf("%02d/%02d/%d", day, int(month), year)
	case LayoutUS:
		return fmt.Sprintf("%02d-%02d-%d", int(month), day, year)
	default:
		return fmt.Sprintf("%d-%02d-%02d", year, int(month), day)
	}
}

// DaysDifference returns the absolute distance between a and b in days,
// rounded up to a whole day.
func DaysDifference(a, b time.Time) int {
	diff := b.UnixMilli() - a.UnixMilli()
	if diff < 0 {
		diff = -diff
	}
	return int((diff + millisPerDay - 1) / millisPerDay)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// Now returns the current time in epoch milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}

// AddDays returns t moved by n calendar days. Negative n moves backwards.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// FirstDayOfMonth returns midnight on the first day of t's month.
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth returns midnight on the last day of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
