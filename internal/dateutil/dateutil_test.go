package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	d := date(2024, time.March, 7)

	tests := []struct {
		layout Layout
		want   string
	}{
		{LayoutISO, "2024-03-07"},
		{LayoutEuropean, "07/03/2024"},
		{LayoutUS, "03-07-2024"},
		{Layout("YYYY/MM/DD"), "2024-03-07"},
		{Layout(""), "2024-03-07"},
	}
	for _, tc := range tests {
		t.Run(string(tc.layout), func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDate(d, tc.layout))
		})
	}
}

func TestFormatDate_UsesValueLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2024-12-31 20:00 UTC is already January 1st in Tokyo.
	instant := time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-12-31", FormatDate(instant, LayoutISO))
	assert.Equal(t, "2025-01-01", FormatDate(instant.In(tokyo), LayoutISO))
}

func TestDaysDifference(t *testing.T) {
	a := date(2024, time.January, 1)

	assert.Equal(t, 0, DaysDifference(a, a))
	assert.Equal(t, 1, DaysDifference(a, a.Add(24*time.Hour)))
	assert.Equal(t, 1, DaysDifference(a, a.Add(time.Millisecond)), "partial days round up")
	assert.Equal(t, 2, DaysDifference(a, a.Add(25*time.Hour)))
	assert.Equal(t, 31, DaysDifference(date(2024, time.February, 1), a), "order does not matter")
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2023))
}

func TestNow(t *testing.T) {
	before := time.Now().UnixMilli()
	got := Now()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 1), AddDays(date(2024, time.February, 28), 2))
	assert.Equal(t, date(2025, time.January, 1), AddDays(date(2024, time.December, 31), 1))
	assert.Equal(t, date(2023, time.December, 31), AddDays(date(2024, time.January, 1), -1))
	assert.Equal(t, 1, DaysDifference(date(2024, time.June, 10), AddDays(date(2024, time.June, 10), 1)))
}

func TestMonthBoundaries(t *testing.T) {
	mid := time.Date(2024, time.February, 15, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, date(2024, time.February, 1), FirstDayOfMonth(mid))
	assert.Equal(t, date(2024, time.February, 29), LastDayOfMonth(mid))
	assert.Equal(t, date(2023, time.February, 28), LastDayOfMonth(date(2023, time.February, 3)))
	assert.Equal(t, date(2024, time.December, 31), LastDayOfMonth(date(2024, time.December, 31)))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 7, DaysInWeek)
	assert.Equal(t, 12, MonthsInYear)
}
