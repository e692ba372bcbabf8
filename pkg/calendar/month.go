package calendar

import (
	"fmt"
	"time"
)

const daysPerWeek = 7

// Month identifies a displayed year/month pair. It is transient view state,
// never persisted, and independent of the real current date.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev returns the preceding month, rolling January back to December of the
// previous year.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}

	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next returns the following month, rolling December forward to January of
// the next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}

	return Month{Year: m.Year, Month: m.Month + 1}
}

// Days returns the number of days in the month, accounting for leap years.
func (m Month) Days() int {
	// day 0 of the next month normalizes to the last day of this month
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns midnight UTC on the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DateKey returns the key for the given day of the month.
func (m Month) DateKey(day int) DateKey {
	return NewDateKey(time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC))
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// String formats the month for headers and logging, e.g. "January 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
