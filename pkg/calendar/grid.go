package calendar

import "time"

// DayCell is one cell of the rendered month grid. Blank padding cells have
// Day == 0.
type DayCell struct {
	Day     int
	Key     DateKey
	IsToday bool
	// Logged distinguishes an unlogged day from any real Color value.
	Logged bool
	Color  Color
}

// Blank reports whether the cell is a leading or trailing padding cell.
func (c DayCell) Blank() bool {
	return c.Day == 0
}

// GridDescription is everything the presentation layer needs to draw one
// month: the cells in order, and the visibility and selection state of the
// color picker. It is derived from scratch on every render; there is no
// incremental update path.
type GridDescription struct {
	Month Month
	Cells []DayCell
	// PickerVisible is true only while the displayed month is the real
	// current month. Recording always targets today, so the picker is only
	// surfaced while today is in view.
	PickerVisible bool
	// Selected is today's logged color, if any, when the picker is visible.
	Selected    Color
	HasSelected bool
	WeekStart   time.Weekday
}

// BuildGrid derives the renderable grid for the given month from the mood
// log and the real current date. It is a pure function: equal inputs always
// produce equal grids.
func BuildGrid(month Month, log MoodLog, today time.Time, weekStart time.Weekday) GridDescription {
	grid := GridDescription{
		Month:     month,
		WeekStart: weekStart,
	}

	// leading blanks align day 1 under its weekday column
	leading := columnOf(month.First().Weekday(), weekStart)
	for i := 0; i < leading; i++ {
		grid.Cells = append(grid.Cells, DayCell{})
	}

	todayKey := NewDateKey(today)

	for day := 1; day <= month.Days(); day++ {
		key := month.DateKey(day)
		cell := DayCell{
			Day:     day,
			Key:     key,
			IsToday: key == todayKey,
		}

		if color, ok := log[key]; ok {
			cell.Logged = true
			cell.Color = color
		}

		grid.Cells = append(grid.Cells, cell)
	}

	if month.Contains(today) {
		grid.PickerVisible = true

		if color, ok := log[todayKey]; ok {
			grid.Selected = color
			grid.HasSelected = true
		}
	}

	return grid
}

// Weeks returns the cells chunked into rows of seven, the last row padded
// with trailing blanks.
func (g GridDescription) Weeks() [][]DayCell {
	weeks := [][]DayCell{}

	for start := 0; start < len(g.Cells); start += daysPerWeek {
		week := make([]DayCell, daysPerWeek)

		for col := 0; col < daysPerWeek; col++ {
			if start+col < len(g.Cells) {
				week[col] = g.Cells[start+col]
			}
		}

		weeks = append(weeks, week)
	}

	return weeks
}

// Weekdays returns the seven weekday headings starting from the configured
// first day of the week.
func (g GridDescription) Weekdays() []time.Weekday {
	days := make([]time.Weekday, daysPerWeek)
	for col := 0; col < daysPerWeek; col++ {
		days[col] = time.Weekday((int(g.WeekStart) + col) % daysPerWeek)
	}

	return days
}

// columnOf maps a weekday to its grid column for the given week start.
func columnOf(day, weekStart time.Weekday) int {
	return (int(day) - int(weekStart) + daysPerWeek) % daysPerWeek
}
