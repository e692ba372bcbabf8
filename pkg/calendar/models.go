package calendar

import (
	"fmt"
	"time"
)

// These constants are the five supported mood colors, in display order.
const (
	ColorGrey   Color = "grey"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// dateKeyLayout is the canonical form of a DateKey: zero-padded and
// lexicographically sortable.
const dateKeyLayout = "2006-01-02"

// Color identifies one of the five fixed mood colors. The set is closed;
// there are no custom colors.
type Color string

// Colors returns all supported colors in their fixed display order.
func Colors() []Color {
	return []Color{ColorGrey, ColorBlue, ColorGreen, ColorYellow, ColorRed}
}

// Valid reports whether c is one of the five supported colors.
func (c Color) Valid() bool {
	for _, known := range Colors() {
		if c == known {
			return true
		}
	}

	return false
}

// DateKey identifies a calendar day as a YYYY-MM-DD string. Equal keys denote
// the same calendar day regardless of how they were constructed.
type DateKey string

// NewDateKey returns the DateKey for the calendar day containing t.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// Valid reports whether k parses as a canonical YYYY-MM-DD date.
func (k DateKey) Valid() bool {
	_, err := time.Parse(dateKeyLayout, string(k))

	return err == nil
}

// Time returns the day identified by k at midnight UTC.
func (k DateKey) Time() (time.Time, error) {
	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", string(k), err)
	}

	return t, nil
}

// MoodLog maps each logged day to its color. An absent key means the day is
// unlogged, which is distinct from every Color value.
type MoodLog map[DateKey]Color

// Valid reports whether every entry has a well-formed key and a known color.
func (m MoodLog) Valid() bool {
	for key, color := range m {
		if !key.Valid() || !color.Valid() {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the log.
func (m MoodLog) Clone() MoodLog {
	clone := make(MoodLog, len(m))
	for key, color := range m {
		clone[key] = color
	}

	return clone
}
