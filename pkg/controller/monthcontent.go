package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/calendar"
)

// moodColorTags maps each mood color to the tview color tag it is drawn
// with. Hex tags keep the palette stable across terminal color schemes.
func moodColorTags() map[calendar.Color]string {
	return map[calendar.Color]string{
		calendar.ColorGrey:   "#AAAAAA",
		calendar.ColorBlue:   "#5599FF",
		calendar.ColorGreen:  "#00FF00",
		calendar.ColorYellow: "#FFFF00",
		calendar.ColorRed:    "#FF0000",
	}
}

func cellColorTag(color calendar.Color) string {
	return moodColorTags()[color]
}

// MonthContent implements tview.TableContent, which tview.Table uses to
// draw the month grid. Row 0 holds the weekday headings; each following row
// is one week of the derived grid description.
type MonthContent struct {
	tview.TableContentReadOnly
	desc calendar.GridDescription
}

// GetCell returns the cell at the given position or nil if no cell.
func (m *MonthContent) GetCell(row, col int) *tview.TableCell {
	if col < 0 || col >= m.GetColumnCount() {
		return nil
	}

	if row == 0 {
		name := m.desc.Weekdays()[col].String()[:2]

		return tview.NewTableCell(name).SetExpansion(1).
			SetTextColor(tcell.ColorYellow).SetAlign(tview.AlignCenter).SetSelectable(false)
	}

	weeks := m.desc.Weeks()
	if row-1 >= len(weeks) {
		return nil
	}

	cell := weeks[row-1][col]
	if cell.Blank() {
		return tview.NewTableCell("").SetExpansion(1).SetSelectable(false)
	}

	text := fmt.Sprintf("%2d", cell.Day)
	if cell.Logged {
		text = fmt.Sprintf("[%s]%2d ●[-]", cellColorTag(cell.Color), cell.Day)
	}

	tableCell := tview.NewTableCell(text).SetExpansion(1).SetAlign(tview.AlignCenter)
	if cell.IsToday {
		tableCell.SetAttributes(tcell.AttrReverse)
	}

	return tableCell
}

// GetRowCount returns the number of rows in the table.
func (m *MonthContent) GetRowCount() int {
	return len(m.desc.Weeks()) + 1
}

// GetColumnCount returns the number of columns in the table.
func (m *MonthContent) GetColumnCount() int {
	return 7
}
