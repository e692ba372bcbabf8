package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/calendar"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/db"
)

// Controller mediates between the store and the view.
type Controller struct {
	ctx       context.Context
	db        *db.Database
	app       *tview.Application
	grid      *tview.Grid
	header    *tview.Table
	table     *tview.Table
	picker    *tview.Table
	content   *MonthContent
	events    map[tcell.Key]KeyEvent
	month     calendar.Month
	weekStart time.Weekday
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller to run the app. The displayed month
// starts at the real current month.
func NewController(ctx context.Context, database *db.Database, weekStart time.Weekday) (*Controller, error) {
	c := Controller{
		ctx:       ctx,
		db:        database,
		app:       tview.NewApplication(),
		month:     calendar.MonthOf(database.Now()),
		weekStart: weekStart,
	}

	initKeys()
	c.initEvents()

	return &c, nil
}

// Go builds the month page and runs the app until the user exits.
func (c *Controller) Go() {
	c.grid = tview.NewGrid().SetBorders(true)
	c.header = tview.NewTable().SetBorders(false).SetSelectable(false, false)
	c.content = &MonthContent{}
	c.table = tview.NewTable().SetBorders(false)
	c.table.SetContent(c.content)
	c.picker = tview.NewTable().SetBorders(false).SetSelectable(false, false)

	c.refresh()

	c.app.SetInputCapture(c.handleKeys)

	if err := c.app.SetRoot(c.grid, true).SetFocus(c.grid).Run(); err != nil {
		panic(err)
	}
}

// refresh rederives the grid description for the displayed month and redraws
// the whole page. Every user action funnels through here; there is no
// incremental update path.
func (c *Controller) refresh() {
	desc := calendar.BuildGrid(c.month, c.db.Log, c.db.Now(), c.weekStart)
	c.content.desc = desc

	c.updateHeader()

	c.grid.Clear()
	c.grid.AddItem(c.header, 0, 0, 1, 1, 0, 0, false)
	c.grid.AddItem(c.table, 1, 0, 1, 1, 0, 0, true)

	// the picker only appears while today is in view
	if desc.PickerVisible {
		c.updatePicker(desc)
		c.grid.AddItem(c.picker, 2, 0, 1, 1, 0, 0, false)
	}
}

// updateHeader redraws the title and the keyboard shortcut listing.
func (c *Controller) updateHeader() {
	c.header.Clear()

	row := 0
	c.header.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("[yellow]Mood — %s", c.month)))
	row++

	for _, key := range shortcutOrder() {
		event, ok := c.events[key]
		if !ok {
			continue
		}

		text := fmt.Sprintf("[orange]<%s>[white] %s", tcell.KeyNames[key], event.Description)
		c.header.SetCell(row, 0, tview.NewTableCell(text))
		row++
	}
}

// updatePicker redraws the bank of color buttons, highlighting today's
// logged color if there is one.
func (c *Controller) updatePicker(desc calendar.GridDescription) {
	c.picker.Clear()

	c.picker.SetCell(0, 0, tview.NewTableCell("[white]today:"))

	for i, color := range calendar.Colors() {
		text := fmt.Sprintf("[%s]%d %s", cellColorTag(color), i+1, color)
		if desc.HasSelected && desc.Selected == color {
			text = fmt.Sprintf("[%s::r]%d %s[-:-:-]", cellColorTag(color), i+1, color)
		}

		c.picker.SetCell(0, i+1, tview.NewTableCell(text).SetExpansion(1))
	}
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	key := AsKey(evt)
	if k, ok := c.events[key]; ok {
		return k.Action(evt)
	}

	return evt
}
