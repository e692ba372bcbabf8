package controller

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/calendar"
)

func (c *Controller) initEvents() {
	c.events = map[tcell.Key]KeyEvent{}

	c.initNavEvents(c.events)
	c.initRecordEvents(c.events)
	c.initExitEvent(c.events)
}

// shortcutOrder fixes the order shortcuts appear in the header.
func shortcutOrder() []tcell.Key {
	return []tcell.Key{KeyH, KeyL, KeyT, Key1, Key2, Key3, Key4, Key5, KeyQ}
}

func (c *Controller) getExitAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		c.app.Stop()

		log.Info().Msg("terminating application")

		os.Exit(0)

		return key
	}
}

func (c *Controller) initExitEvent(events map[tcell.Key]KeyEvent) {
	events[KeyQ] = KeyEvent{
		Description: "Exit",
		Action:      c.getExitAction(),
	}

	events[tcell.KeyEscape] = KeyEvent{
		Description: "Exit",
		Action:      c.getExitAction(),
	}
}

func (c *Controller) getNavAction(step func(calendar.Month) calendar.Month) func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		c.month = step(c.month)

		log.Debug().Msgf("navigating to %s", c.month)

		c.refresh()

		return nil
	}
}

func (c *Controller) initNavEvents(events map[tcell.Key]KeyEvent) {
	prev := c.getNavAction(calendar.Month.Prev)
	next := c.getNavAction(calendar.Month.Next)

	events[KeyH] = KeyEvent{
		Description: "Previous Month",
		Action:      prev,
	}

	events[tcell.KeyLeft] = KeyEvent{
		Description: "Previous Month",
		Action:      prev,
	}

	events[KeyL] = KeyEvent{
		Description: "Next Month",
		Action:      next,
	}

	events[tcell.KeyRight] = KeyEvent{
		Description: "Next Month",
		Action:      next,
	}

	events[KeyT] = KeyEvent{
		Description: "Current Month",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.month = calendar.MonthOf(c.db.Now())
			c.refresh()

			return nil
		},
	}
}

func (c *Controller) getRecordAction(color calendar.Color) func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		// recording is only offered while today is in view
		if !c.month.Contains(c.db.Now()) {
			return nil
		}

		if _, err := c.db.RecordToday(c.ctx, color); err != nil {
			log.Warn().Err(err).Msgf("error recording today's color as %s", color)

			return nil
		}

		log.Debug().Msgf("recorded today's color as %s", color)

		c.refresh()

		return nil
	}
}

func (c *Controller) initRecordEvents(events map[tcell.Key]KeyEvent) {
	keys := []tcell.Key{Key1, Key2, Key3, Key4, Key5}

	for i, color := range calendar.Colors() {
		events[keys[i]] = KeyEvent{
			Description: "Log " + string(color),
			Action:      c.getRecordAction(color),
		}
	}
}
