package controller

import "github.com/gdamore/tcell/v2"

// Rune keystrokes mapped into the tcell.Key space so they can share the
// event table with real key codes.
const (
	Key1 tcell.Key = iota + 49
	Key2
	Key3
	Key4
	Key5
)

const (
	KeyH tcell.Key = iota + 104
	KeyI
	KeyJ
	KeyK
	KeyL
)

const (
	KeyQ tcell.Key = iota + 113
	KeyR
	KeyS
	KeyT
)

// initKeys registers display names for the rune keys used by the app.
func initKeys() {
	tcell.KeyNames[Key1] = "1"
	tcell.KeyNames[Key2] = "2"
	tcell.KeyNames[Key3] = "3"
	tcell.KeyNames[Key4] = "4"
	tcell.KeyNames[Key5] = "5"
	tcell.KeyNames[KeyH] = "h"
	tcell.KeyNames[KeyL] = "l"
	tcell.KeyNames[KeyQ] = "q"
	tcell.KeyNames[KeyT] = "t"
}

// AsKey converts a rune event into its key equivalent so rune and non-rune
// keystrokes can be looked up uniformly.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}

	return tcell.Key(evt.Rune())
}
