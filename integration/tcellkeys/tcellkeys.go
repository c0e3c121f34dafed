// Package tcellkeys feeds tcell terminal key events into a keys.State.
//
// Terminals report key presses only. There is no release event, so a
// program driving a State from tcell either calls Release itself (for
// example at the end of a frame) or resets the State periodically.
//
// # Usage
//
//	state := keys.NewState()
//	for {
//	    switch ev := screen.PollEvent().(type) {
//	    case *tcell.EventKey:
//	        tcellkeys.Press(state, ev)
//	    }
//	    if state.IsDown("ArrowUp") {
//	        // ...
//	    }
//	    state.Reset()
//	}
package tcellkeys

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/dotfx/keys"
)

// keyNames maps tcell keys to the names a browser would report, so the
// same key checks work for both input sources.
var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyEnter:      "Enter",
	tcell.KeyEscape:     "Escape",
	tcell.KeyTab:        "Tab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
}

// Name returns the key name for ev. Printable keys use their rune; named
// keys use browser-style names where one exists and tcell's name
// otherwise.
func Name(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}
	return tcell.KeyNames[ev.Key()]
}

// FromEvent converts a tcell key event. KeyCode carries the tcell key
// constant, or the rune for printable keys.
func FromEvent(ev *tcell.EventKey) keys.Event {
	code := int(ev.Key())
	if ev.Key() == tcell.KeyRune {
		code = int(ev.Rune())
	}
	return keys.Event{Key: Name(ev), KeyCode: code}
}

// Press records ev as down in state.
func Press(state *keys.State, ev *tcell.EventKey) {
	state.SetDown(FromEvent(ev))
}

// Release records ev as up in state.
func Release(state *keys.State, ev *tcell.EventKey) {
	state.SetUp(FromEvent(ev))
}
