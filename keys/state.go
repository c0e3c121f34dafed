// Package keys tracks which keyboard keys are currently held down.
//
// State reflects exactly the sequence of SetDown and SetUp calls it has
// received: there are no timers and nothing expires on its own. Key names
// are compared case-insensitively using Unicode upper-casing.
package keys

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Event is a key event as delivered by a windowing or terminal layer.
type Event struct {
	// Key is the key name, such as "a", "Shift" or "ArrowUp".
	Key string
	// KeyCode is the platform key code, kept for callers that need it.
	KeyCode int
}

// Pressed is a key currently held down. Key is upper-cased.
type Pressed struct {
	Key     string
	KeyCode int
}

// State is the set of keys currently held down, in press order.
// A State is not safe for concurrent use.
// The zero value is ready to use.
type State struct {
	pressed []Pressed
}

// NewState creates an empty State.
func NewState() *State {
	return &State{}
}

// Normalize returns the canonical, upper-cased form of a key name.
func Normalize(key string) string {
	return cases.Upper(language.Und).String(key)
}

func (s *State) index(key string) int {
	for i, p := range s.pressed {
		if p.Key == key {
			return i
		}
	}
	return -1
}

// SetDown records ev's key as down. Events without a key name and keys
// already down are ignored.
func (s *State) SetDown(ev Event) {
	if ev.Key == "" {
		return
	}
	key := Normalize(ev.Key)
	if s.index(key) >= 0 {
		return
	}
	s.pressed = append(s.pressed, Pressed{Key: key, KeyCode: ev.KeyCode})
}

// SetUp removes ev's key from the keys down.
func (s *State) SetUp(ev Event) {
	if ev.Key == "" {
		return
	}
	if i := s.index(Normalize(ev.Key)); i >= 0 {
		s.pressed = append(s.pressed[:i], s.pressed[i+1:]...)
	}
}

// IsDown reports whether key is down, ignoring case.
func (s *State) IsDown(key string) bool {
	return key != "" && s.index(Normalize(key)) >= 0
}

// HasKeysDown reports whether any key is down.
func (s *State) HasKeysDown() bool {
	return len(s.pressed) > 0
}

// KeysPressed returns the names of the keys down, in press order.
func (s *State) KeysPressed() []string {
	names := make([]string, len(s.pressed))
	for i, p := range s.pressed {
		names[i] = p.Key
	}
	return names
}

// Pressed returns a copy of the keys down with their key codes.
func (s *State) Pressed() []Pressed {
	return append([]Pressed(nil), s.pressed...)
}

// Reset releases every key.
func (s *State) Reset() {
	s.pressed = s.pressed[:0]
}
