package keys

import (
	"slices"
	"testing"
)

func TestDownUpCaseInsensitive(t *testing.T) {
	s := NewState()

	s.SetDown(Event{Key: "a", KeyCode: 65})
	if !s.IsDown("A") {
		t.Error(`IsDown("A") = false after SetDown("a")`)
	}
	if !s.IsDown("a") {
		t.Error(`IsDown("a") = false after SetDown("a")`)
	}

	s.SetUp(Event{Key: "A"})
	if s.IsDown("a") {
		t.Error(`IsDown("a") = true after SetUp("A")`)
	}
	if s.HasKeysDown() {
		t.Error("HasKeysDown() = true with no keys down")
	}
}

func TestSetDownDeduplicates(t *testing.T) {
	var s State

	s.SetDown(Event{Key: "Shift", KeyCode: 16})
	s.SetDown(Event{Key: "SHIFT", KeyCode: 16})
	s.SetDown(Event{Key: "shift", KeyCode: 99})

	got := s.Pressed()
	if len(got) != 1 {
		t.Fatalf("len(Pressed()) = %d, want 1", len(got))
	}
	if got[0].KeyCode != 16 {
		t.Errorf("KeyCode = %d, want the first recorded 16", got[0].KeyCode)
	}
}

func TestKeysPressedOrder(t *testing.T) {
	s := NewState()
	for _, k := range []string{"w", "a", "ArrowUp", "d"} {
		s.SetDown(Event{Key: k})
	}
	s.SetUp(Event{Key: "a"})

	want := []string{"W", "ARROWUP", "D"}
	if got := s.KeysPressed(); !slices.Equal(got, want) {
		t.Errorf("KeysPressed() = %v, want %v", got, want)
	}
}

func TestIgnoresEmptyKey(t *testing.T) {
	s := NewState()
	s.SetDown(Event{KeyCode: 13})
	if s.HasKeysDown() {
		t.Error("event without key name was recorded")
	}
	if s.IsDown("") {
		t.Error(`IsDown("") = true`)
	}
	s.SetUp(Event{})
}

func TestSetUpUnknownKey(t *testing.T) {
	s := NewState()
	s.SetDown(Event{Key: "x"})
	s.SetUp(Event{Key: "y"})
	if !s.IsDown("X") {
		t.Error("releasing an unrelated key released X")
	}
}

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "A"},
		{"Enter", "ENTER"},
		{"ß", "SS"},
		{"é", "É"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s.SetDown(Event{Key: "q"})
	s.SetDown(Event{Key: "e"})
	s.Reset()
	if s.HasKeysDown() {
		t.Error("HasKeysDown() = true after Reset")
	}
}
