package tcellkeys

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/dotfx/keys"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "ArrowUp"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Escape"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "F5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.ev); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromEventKeyCode(t *testing.T) {
	ev := FromEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if ev.Key != "a" || ev.KeyCode != 'a' {
		t.Errorf("FromEvent() = %+v, want key a with code %d", ev, 'a')
	}

	ev = FromEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if ev.KeyCode != int(tcell.KeyDown) {
		t.Errorf("KeyCode = %d, want %d", ev.KeyCode, tcell.KeyDown)
	}
}

func TestPressRelease(t *testing.T) {
	state := keys.NewState()
	Press(state, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	Press(state, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))

	if !state.IsDown("A") || !state.IsDown("arrowleft") {
		t.Fatalf("KeysPressed() = %v, want A and ARROWLEFT", state.KeysPressed())
	}

	Release(state, tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift))
	if state.IsDown("a") {
		t.Error("releasing shifted A left a down")
	}
	if !state.HasKeysDown() {
		t.Error("ArrowLeft released too")
	}
}
