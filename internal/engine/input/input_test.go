package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestSnapshot(t *testing.T) {
	tests := []struct {
		name string
		keys []sdl.Scancode
		want Snapshot
	}{
		{"nothing held", nil, Snapshot{}},
		{"A", []sdl.Scancode{sdl.SCANCODE_A}, Snapshot{Left: true}},
		{"left arrow", []sdl.Scancode{sdl.SCANCODE_LEFT}, Snapshot{Left: true}},
		{"D", []sdl.Scancode{sdl.SCANCODE_D}, Snapshot{Right: true}},
		{"right arrow", []sdl.Scancode{sdl.SCANCODE_RIGHT}, Snapshot{Right: true}},
		{"both directions", []sdl.Scancode{sdl.SCANCODE_A, sdl.SCANCODE_RIGHT}, Snapshot{Left: true, Right: true}},
		{"unrelated key", []sdl.Scancode{sdl.SCANCODE_W}, Snapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New()
			for _, k := range tt.keys {
				in.Press(k)
			}
			if got := in.Snapshot(); got != tt.want {
				t.Errorf("Snapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	in := New()
	in.Press(sdl.SCANCODE_D)
	in.Release(sdl.SCANCODE_D)

	if in.Held(sdl.SCANCODE_D) {
		t.Error("D still held after release")
	}
	if got := in.Snapshot(); got != (Snapshot{}) {
		t.Errorf("Snapshot() = %+v, want none", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	in := New()
	in.Press(sdl.SCANCODE_LEFT)
	snap := in.Snapshot()

	in.Release(sdl.SCANCODE_LEFT)
	if !snap.Left {
		t.Error("snapshot changed after a later key event")
	}
}

func TestEscapeRequestsQuit(t *testing.T) {
	in := New()
	if in.Quit() {
		t.Fatal("Quit() = true before any input")
	}
	in.Press(sdl.SCANCODE_ESCAPE)
	if !in.Quit() {
		t.Error("Quit() = false after Escape")
	}
}

func TestJustPressed(t *testing.T) {
	in := New()
	in.Press(sdl.SCANCODE_F12)
	if !in.JustPressed(sdl.SCANCODE_F12) {
		t.Fatal("JustPressed() = false right after press")
	}

	// Auto-repeat of a held key is not a new press.
	clear(in.pressed)
	in.Press(sdl.SCANCODE_F12)
	if in.JustPressed(sdl.SCANCODE_F12) {
		t.Error("JustPressed() = true for a repeat of a held key")
	}

	in.Release(sdl.SCANCODE_F12)
	in.Press(sdl.SCANCODE_F12)
	if !in.JustPressed(sdl.SCANCODE_F12) {
		t.Error("JustPressed() = false after release and press")
	}
}
