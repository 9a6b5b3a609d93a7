// Package input turns SDL2 events into a held-key table and per-frame snapshots.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Debug keys.
const (
	KeyToggleBoxes = sdl.SCANCODE_F3
	KeyScreenshot  = sdl.SCANCODE_F12
)

// Snapshot is the directional input for one frame. It does not change
// while the frame runs.
type Snapshot struct {
	Left  bool
	Right bool
}

// Input tracks which keys are currently held.
type Input struct {
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool // went down since the last Update
	quit    bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		held:    make(map[sdl.Scancode]bool, 16),
		pressed: make(map[sdl.Scancode]bool, 4),
	}
}

// Update drains pending SDL events into the held-key table.
// Returns true if the window was closed or Escape was pressed.
func (i *Input) Update() bool {
	clear(i.pressed)
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				i.Press(e.Keysym.Scancode)
			case sdl.KEYUP:
				i.Release(e.Keysym.Scancode)
			}
		}
	}
	return i.quit
}

// Press marks a key as held. Escape requests quit.
func (i *Input) Press(key sdl.Scancode) {
	if key == sdl.SCANCODE_ESCAPE {
		i.quit = true
	}
	// Auto-repeat arrives as more presses of a held key.
	if !i.held[key] {
		i.pressed[key] = true
	}
	i.held[key] = true
}

// Release marks a key as released.
func (i *Input) Release(key sdl.Scancode) {
	i.held[key] = false
}

// Held reports whether key is currently down.
func (i *Input) Held(key sdl.Scancode) bool {
	return i.held[key]
}

// JustPressed reports whether key went down during the last Update.
func (i *Input) JustPressed(key sdl.Scancode) bool {
	return i.pressed[key]
}

// Quit reports whether quit has been requested.
func (i *Input) Quit() bool {
	return i.quit
}

// Snapshot returns the directional state to use for the coming frame.
func (i *Input) Snapshot() Snapshot {
	return Snapshot{
		Left:  i.held[sdl.SCANCODE_A] || i.held[sdl.SCANCODE_LEFT],
		Right: i.held[sdl.SCANCODE_D] || i.held[sdl.SCANCODE_RIGHT],
	}
}
