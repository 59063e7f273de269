// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventFocusLost
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    keyboard.ScanCode
	Width  int
	Height int
}

// keymap translates physical SDL keys to logical scan codes. Keys not listed
// here are dropped at this boundary.
var keymap = map[sdl.Scancode]keyboard.ScanCode{
	sdl.SCANCODE_UP:     keyboard.ScanUp,
	sdl.SCANCODE_W:      keyboard.ScanUp,
	sdl.SCANCODE_DOWN:   keyboard.ScanDown,
	sdl.SCANCODE_S:      keyboard.ScanDown,
	sdl.SCANCODE_LEFT:   keyboard.ScanLeft,
	sdl.SCANCODE_Q:      keyboard.ScanLeft,
	sdl.SCANCODE_RIGHT:  keyboard.ScanRight,
	sdl.SCANCODE_E:      keyboard.ScanRight,
	sdl.SCANCODE_A:      keyboard.ScanStrafeLeft,
	sdl.SCANCODE_D:      keyboard.ScanStrafeRight,
	sdl.SCANCODE_ESCAPE: keyboard.ScanEscape,
	sdl.SCANCODE_TAB:    keyboard.ScanMinimap,
	sdl.SCANCODE_F12:    keyboard.ScanScreenshot,
}

// Translate maps an SDL scancode to a logical key.
func Translate(code sdl.Scancode) (keyboard.ScanCode, bool) {
	sc, ok := keymap[code]
	return sc, ok
}

// Input polls SDL and turns key transitions into logical key events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Releases are lost while unfocused.
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			code, ok := Translate(e.Keysym.Scancode)
			if !ok {
				continue
			}
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: code})
				}
			case sdl.KEYUP:
				i.events = append(i.events, Event{Type: EventKeyUp, Key: code})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
