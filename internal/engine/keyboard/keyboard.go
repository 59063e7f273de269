// Package keyboard keeps a snapshot of which logical keys are held.
package keyboard

import "fmt"

// ScanCode is a logical key. Platform key codes are translated to ScanCodes
// by the input layers; unknown keys never reach this package.
type ScanCode uint8

// Recognized scan codes.
const (
	ScanNone ScanCode = iota
	ScanUp
	ScanDown
	ScanLeft
	ScanRight
	ScanStrafeLeft
	ScanStrafeRight
	ScanEscape
	ScanMinimap
	ScanScreenshot

	ScanCount
)

var scanNames = [ScanCount]string{
	"None", "Up", "Down", "Left", "Right", "StrafeLeft", "StrafeRight", "Escape", "Minimap", "Screenshot",
}

// String returns the key name.
func (s ScanCode) String() string {
	if s >= ScanCount {
		return fmt.Sprintf("ScanCode(%d)", s)
	}
	return scanNames[s]
}

// Action is a key transition.
type Action uint8

// Key actions.
const (
	Released Action = iota
	Pressed
)

// Event is a single key transition.
type Event struct {
	Code   ScanCode
	Action Action
}

// State is a fixed-size table of held keys, one entry per ScanCode.
// The zero value has every key released.
type State struct {
	keys [ScanCount]bool
}

// ProcessKeyEvent records a press or release. Repeated presses are harmless;
// the last event for a code wins. Codes outside the enumeration are a
// caller bug and are ignored.
func (s *State) ProcessKeyEvent(e Event) {
	if e.Code >= ScanCount {
		return
	}
	s.keys[e.Code] = e.Action == Pressed
}

// IsDown reports whether the key is currently held.
func (s *State) IsDown(code ScanCode) bool {
	if code >= ScanCount {
		return false
	}
	return s.keys[code]
}

// Reset releases every key.
func (s *State) Reset() {
	s.keys = [ScanCount]bool{}
}
