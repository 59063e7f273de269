package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
)

// Translate maps a terminal key event to a scan code.
func Translate(ev *tcell.EventKey) keyboard.ScanCode {
	return TranslateKey(ev.Key(), ev.Rune())
}

// TranslateKey maps a tcell key and, for tcell.KeyRune, its rune to a scan
// code.
func TranslateKey(key tcell.Key, r rune) keyboard.ScanCode {
	switch key {
	case tcell.KeyUp:
		return keyboard.ScanUp
	case tcell.KeyDown:
		return keyboard.ScanDown
	case tcell.KeyLeft:
		return keyboard.ScanLeft
	case tcell.KeyRight:
		return keyboard.ScanRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyboard.ScanEscape
	case tcell.KeyTab:
		return keyboard.ScanMinimap
	case tcell.KeyF12:
		return keyboard.ScanScreenshot
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return keyboard.ScanUp
		case 's', 'S':
			return keyboard.ScanDown
		case 'q', 'Q':
			return keyboard.ScanLeft
		case 'e', 'E':
			return keyboard.ScanRight
		case 'a', 'A':
			return keyboard.ScanStrafeLeft
		case 'd', 'D':
			return keyboard.ScanStrafeRight
		case 'm', 'M':
			return keyboard.ScanMinimap
		case 'p', 'P':
			return keyboard.ScanScreenshot
		}
	}
	return keyboard.ScanNone
}

// KeyTracker feeds terminal key presses into a keyboard state. Terminals
// only report presses and auto-repeats, so a key counts as held until no
// repeat arrived for the hold duration.
type KeyTracker struct {
	state    *keyboard.State
	hold     time.Duration
	deadline [keyboard.ScanCount]time.Time
}

// NewKeyTracker creates a tracker writing into state.
func NewKeyTracker(state *keyboard.State, hold time.Duration) *KeyTracker {
	return &KeyTracker{state: state, hold: hold}
}

// Press records a press or auto-repeat of code at now. It reports whether
// this was a new press rather than a repeat.
func (k *KeyTracker) Press(code keyboard.ScanCode, now time.Time) bool {
	if code == keyboard.ScanNone || code >= keyboard.ScanCount {
		return false
	}

	fresh := !k.state.IsDown(code)
	k.state.ProcessKeyEvent(keyboard.Event{Code: code, Action: keyboard.Pressed})
	k.deadline[code] = now.Add(k.hold)
	return fresh
}

// Expire releases keys whose hold time ran out.
func (k *KeyTracker) Expire(now time.Time) {
	for code := keyboard.ScanCode(1); code < keyboard.ScanCount; code++ {
		if k.state.IsDown(code) && !now.Before(k.deadline[code]) {
			k.state.ProcessKeyEvent(keyboard.Event{Code: code, Action: keyboard.Released})
		}
	}
}
