package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		code sdl.Scancode
		want keyboard.ScanCode
		ok   bool
	}{
		{sdl.SCANCODE_UP, keyboard.ScanUp, true},
		{sdl.SCANCODE_W, keyboard.ScanUp, true},
		{sdl.SCANCODE_Q, keyboard.ScanLeft, true},
		{sdl.SCANCODE_D, keyboard.ScanStrafeRight, true},
		{sdl.SCANCODE_ESCAPE, keyboard.ScanEscape, true},
		{sdl.SCANCODE_TAB, keyboard.ScanMinimap, true},
		{sdl.SCANCODE_F12, keyboard.ScanScreenshot, true},
		{sdl.SCANCODE_Z, keyboard.ScanNone, false},
	}
	for _, tt := range tests {
		got, ok := Translate(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Translate(%d) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewStartsEmpty(t *testing.T) {
	if n := len(New().Events()); n != 0 {
		t.Errorf("expected no events before Update, got %d", n)
	}
}
