package debug

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
)

func TestWritePNG(t *testing.T) {
	fb := framebuffer.New(3, 2)
	red := color.RGBA{200, 10, 10, 255}
	fb.Fill(color.RGBA{0, 0, 0, 255})
	fb.Set(2, 1, red)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := color.RGBAModel.Convert(img.At(2, 1)); got != red {
		t.Errorf("pixel (2,1) = %v, want %v", got, red)
	}
}

func TestCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "wolf")
	fixed := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	sc.now = func() time.Time { return fixed }

	fb := framebuffer.New(4, 4)
	first, err := sc.Capture(fb)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	second, err := sc.Capture(fb)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if first != filepath.Join(dir, "wolf_2024-03-01_12-30-00.png") {
		t.Errorf("unexpected name %s", first)
	}
	if second != filepath.Join(dir, "wolf_2024-03-01_12-30-00_1.png") {
		t.Errorf("captures in the same second must not collide, got %s", second)
	}
	for _, p := range []string{first, second} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing screenshot %s: %v", p, err)
		}
	}
}

func TestSavePNGBadPath(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), framebuffer.New(1, 1))
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
