// Package debug provides debug capture utilities.
package debug

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
)

// ScreenshotCapture writes frames to timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	last      string
	seq       int
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// Capture saves fb under a fresh name and returns the file path.
func (sc *ScreenshotCapture) Capture(fb *framebuffer.FrameBuffer) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	if err := SavePNG(filename, fb); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateFilename returns the next screenshot path. Captures within the
// same second get a sequence suffix.
func (sc *ScreenshotCapture) GenerateFilename() string {
	stamp := sc.now().Format("2006-01-02_15-04-05")
	if stamp == sc.last {
		sc.seq++
	} else {
		sc.last, sc.seq = stamp, 0
	}

	name := fmt.Sprintf("%s_%s.png", sc.prefix, stamp)
	if sc.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", sc.prefix, stamp, sc.seq)
	}
	return filepath.Join(sc.outputDir, name)
}

// SavePNG writes fb to path.
func SavePNG(path string, fb *framebuffer.FrameBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := WritePNG(file, fb); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WritePNG encodes fb as PNG.
func WritePNG(w io.Writer, fb *framebuffer.FrameBuffer) error {
	if err := png.Encode(w, fb.Image()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
