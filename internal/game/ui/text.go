package ui

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
)

var face = basicfont.Face7x13

// DrawText prints text with its top-left corner at (x, y). Glyphs falling
// outside the frame are clipped.
func DrawText(fb *framebuffer.FrameBuffer, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  fb.Image(),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// TextSize returns the pixel size of text.
func TextSize(text string) (w, h int) {
	return font.MeasureString(face, text).Ceil(), face.Height
}
