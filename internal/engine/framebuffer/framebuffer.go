// Package framebuffer provides the CPU-side frame the raycaster draws into
// and the presenters upload.
package framebuffer

import (
	"bytes"
	"image"
	"image/color"
)

// Column describes the wall strip drawn at one screen column. It carries
// what a texture sampler would need: the wall type and the hit coordinate
// along the wall.
type Column struct {
	Hit         bool
	Top, Bottom int     // wall rows are [Top, Bottom)
	Distance    float64 // perpendicular (fisheye-corrected) distance
	RawDistance float64 // Euclidean distance along the ray
	WallType    int
	Segment     int     // index of the hit segment, -1 without a hit
	TexU        float64 // 0..1 along the hit segment
	Vertical    bool    // hit an east/west face
	Shade       float64 // final colour multiplier
}

// FrameBuffer is an RGBA pixel buffer plus per-column wall metadata.
type FrameBuffer struct {
	Width   int
	Height  int
	Pix     []byte
	Columns []Column
}

// New creates a frame buffer with the specified dimensions.
func New(width, height int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize updates the dimensions if they have changed. Contents are undefined
// afterwards.
func (fb *FrameBuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == fb.Width && height == fb.Height && fb.Pix != nil {
		return
	}

	fb.Width = width
	fb.Height = height
	fb.Pix = make([]byte, width*height*4)
	fb.Columns = make([]Column, width)
}

// Size returns the frame buffer dimensions.
func (fb *FrameBuffer) Size() (width, height int) {
	return fb.Width, fb.Height
}

// Fill paints every pixel with c.
func (fb *FrameBuffer) Fill(c color.RGBA) {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = c.R
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.B
		fb.Pix[i+3] = c.A
	}
}

// Set paints one pixel. Coordinates outside the buffer are ignored.
func (fb *FrameBuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
}

// At returns the pixel at (x, y).
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.RGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.RGBA{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

// FillColumn paints rows [y0, y1) of column x.
func (fb *FrameBuffer) FillColumn(x, y0, y1 int, c color.RGBA) {
	if x < 0 || x >= fb.Width {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > fb.Height {
		y1 = fb.Height
	}
	stride := fb.Width * 4
	for i := (y0*fb.Width + x) * 4; y0 < y1; y0, i = y0+1, i+stride {
		fb.Pix[i] = c.R
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.B
		fb.Pix[i+3] = c.A
	}
}

// Image returns an image view sharing the pixel memory.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Equal reports whether both buffers hold identical pixels and columns.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if fb.Width != other.Width || fb.Height != other.Height {
		return false
	}
	if !bytes.Equal(fb.Pix, other.Pix) {
		return false
	}
	for i := range fb.Columns {
		if fb.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}
