// Package term presents frames in a terminal through tcell. Each character
// cell shows two vertically stacked pixels using the upper half block glyph.
package term

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/logger"
)

const halfBlock = '▀'

// Presenter draws frame buffers onto a tcell screen.
type Presenter struct {
	screen tcell.Screen
	log    *zap.Logger
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Presenter {
	screen.HideCursor()
	return &Presenter{
		screen: screen,
		log:    logger.Named("term"),
	}
}

// FrameSize returns the frame buffer size that fills the screen.
func (p *Presenter) FrameSize() (width, height int) {
	cols, rows := p.screen.Size()
	return max(cols, 1), max(rows*2, 2)
}

// Present draws fb and shows it. Pixels beyond the screen are dropped and
// an odd bottom row is paired with black.
func (p *Presenter) Present(fb *framebuffer.FrameBuffer) {
	cols, rows := p.screen.Size()
	w := min(cols, fb.Width)
	h := min(rows, (fb.Height+1)/2)

	for row := 0; row < h; row++ {
		for x := 0; x < w; x++ {
			top := fb.At(x, 2*row)
			bottom := fb.At(x, 2*row+1)
			style := tcell.StyleDefault.
				Foreground(rgb(top.R, top.G, top.B)).
				Background(rgb(bottom.R, bottom.G, bottom.B))
			p.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}

// Resize reacts to a terminal resize event.
func (p *Presenter) Resize() {
	p.screen.Sync()
	cols, rows := p.screen.Size()
	p.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
