// Package ui draws overlays on top of rendered frames.
package ui

import (
	"image"
	"image/color"
	"image/draw"
	gomath "math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/engine/raycast"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
)

// minSize is the smallest minimap worth drawing, in pixels.
const minSize = 16

// Minimap draws a top-down view of the wall segments, the player and its
// field of view into a corner of the frame.
type Minimap struct {
	Size   int // edge of the square the map is fitted into
	Margin int
	Rays   int // FOV rays drawn, 0 to hide them

	Background  color.RGBA
	Border      color.RGBA
	PlayerColor color.RGBA
	RayColor    color.RGBA

	// Label is printed under the map when it fits.
	Label string

	z *vector.Rasterizer
}

// NewMinimap creates a new minimap.
func NewMinimap() *Minimap {
	return &Minimap{
		Size:        160,
		Margin:      8,
		Rays:        9,
		Background:  color.RGBA{0, 0, 0, 170},
		Border:      color.RGBA{128, 128, 128, 255},
		PlayerColor: color.RGBA{50, 255, 50, 255},
		RayColor:    color.RGBA{255, 230, 90, 255},
		z:           vector.NewRasterizer(1, 1),
	}
}

// layout maps map coordinates into the frame.
type layout struct {
	box    image.Rectangle
	scale  float64
	width  float32
	height float32
}

func (l layout) point(x, y float64) (float32, float32) {
	return l.clamp(float32(x*l.scale), float32(y*l.scale))
}

// clamp keeps a point inside the minimap box.
func (l layout) clamp(x, y float32) (float32, float32) {
	return clampf(x, 0, l.width), clampf(y, 0, l.height)
}

// place fits the map into the top-left corner of fb. It reports false when
// the frame is too small for a useful minimap.
func (m *Minimap) place(fb *framebuffer.FrameBuffer, vm *world.VectorMap) (layout, bool) {
	size := min(m.Size, fb.Width-2*m.Margin, fb.Height-2*m.Margin)
	if size < minSize {
		return layout{}, false
	}

	scale := float64(size) / gomath.Max(vm.Width(), vm.Height())
	w := int(gomath.Ceil(vm.Width()*scale - 1e-9))
	h := int(gomath.Ceil(vm.Height()*scale - 1e-9))
	if w < 1 || h < 1 {
		return layout{}, false
	}
	return layout{
		box:    image.Rect(m.Margin, m.Margin, m.Margin+w, m.Margin+h),
		scale:  scale,
		width:  float32(w),
		height: float32(h),
	}, true
}

// Draw overlays the minimap on fb.
func (m *Minimap) Draw(fb *framebuffer.FrameBuffer, vm *world.VectorMap, view entity.View) {
	l, ok := m.place(fb, vm)
	if !ok {
		return
	}
	img := fb.Image()

	draw.Draw(img, l.box, image.NewUniform(m.Background), image.Point{}, draw.Over)
	m.drawBorder(img, l.box)

	m.drawWalls(img, l, vm)
	if m.Rays > 0 {
		m.drawRays(img, l, vm, view)
	}
	m.drawPlayer(img, l, view)

	if m.Label != "" {
		w, h := TextSize(m.Label)
		if l.box.Max.Y+2+h <= fb.Height && l.box.Min.X+w <= fb.Width {
			DrawText(fb, l.box.Min.X, l.box.Max.Y+2, m.Label, m.Border)
		}
	}
}

// drawWalls strokes every segment in its wall colour, one raster pass per
// wall type.
func (m *Minimap) drawWalls(img *image.RGBA, l layout, vm *world.VectorMap) {
	byType := make(map[int][]world.WallSegment)
	vm.Each(func(_ int, s world.WallSegment) bool {
		byType[s.WallType] = append(byType[s.WallType], s)
		return true
	})

	types := make([]int, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Ints(types)

	for _, t := range types {
		m.begin(l)
		for _, s := range byType[t] {
			ax, ay := l.point(s.A.X, s.A.Y)
			bx, by := l.point(s.B.X, s.B.Y)
			stroke(m.z, ax, ay, bx, by, 1)
		}
		m.end(img, l, world.WallColor(t))
	}
}

func (m *Minimap) drawRays(img *image.RGBA, l layout, vm *world.VectorMap, view entity.View) {
	ox, oy := l.point(view.Position.X, view.Position.Y)

	m.begin(l)
	for _, rot := range raycast.PrepareRays(view.FOV, m.Rays) {
		end := view.Position.Add(view.Direction().Rotate(rot.Sin, rot.Cos).Scale(vm.Diagonal()))
		if hit, ok := raycast.CastRay(view, rot, vm); ok {
			end = hit.Point
		}
		ex, ey := l.point(end.X, end.Y)
		stroke(m.z, ox, oy, ex, ey, 0.75)
	}
	m.end(img, l, m.RayColor)
}

func (m *Minimap) drawPlayer(img *image.RGBA, l layout, view entity.View) {
	x, y := l.point(view.Position.X, view.Position.Y)
	r := float32(gomath.Max(2, 0.25*l.scale))
	dir := view.Direction()
	dx, dy := float32(dir.X)*r, float32(dir.Y)*r

	// Arrow head pointing along the view direction.
	m.begin(l)
	m.z.MoveTo(l.clamp(x+2*dx, y+2*dy))
	m.z.LineTo(l.clamp(x-dy-dx, y+dx-dy))
	m.z.LineTo(l.clamp(x+dy-dx, y-dx-dy))
	m.z.ClosePath()
	m.end(img, l, m.PlayerColor)
}

// drawBorder outlines box with a 1px frame just outside it, leaving the
// scene under the box untouched.
func (m *Minimap) drawBorder(img *image.RGBA, box image.Rectangle) {
	outer := box.Inset(-1)
	border := image.NewUniform(m.Border)
	for _, r := range []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, box.Min.Y),
		image.Rect(outer.Min.X, box.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, box.Min.Y, box.Min.X, box.Max.Y),
		image.Rect(box.Max.X, box.Min.Y, outer.Max.X, box.Max.Y),
	} {
		draw.Draw(img, r, border, image.Point{}, draw.Src)
	}
}

func (m *Minimap) begin(l layout) {
	m.z.Reset(l.box.Dx(), l.box.Dy())
}

func (m *Minimap) end(img *image.RGBA, l layout, c color.RGBA) {
	m.z.Draw(img, l.box, image.NewUniform(c), image.Point{})
}

// stroke adds a line of the given width as a filled quad.
func stroke(z *vector.Rasterizer, ax, ay, bx, by, width float32) {
	dx, dy := bx-ax, by-ay
	length := float32(gomath.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

func clampf(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
