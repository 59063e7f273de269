// Package raycast renders first-person frames of a vector map by casting
// one ray per column band and drawing a shaded wall strip for each hit.
package raycast

import (
	"image/color"
	gomath "math"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
)

// Background colours.
var (
	CeilingColor = color.RGBA{57, 57, 57, 255}
	FloorColor   = color.RGBA{115, 115, 115, 255}
)

// Renderer draws a frame of the map as seen from view into dst. Rendering
// never fails: rays that hit nothing leave a void column.
type Renderer interface {
	RenderFrame(view entity.View, m *world.VectorMap, rayCount int, dst *framebuffer.FrameBuffer)
}

// New returns the single-threaded renderer for workers == 1 and the
// parallel one otherwise (workers <= 0 uses every CPU).
func New(workers int, shadeDistance float64) Renderer {
	if workers == 1 {
		return &SingleThreaded{ShadeDistance: shadeDistance}
	}
	return &Parallel{Workers: workers, ShadeDistance: shadeDistance}
}

// Render draws one frame into a new width x height frame buffer.
func Render(r Renderer, view entity.View, m *world.VectorMap, rayCount, width, height int) *framebuffer.FrameBuffer {
	fb := framebuffer.New(width, height)
	r.RenderFrame(view, m, rayCount, fb)
	return fb
}

// frame holds the per-renderer scratch state reused between frames.
type frame struct {
	fov  float64
	rays []RayRotation
	hits []framebuffer.Column
	proj float64
}

// prepare refreshes the ray table when the FOV or ray count changed.
func (f *frame) prepare(fov float64, rayCount, width int) {
	if rayCount < 1 {
		rayCount = 1
	}
	if len(f.rays) != rayCount || f.fov != fov {
		f.rays = PrepareRays(fov, rayCount)
		f.fov = fov
	}
	if len(f.hits) != rayCount {
		f.hits = make([]framebuffer.Column, rayCount)
	}
	f.proj = projection(fov, width)
}

// cast fills hits[lo:hi].
func (f *frame) cast(view entity.View, m *world.VectorMap, height int, shadeDistance float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		rot := f.rays[i]
		hit, ok := CastRay(view, rot, m)
		f.hits[i] = column(hit, ok, rot, m, f.proj, height, shadeDistance)
	}
}

// rasterize paints screen columns [lo, hi) of dst from the cast rays.
func (f *frame) rasterize(dst *framebuffer.FrameBuffer, lo, hi int) {
	half := dst.Height / 2
	for x := lo; x < hi; x++ {
		col := f.hits[rayForColumn(x, len(f.hits), dst.Width)]
		dst.Columns[x] = col

		if !col.Hit {
			dst.FillColumn(x, 0, half, CeilingColor)
			dst.FillColumn(x, half, dst.Height, FloorColor)
			continue
		}
		dst.FillColumn(x, 0, col.Top, CeilingColor)
		dst.FillColumn(x, col.Top, col.Bottom, shade(world.WallColor(col.WallType), col.Shade))
		dst.FillColumn(x, col.Bottom, dst.Height, FloorColor)
	}
}

// shade scales the colour channels of c by factor.
func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(gomath.Round(float64(c.R) * factor)),
		G: uint8(gomath.Round(float64(c.G) * factor)),
		B: uint8(gomath.Round(float64(c.B) * factor)),
		A: 255,
	}
}
