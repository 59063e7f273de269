package raycast

import (
	gomath "math"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
	"github.com/Faultbox/wolfcast/pkg/math"
)

// DefaultShadeDistance is the distance at which walls reach the darkest
// attenuation step.
const DefaultShadeDistance = 12.0

const (
	shadeSteps     = 8
	minAttenuation = 0.25
)

// RayRotation is the offset of one ray from the view direction, stored with
// its sine and cosine so they are computed once per FOV.
type RayRotation struct {
	Offset   float64
	Sin, Cos float64
}

// PrepareRays spreads rayCount rays evenly across fov, from the left edge
// to the right edge. A single ray points straight ahead.
func PrepareRays(fov float64, rayCount int) []RayRotation {
	if rayCount < 1 {
		rayCount = 1
	}
	rays := make([]RayRotation, rayCount)
	if rayCount == 1 {
		rays[0] = RayRotation{Cos: 1}
		return rays
	}

	step := fov / float64(rayCount-1)
	for i := range rays {
		offset := -fov/2 + step*float64(i)
		sin, cos := gomath.Sincos(offset)
		rays[i] = RayRotation{Offset: offset, Sin: sin, Cos: cos}
	}
	return rays
}

// Hit is the nearest wall crossing of one ray.
type Hit struct {
	Segment  int
	Point    math.Vec2
	Distance float64 // along the ray
	U        float64 // 0..1 along the segment
}

// CastRay finds the nearest wall crossed by the ray rotated by rot from the
// view direction. Ties keep the segment emitted first.
func CastRay(view entity.View, rot RayRotation, m *world.VectorMap) (Hit, bool) {
	dir := view.Direction().Rotate(rot.Sin, rot.Cos)

	best := Hit{Segment: -1, Distance: gomath.Inf(1)}
	m.Each(func(i int, s world.WallSegment) bool {
		t, u, ok := IntersectRaySegment(view.Position, dir, s.A, s.B)
		if ok && t < best.Distance {
			best = Hit{Segment: i, Distance: t, U: u}
		}
		return true
	})
	if best.Segment < 0 {
		return Hit{Segment: -1}, false
	}
	best.Point = view.Position.Add(dir.Scale(best.Distance))
	return best, true
}

// projection returns the distance from the eye to the projection plane in
// pixels.
func projection(fov float64, width int) float64 {
	return float64(width) / 2 / gomath.Tan(fov/2)
}

// column turns a ray result into the wall strip for a viewport of the
// given height.
func column(hit Hit, ok bool, rot RayRotation, m *world.VectorMap, proj float64, height int, shadeDistance float64) framebuffer.Column {
	if !ok {
		return framebuffer.Column{Segment: -1, Top: height / 2, Bottom: height / 2}
	}

	seg := m.Segment(hit.Segment)
	perp := hit.Distance * rot.Cos

	h := height
	if perp > 0 {
		if hf := proj / perp; hf < float64(height) {
			h = int(gomath.Round(hf))
		}
	}
	top := (height - h) / 2

	orientation := seg.Orientation()
	return framebuffer.Column{
		Hit:         true,
		Top:         top,
		Bottom:      top + h,
		Distance:    perp,
		RawDistance: hit.Distance,
		WallType:    seg.WallType,
		Segment:     hit.Segment,
		TexU:        hit.U,
		Vertical:    orientation == world.Vertical,
		Shade:       orientation.Shade() * attenuation(perp, shadeDistance),
	}
}

// attenuation darkens walls with distance in shadeSteps discrete steps.
func attenuation(dist, shadeDistance float64) float64 {
	if shadeDistance <= 0 {
		shadeDistance = DefaultShadeDistance
	}
	f := 1 - dist/shadeDistance
	f = gomath.Ceil(f*shadeSteps) / shadeSteps
	return math.Clamp(f, minAttenuation, 1)
}

// rayForColumn maps screen column x to the ray drawn there. It is the
// nearest-neighbour stretch floor((x+0.5)*rays/width) in integer arithmetic.
func rayForColumn(x, rayCount, width int) int {
	return (2*x + 1) * rayCount / (2 * width)
}
