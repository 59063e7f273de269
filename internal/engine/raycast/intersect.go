package raycast

import (
	gomath "math"

	"github.com/Faultbox/wolfcast/pkg/math"
)

// IntersectRaySegment intersects the ray origin + t*dir with the segment
// a→b. It returns the ray parameter t and the segment parameter u of the
// crossing. Parallel or degenerate configurations never intersect. Hits
// exactly on a segment endpoint count.
func IntersectRaySegment(origin, dir, a, b math.Vec2) (t, u float64, ok bool) {
	e := b.Sub(a)
	denom := dir.Cross(e)
	if gomath.Abs(denom) < math.Epsilon {
		return 0, 0, false
	}

	ao := a.Sub(origin)
	t = ao.Cross(e) / denom
	u = ao.Cross(dir) / denom
	if t <= math.Epsilon || u < -math.Epsilon || u > 1+math.Epsilon {
		return 0, 0, false
	}
	return t, math.Clamp(u, 0, 1), true
}
