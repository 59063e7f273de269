package raycast

import (
	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
)

// SingleThreaded casts every ray on the calling goroutine. It keeps scratch
// buffers between frames and must not be used concurrently.
type SingleThreaded struct {
	ShadeDistance float64

	frame frame
}

// RenderFrame implements Renderer.
func (r *SingleThreaded) RenderFrame(view entity.View, m *world.VectorMap, rayCount int, dst *framebuffer.FrameBuffer) {
	r.frame.prepare(view.FOV, rayCount, dst.Width)
	r.frame.cast(view, m, dst.Height, r.ShadeDistance, 0, len(r.frame.rays))
	r.frame.rasterize(dst, 0, dst.Width)
}
