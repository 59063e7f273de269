package raycast

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/wolfcast/internal/engine/framebuffer"
	"github.com/Faultbox/wolfcast/internal/game/entity"
	"github.com/Faultbox/wolfcast/internal/game/world"
)

// Parallel splits the rays, then the screen columns, into contiguous ranges
// and processes each range on its own goroutine. Every goroutine writes a
// disjoint slice of the output, so frames are identical to SingleThreaded.
type Parallel struct {
	Workers       int // <= 0 uses GOMAXPROCS
	ShadeDistance float64

	frame frame
}

// RenderFrame implements Renderer.
func (r *Parallel) RenderFrame(view entity.View, m *world.VectorMap, rayCount int, dst *framebuffer.FrameBuffer) {
	r.frame.prepare(view.FOV, rayCount, dst.Width)
	workers := r.workers()

	each(workers, len(r.frame.rays), func(lo, hi int) {
		r.frame.cast(view, m, dst.Height, r.ShadeDistance, lo, hi)
	})
	each(workers, dst.Width, func(lo, hi int) {
		r.frame.rasterize(dst, lo, hi)
	})
}

func (r *Parallel) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// each runs fn over n items split into at most workers contiguous ranges
// and waits for all of them.
func each(workers, n int, fn func(lo, hi int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := split(n, workers, w)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// split returns the w-th of workers contiguous ranges covering [0, n).
func split(n, workers, w int) (lo, hi int) {
	return w * n / workers, (w + 1) * n / workers
}
