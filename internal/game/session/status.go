package session

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Faultbox/wolfcast/pkg/math"
)

var statusColor = color.RGBA{255, 255, 255, 255}

// FPSCounter averages frame times over one-second windows.
type FPSCounter struct {
	frames int
	start  time.Time
	fps    float64
}

// Tick counts one frame at now. It reports true when a window closed and
// FPS was updated.
func (c *FPSCounter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed < time.Second {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

// FPS returns the rate measured over the last complete window.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// StatusLine formats the debug status shown over the frame.
func (s *Session) StatusLine(fps float64) string {
	p := s.Player
	return fmt.Sprintf("%s  %.0f fps  x=%.2f y=%.2f  %3.0f°",
		s.Map.Name, fps, p.Position.X, p.Position.Y, math.Degrees(p.Angle))
}
