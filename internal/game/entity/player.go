// Package entity provides the player and other game entities.
package entity

import (
	gomath "math"

	"github.com/Faultbox/wolfcast/internal/engine/keyboard"
	"github.com/Faultbox/wolfcast/internal/game/world"
	"github.com/Faultbox/wolfcast/pkg/formats"
	"github.com/Faultbox/wolfcast/pkg/math"
)

// skin keeps a resolved position strictly off the face it stopped at.
const skin = 1e-6

// KeySource is a read-only view of held keys.
type KeySource interface {
	IsDown(code keyboard.ScanCode) bool
}

// PlayerOptions holds the tunables of a player.
type PlayerOptions struct {
	FOV         float64 // radians
	MoveSpeed   float64 // cells per second
	RotateSpeed float64 // radians per second
	Radius      float64 // collision clearance in cells
}

// DefaultPlayerOptions returns the stock movement settings.
func DefaultPlayerOptions() PlayerOptions {
	return PlayerOptions{
		FOV:         math.Radians(60),
		MoveSpeed:   3,
		RotateSpeed: 2.5,
		Radius:      0.2,
	}
}

// View is an immutable snapshot of what the player sees. Renderers take a
// View so the live player is never read while a frame is being cast.
type View struct {
	Position math.Vec2
	Angle    float64
	FOV      float64
}

// Direction returns the unit facing vector.
func (v View) Direction() math.Vec2 {
	return math.FromAngle(v.Angle)
}

// Player is the observer moving through the map. It is owned by the game
// loop and changed once per frame.
//
// Position always stays inside the map and out of wall cells. Speeds must be
// non-negative and dt finite; these are caller contracts, not checked here.
type Player struct {
	Position    math.Vec2
	Angle       float64 // radians in [0, 2π); 0 faces east, angles grow clockwise
	FOV         float64
	MoveSpeed   float64
	RotateSpeed float64
	Radius      float64
}

// NewPlayer spawns a player at the grid's start marker, or on the first open
// cell in scan order facing east when the map declares none.
func NewPlayer(grid *formats.Grid, opts PlayerOptions) *Player {
	p := &Player{
		FOV:         opts.FOV,
		MoveSpeed:   opts.MoveSpeed,
		RotateSpeed: opts.RotateSpeed,
		Radius:      opts.Radius,
	}

	if start, ok := grid.Start(); ok {
		p.Position = cellCenter(start.Col, start.Row)
		p.Angle = start.Facing.Angle()
		return p
	}

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			if !grid.IsWall(col, row) {
				p.Position = cellCenter(col, row)
				return p
			}
		}
	}
	return p
}

func cellCenter(col, row int) math.Vec2 {
	return math.Vec2{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}

// View returns a snapshot of the player's eye.
func (p *Player) View() View {
	return View{Position: p.Position, Angle: p.Angle, FOV: p.FOV}
}

// Direction returns the unit facing vector.
func (p *Player) Direction() math.Vec2 {
	return math.FromAngle(p.Angle)
}

// Advance applies one frame of keyboard-driven rotation and movement.
// Rotation is unconstrained; translation is resolved against m so the player
// stops at walls instead of entering them.
func (p *Player) Advance(keys KeySource, m *world.VectorMap, dt float64) {
	if turn := axis(keys, keyboard.ScanRight, keyboard.ScanLeft); turn != 0 {
		p.Rotate(turn * p.RotateSpeed * dt)
	}

	forward := axis(keys, keyboard.ScanUp, keyboard.ScanDown)
	strafe := axis(keys, keyboard.ScanStrafeRight, keyboard.ScanStrafeLeft)
	if forward == 0 && strafe == 0 {
		return
	}

	dir := p.Direction()
	// Normalised so diagonal movement is no faster than straight movement.
	step := dir.Scale(forward).Add(dir.Perp().Scale(strafe)).Normalize()
	p.Move(step.Scale(p.MoveSpeed*dt), m)
}

// Rotate turns the player by delta radians.
func (p *Player) Rotate(delta float64) {
	p.Angle = math.WrapAngle(p.Angle + delta)
}

// Move translates the player by delta with axis-separated collision: the X
// component is swept first, then Y from the resulting position. Each axis is
// clamped to stop Radius short of the first face it would cross, so a step
// of any length cannot tunnel through a wall. Open map edges have no faces,
// so each axis is also held inside the map before the next one is swept.
func (p *Player) Move(delta math.Vec2, m *world.VectorMap) {
	lo := p.Radius + skin

	pos := p.Position
	pos.X = math.Clamp(sweepX(pos, delta.X, p.Radius, m), lo, m.Width()-lo)
	pos.Y = math.Clamp(sweepY(pos, delta.Y, p.Radius, m), lo, m.Height()-lo)
	p.Position = pos
}

func axis(keys KeySource, positive, negative keyboard.ScanCode) float64 {
	var v float64
	if keys.IsDown(positive) {
		v++
	}
	if keys.IsDown(negative) {
		v--
	}
	return v
}

// overlaps reports whether the open interval (c-r, c+r) intersects the
// open interval (lo, hi).
func overlaps(c, r, lo, hi float64) bool {
	return c+r > lo+skin && c-r < hi-skin
}

func sweepX(pos math.Vec2, dx, r float64, m *world.VectorMap) float64 {
	if dx == 0 {
		return pos.X
	}
	target := pos.X + dx
	m.Each(func(_ int, s world.WallSegment) bool {
		if s.Orientation() != world.Vertical {
			return true
		}
		if !overlaps(pos.Y, r, gomath.Min(s.A.Y, s.B.Y), gomath.Max(s.A.Y, s.B.Y)) {
			return true
		}
		x := s.A.X
		switch {
		case dx > 0 && s.Face == world.FaceWest:
			if x >= pos.X+r-skin && x <= target+r {
				target = gomath.Min(target, x-r-skin)
			}
		case dx < 0 && s.Face == world.FaceEast:
			if x <= pos.X-r+skin && x >= target-r {
				target = gomath.Max(target, x+r+skin)
			}
		}
		return true
	})
	return target
}

func sweepY(pos math.Vec2, dy, r float64, m *world.VectorMap) float64 {
	if dy == 0 {
		return pos.Y
	}
	target := pos.Y + dy
	m.Each(func(_ int, s world.WallSegment) bool {
		if s.Orientation() != world.Horizontal {
			return true
		}
		if !overlaps(pos.X, r, gomath.Min(s.A.X, s.B.X), gomath.Max(s.A.X, s.B.X)) {
			return true
		}
		y := s.A.Y
		switch {
		case dy > 0 && s.Face == world.FaceNorth:
			if y >= pos.Y+r-skin && y <= target+r {
				target = gomath.Min(target, y-r-skin)
			}
		case dy < 0 && s.Face == world.FaceSouth:
			if y <= pos.Y-r+skin && y >= target-r {
				target = gomath.Max(target, y+r+skin)
			}
		}
		return true
	})
	return target
}
