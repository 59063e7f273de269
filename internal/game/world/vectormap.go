package world

import (
	gomath "math"

	"github.com/Faultbox/wolfcast/pkg/formats"
	"github.com/Faultbox/wolfcast/pkg/math"
)

// Face identifies which edge of its wall cell a segment came from.
// The order is the emission order within a cell.
type Face uint8

const (
	FaceNorth Face = iota
	FaceSouth
	FaceWest
	FaceEast
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	default:
		return "unknown"
	}
}

// Orientation tells horizontal (north/south facing) edges from vertical
// (east/west facing) ones.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// VerticalShade darkens east/west faces to fake a light direction.
const VerticalShade = 0.625

// Shade returns the colour multiplier for faces of this orientation.
func (o Orientation) Shade() float64 {
	if o == Vertical {
		return VerticalShade
	}
	return 1
}

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Orientation returns the orientation of the face.
func (f Face) Orientation() Orientation {
	if f == FaceWest || f == FaceEast {
		return Vertical
	}
	return Horizontal
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() math.Vec2 {
	switch f {
	case FaceNorth:
		return math.Vec2{X: 0, Y: -1}
	case FaceSouth:
		return math.Vec2{X: 0, Y: 1}
	case FaceWest:
		return math.Vec2{X: -1, Y: 0}
	default:
		return math.Vec2{X: 1, Y: 0}
	}
}

// WallSegment is one exposed edge of a wall cell. Endpoints lie on integer
// grid lines and are ordered clockwise around the owning cell.
type WallSegment struct {
	A, B     math.Vec2
	WallType int
	Face     Face
	Col, Row int
}

// Orientation returns the shading orientation of the segment.
func (s WallSegment) Orientation() Orientation {
	return s.Face.Orientation()
}

// Normal returns the outward normal, pointing into open space.
func (s WallSegment) Normal() math.Vec2 {
	return s.Face.Normal()
}

// VectorMap is the immutable wall geometry of a map. It has no mutating
// methods and is shared read-only by the player and the renderers.
type VectorMap struct {
	segments []WallSegment
	grid     *formats.Grid
	width    float64
	height   float64
	diagonal float64
}

// NewVectorMap emits, for every wall cell in row-major order, the edges
// (north, south, west, east) that border an open cell or the map boundary.
// Edges shared by two walls can never be seen from open space and are skipped.
func NewVectorMap(grid *formats.Grid) *VectorMap {
	w, h := float64(grid.Width), float64(grid.Height)
	m := &VectorMap{
		grid:     grid,
		width:    w,
		height:   h,
		diagonal: gomath.Sqrt(w*w + h*h),
	}

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			cell, _ := grid.Cell(col, row)
			if !cell.Wall {
				continue
			}

			x, y := float64(col), float64(row)
			if !grid.IsWall(col, row-1) {
				m.add(cell, col, row, FaceNorth, math.Vec2{X: x, Y: y}, math.Vec2{X: x + 1, Y: y})
			}
			if !grid.IsWall(col, row+1) {
				m.add(cell, col, row, FaceSouth, math.Vec2{X: x + 1, Y: y + 1}, math.Vec2{X: x, Y: y + 1})
			}
			if !grid.IsWall(col-1, row) {
				m.add(cell, col, row, FaceWest, math.Vec2{X: x, Y: y + 1}, math.Vec2{X: x, Y: y})
			}
			if !grid.IsWall(col+1, row) {
				m.add(cell, col, row, FaceEast, math.Vec2{X: x + 1, Y: y}, math.Vec2{X: x + 1, Y: y + 1})
			}
		}
	}
	return m
}

func (m *VectorMap) add(cell formats.Cell, col, row int, face Face, a, b math.Vec2) {
	m.segments = append(m.segments, WallSegment{
		A:        a,
		B:        b,
		WallType: cell.WallType,
		Face:     face,
		Col:      col,
		Row:      row,
	})
}

// Len returns the number of segments.
func (m *VectorMap) Len() int {
	return len(m.segments)
}

// Segment returns a copy of the i-th segment.
func (m *VectorMap) Segment(i int) WallSegment {
	return m.segments[i]
}

// Each calls fn for every segment in emission order until fn returns false.
func (m *VectorMap) Each(fn func(i int, s WallSegment) bool) {
	for i, s := range m.segments {
		if !fn(i, s) {
			return
		}
	}
}

// Width returns the map width in cells.
func (m *VectorMap) Width() float64 { return m.width }

// Height returns the map height in cells.
func (m *VectorMap) Height() float64 { return m.height }

// Diagonal returns the length of the map's diagonal.
func (m *VectorMap) Diagonal() float64 { return m.diagonal }

// Contains reports whether p lies strictly inside the map bounds.
func (m *VectorMap) Contains(p math.Vec2) bool {
	return p.X > 0 && p.Y > 0 && p.X < m.width && p.Y < m.height
}

// Blocked reports whether p lies in a wall cell or outside the map.
func (m *VectorMap) Blocked(p math.Vec2) bool {
	if !m.Contains(p) {
		return true
	}
	return m.grid.IsWall(int(gomath.Floor(p.X)), int(gomath.Floor(p.Y)))
}

// Grid returns the cell grid the segments were built from. Callers must not
// modify it.
func (m *VectorMap) Grid() *formats.Grid { return m.grid }
