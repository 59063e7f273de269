package formats

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
)

// ASCII map format errors.
var (
	ErrEmptyInput     = errors.New("empty map source")
	ErrMalformedMap   = errors.New("malformed map: ragged rows")
	ErrEmptyMap       = errors.New("map has no open cells")
	ErrInvalidCell    = errors.New("invalid map character")
	ErrMultipleStarts = errors.New("more than one start position")
)

// Map alphabet.
const (
	CharOpen      = '.'
	CharWall      = '#'
	CharStartN    = '^'
	CharStartE    = '>'
	CharStartS    = 'v'
	CharStartW    = '<'
	DefaultWallID = 1
)

// Heading is a cardinal direction used by start markers.
type Heading uint8

// Headings in clockwise order.
const (
	HeadingEast Heading = iota
	HeadingSouth
	HeadingWest
	HeadingNorth
)

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case HeadingEast:
		return "East"
	case HeadingSouth:
		return "South"
	case HeadingWest:
		return "West"
	case HeadingNorth:
		return "North"
	default:
		return fmt.Sprintf("Unknown(%d)", h)
	}
}

// Angle returns the heading in radians. Angles grow clockwise because
// the map's Y axis points south.
func (h Heading) Angle() float64 {
	return float64(h) * math.Pi / 2
}

// Cell is a single grid square.
type Cell struct {
	Wall     bool
	WallType int // 0 for open cells
}

// Start is the player spawn cell declared by a start marker.
type Start struct {
	Col, Row int
	Facing   Heading
}

// Grid is a parsed ASCII map. It is never modified after parsing.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell

	start    Start
	hasStart bool
	open     int
}

// Cell returns the cell at (col, row) and whether the coordinates are in bounds.
func (g *Grid) Cell(col, row int) (Cell, bool) {
	if !g.InBounds(col, row) {
		return Cell{}, false
	}
	return g.Cells[row*g.Width+col], true
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Width && row < g.Height
}

// IsWall reports whether (col, row) is a wall. Out-of-bounds cells are not walls.
func (g *Grid) IsWall(col, row int) bool {
	c, ok := g.Cell(col, row)
	return ok && c.Wall
}

// OpenCells returns the number of non-wall cells.
func (g *Grid) OpenCells() int {
	return g.open
}

// Start returns the declared start position, if the map has one.
func (g *Grid) Start() (Start, bool) {
	return g.start, g.hasStart
}

// LoadASCIIMap reads and parses an ASCII map file.
func LoadASCIIMap(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	return ParseASCIIMap(data)
}

// ParseASCIIMap parses a line-oriented ASCII map. Each non-empty line is a
// row and each byte a cell.
func ParseASCIIMap(data []byte) (*Grid, error) {
	var rows [][]byte
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	width := len(rows[0])
	g := &Grid{
		Width:  width,
		Height: len(rows),
		Cells:  make([]Cell, 0, width*len(rows)),
	}

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedMap, row+1, len(line), width)
		}
		for col, ch := range line {
			cell, heading, isStart, err := parseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", err, ch, row+1, col+1)
			}
			if isStart {
				if g.hasStart {
					return nil, fmt.Errorf("%w: row %d, column %d", ErrMultipleStarts, row+1, col+1)
				}
				g.start = Start{Col: col, Row: row, Facing: heading}
				g.hasStart = true
			}
			if !cell.Wall {
				g.open++
			}
			g.Cells = append(g.Cells, cell)
		}
	}

	if g.open == 0 {
		return nil, ErrEmptyMap
	}
	return g, nil
}

func parseCell(ch byte) (Cell, Heading, bool, error) {
	switch {
	case ch == CharOpen:
		return Cell{}, 0, false, nil
	case ch == CharWall:
		return Cell{Wall: true, WallType: DefaultWallID}, 0, false, nil
	case ch >= '1' && ch <= '9':
		return Cell{Wall: true, WallType: int(ch - '0')}, 0, false, nil
	case ch == CharStartN:
		return Cell{}, HeadingNorth, true, nil
	case ch == CharStartE:
		return Cell{}, HeadingEast, true, nil
	case ch == CharStartS:
		return Cell{}, HeadingSouth, true, nil
	case ch == CharStartW:
		return Cell{}, HeadingWest, true, nil
	default:
		return Cell{}, 0, false, ErrInvalidCell
	}
}
