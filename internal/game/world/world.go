// Package world holds the loaded level: its cell grid and the wall geometry
// derived from it.
package world

import (
	"fmt"

	"github.com/Faultbox/wolfcast/pkg/formats"
)

// Map represents a loaded game map.
type Map struct {
	Name string

	// Grid is the parsed cell grid.
	Grid *formats.Grid

	// Vectors is the wall geometry shared by collision and rendering.
	Vectors *VectorMap
}

// NewMap builds a map from an already parsed grid.
func NewMap(name string, grid *formats.Grid) *Map {
	return &Map{
		Name:    name,
		Grid:    grid,
		Vectors: NewVectorMap(grid),
	}
}

// LoadMap parses ASCII map data and builds its vector map.
// No partial map is returned on failure.
func LoadMap(name string, data []byte) (*Map, error) {
	grid, err := formats.ParseASCIIMap(data)
	if err != nil {
		return nil, fmt.Errorf("loading map %s: %w", name, err)
	}
	return NewMap(name, grid), nil
}

// IsWalkable checks if a cell is open.
func (m *Map) IsWalkable(col, row int) bool {
	return m.Grid.InBounds(col, row) && !m.Grid.IsWall(col, row)
}
