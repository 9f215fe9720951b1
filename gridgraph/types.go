package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: gridgraph: input grid must have at least one row and one column", core.ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: gridgraph: all rows must have the same length", core.ErrConfiguration)
	// ErrBadThreshold indicates a LandThreshold below 1, which would make
	// zero-cost or negative-cost cells passable.
	ErrBadThreshold = fmt.Errorf("%w: gridgraph: LandThreshold must be at least 1", core.ErrConfiguration)
	// ErrNotPassable indicates a coordinate that is out of bounds or a wall.
	ErrNotPassable = errors.New("gridgraph: cell is out of bounds or not passable")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable.
	// Cells below it are walls.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a state space. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the cost of
// entering cell (x,y). Conn and LandThreshold are set from GridOptions.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
	minCost         int // cheapest passable cell, 0 if none
}
