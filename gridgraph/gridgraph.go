package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadThreshold for
// LandThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minCost := 0
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.LandThreshold && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
		minCost:         minCost,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// StateName formats the state identifier for cell (x,y).
func StateName(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the GridGraph into a directed *core.Graph.
// Each passable cell (x,y) becomes a state "x,y", declared in row-major
// order; successors follow NeighborOffsets order. Moving into a cell costs
// that cell's value, so the graph is asymmetric when neighbors differ.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	cells := gg.Width * gg.Height
	b := core.NewBuilder()
	for idx := 0; idx < cells; idx++ {
		if x, y := gg.Coordinate(idx); gg.Passable(x, y) {
			_ = b.AddState(StateName(x, y))
		}
	}
	for idx := 0; idx < cells; idx++ {
		x, y := gg.Coordinate(idx)
		if !gg.Passable(x, y) {
			continue
		}
		from := StateName(x, y)
		for _, d := range gg.neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.Passable(nx, ny) {
				continue
			}
			if err := b.AddEdge(from, StateName(nx, ny), float64(gg.CellValues[ny][nx])); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}

// Heuristic estimates, for every state of g, the cheapest conceivable cost
// to the nearest of goals: the move distance (Manhattan for Conn4, Chebyshev
// for Conn8) times the cheapest passable cell. One move changes that
// distance by at most one and costs at least the cheapest cell, so the
// estimate is consistent and therefore optimistic.
//
// g must come from gg.ToCoreGraph. Returns ErrNotPassable for a goal that is
// out of bounds or a wall.
// Complexity: O(V×G), G = len(goals).
func (gg *GridGraph) Heuristic(g *core.Graph, goals ...[2]int) (core.Heuristic, error) {
	for _, p := range goals {
		if !gg.Passable(p[0], p[1]) {
			return core.Heuristic{}, fmt.Errorf("%w: goal (%d,%d)", ErrNotPassable, p[0], p[1])
		}
	}

	table := make(map[string]float64, g.Len())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			best := -1
			for _, p := range goals {
				if d := gg.distance(x, y, p[0], p[1]); best < 0 || d < best {
					best = d
				}
			}
			if best > 0 {
				table[StateName(x, y)] = float64(best * gg.minCost)
			}
		}
	}

	return core.NewHeuristic(g, table)
}

// distance is the minimum number of moves between two cells on an open grid.
func (gg *GridGraph) distance(x1, y1, x2, y2 int) int {
	dx, dy := abs(x1-x2), abs(y1-y2)
	if gg.Conn == Conn8 {
		return max(dx, dy)
	}
	return dx + dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Coordinate converts a row-major index back to (x,y); ToCoreGraph walks
// cells in this order.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
