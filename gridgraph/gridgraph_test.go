package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	zero := gridgraph.DefaultGridOptions()
	zero.LandThreshold = 0
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"ZeroThreshold", [][]int{{1}}, zero, gridgraph.ErrBadThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, core.ErrConfiguration)
		})
	}
}

// TestInBounds checks InBounds and Passable on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.True(t, gg.Passable(1, 0))
	assert.False(t, gg.Passable(0, 0), "wall")
	assert.False(t, gg.Passable(5, 5), "outside")
}

// TestNewGridGraph_DeepCopy verifies later mutation of the input has no effect.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	grid[0][1] = 0
	assert.Equal(t, 2, gg.CellValues[0][1])
}

func TestCoordinate(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	x, y := gg.Coordinate(4)
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})
	assert.Len(t, gg.NeighborOffsets(), 4)
}

// TestToCoreGraph_RowMajorIndices checks that state indices follow the
// row-major cell order given by Coordinate, skipping walls.
func TestToCoreGraph_RowMajorIndices(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 2}, {0, 3, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	var want []string
	for idx := 0; idx < gg.Width*gg.Height; idx++ {
		if x, y := gg.Coordinate(idx); gg.Passable(x, y) {
			want = append(want, gridgraph.StateName(x, y))
		}
	}
	assert.Equal(t, []string{"0,0", "2,0", "1,1", "2,1"}, want)
	assert.Equal(t, want, cg.States())
}

//----------------------------------------------------------------------------//
// ToCoreGraph Tests
//----------------------------------------------------------------------------//

// TestToCoreGraph_Conn4 verifies that only orthogonal edges exist under Conn4.
func TestToCoreGraph_Conn4(t *testing.T) {
	grid := [][]int{{1, 0}, {3, 2}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	assert.Equal(t, []string{"0,0", "0,1", "1,1"}, cg.States(), "walls are dropped, row-major order")

	// entering a cell costs its value, in both directions
	for _, e := range []struct {
		u, v string
		c    float64
	}{{"0,0", "0,1", 3}, {"0,1", "0,0", 1}, {"0,1", "1,1", 2}, {"1,1", "0,1", 3}} {
		c, ok := cg.Cost(e.u, e.v)
		if assert.True(t, ok, "edge %s -> %s", e.u, e.v) {
			assert.Equal(t, e.c, c, "edge %s -> %s", e.u, e.v)
		}
	}
	_, ok := cg.Cost("0,0", "1,1")
	assert.False(t, ok, "no diagonal edge under Conn4")
	assert.Equal(t, 4, cg.EdgeCount())
}

// TestToCoreGraph_Conn8 verifies diagonal connectivity under Conn8.
func TestToCoreGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {0, 1}}, opts)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	_, ok := cg.Cost("0,0", "1,1")
	assert.True(t, ok, "diagonal edge under Conn8")
	_, ok = cg.Cost("1,1", "0,0")
	assert.True(t, ok)
	assert.Equal(t, 2, cg.EdgeCount())
}

// TestToCoreGraph_Threshold verifies cells below LandThreshold are walls.
func TestToCoreGraph_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 3
	gg, err := gridgraph.NewGridGraph([][]int{{3, 2, 5}}, opts)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "2,0"}, cg.States())
	assert.Zero(t, cg.EdgeCount())
}

//----------------------------------------------------------------------------//
// Heuristic Tests
//----------------------------------------------------------------------------//

func TestHeuristic_Values(t *testing.T) {
	grid := [][]int{
		{2, 2, 2},
		{2, 5, 2},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	h, err := gg.Heuristic(cg, [2]int{2, 1})
	require.NoError(t, err)
	for name, want := range map[string]float64{"0,0": 6, "1,0": 4, "2,0": 2, "0,1": 4, "1,1": 2, "2,1": 0} {
		got, ok := h.Of(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	// nearest of several goals
	h, err = gg.Heuristic(cg, [2]int{2, 1}, [2]int{0, 0})
	require.NoError(t, err)
	got, _ := h.Of("1,0")
	assert.Equal(t, 2.0, got)
}

func TestHeuristic_Conn8Chebyshev(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, opts)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)
	h, err := gg.Heuristic(cg, [2]int{2, 2})
	require.NoError(t, err)
	got, _ := h.Of("0,0")
	assert.Equal(t, 2.0, got)
}

func TestHeuristic_BadGoal(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	_, err = gg.Heuristic(cg, [2]int{1, 0})
	assert.ErrorIs(t, err, gridgraph.ErrNotPassable)
	_, err = gg.Heuristic(cg, [2]int{4, 0})
	assert.ErrorIs(t, err, gridgraph.ErrNotPassable)
}

// TestHeuristic_Admissible verifies the grid heuristic passes both checks
// and lets A* match the UCS cost on a maze with varied costs.
func TestHeuristic_Admissible(t *testing.T) {
	grid := [][]int{
		{1, 1, 1, 0, 4, 1},
		{3, 0, 2, 0, 1, 1},
		{1, 1, 9, 1, 1, 0},
		{0, 2, 0, 7, 1, 1},
		{1, 1, 1, 1, 0, 1},
	}
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		opts := gridgraph.DefaultGridOptions()
		opts.Conn = conn
		gg, err := gridgraph.NewGridGraph(grid, opts)
		require.NoError(t, err)
		cg, err := gg.ToCoreGraph()
		require.NoError(t, err)
		goal := gridgraph.StateName(5, 4)
		h, err := gg.Heuristic(cg, [2]int{5, 4})
		require.NoError(t, err)

		rep, err := heuristic.CheckConsistent(cg, h)
		require.NoError(t, err)
		assert.True(t, rep.Verdict, "consistent, conn=%d: %v", conn, rep.Failures())
		rep, err = heuristic.CheckOptimistic(cg, []string{goal}, h)
		require.NoError(t, err)
		assert.True(t, rep.Verdict, "optimistic, conn=%d: %v", conn, rep.Failures())

		ucs, err := search.Run(cg, search.UCS, "0,0", []string{goal})
		require.NoError(t, err)
		astar, err := search.Run(cg, search.AStar, "0,0", []string{goal}, search.WithHeuristic(h))
		require.NoError(t, err)
		require.True(t, ucs.Found)
		assert.Equal(t, ucs.TotalCost, astar.TotalCost)
	}
}
