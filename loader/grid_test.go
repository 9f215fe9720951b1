package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/search"
)

const arena = `; 4x3 arena
S.#G

.5.1
1#..
`

func TestParseGrid(t *testing.T) {
	ss, err := loader.ParseGrid(strings.NewReader(arena), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, "0,0", ss.Start)
	assert.Equal(t, []string{"3,0"}, ss.Goals)
	assert.Equal(t, 10, ss.Graph.Len(), "two walls out of twelve cells")
	assert.False(t, ss.Graph.Has("2,0"))

	c, ok := ss.Graph.Cost("0,1", "1,1")
	require.True(t, ok)
	assert.Equal(t, 5.0, c, "entering the 5 cell")

	require.NotNil(t, ss.Heuristic)
	v, _ := ss.Heuristic.Of("0,0")
	assert.Equal(t, 3.0, v, "manhattan distance times cheapest cell")

	res, err := search.Run(ss.Graph, search.AStar, ss.Start, ss.Goals, search.WithHeuristic(*ss.Heuristic))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 9.0, res.TotalCost, "the only way east crosses the 5 cell")
}

func TestParseGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
		is    error
	}{
		{"empty", "; nothing\n", 1, gridgraph.ErrEmptyGrid},
		{"ragged", "S.\n.G.\n", 2, gridgraph.ErrNonRectangular},
		{"bad cell", "S.\nx G\n", 2, nil},
		{"two starts", "S\nS\nG\n", 2, nil},
		{"no start", "..G\n", 1, nil},
		{"no goal", "S..\n", 1, core.ErrEmptyGoalSet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ParseGrid(strings.NewReader(tc.input), gridgraph.DefaultGridOptions())
			var se *loader.SyntaxError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tc.line, se.Line)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}

	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 2
	_, err := loader.ParseGrid(strings.NewReader("S3G\n"), opts)
	assert.ErrorIs(t, err, gridgraph.ErrNotPassable, "start costs 1, below the threshold")
}

func TestLoadGrid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "arena.grid")
	require.NoError(t, os.WriteFile(p, []byte(arena), 0o600))

	ss, err := loader.LoadStateSpace(p)
	require.NoError(t, err)
	assert.NotNil(t, ss.Heuristic)

	_, err = loader.LoadHeuristic(p, ss.Graph)
	assert.ErrorIs(t, err, loader.ErrGridHeuristic)

	require.NoError(t, os.WriteFile(p, []byte("S#\n#?\n"), 0o600))
	_, err = loader.LoadStateSpace(p)
	assert.Contains(t, err.Error(), p+":2")
}
