package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

// buildLine returns A→B(2), B→Goal(2).
func buildLine(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 2))
	require.NoError(t, b.AddEdge("B", "Goal", 2))
	require.NoError(t, b.AddState("Goal"))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestNewGoalSet(t *testing.T) {
	g := buildLine(t)

	_, err := core.NewGoalSet(g)
	require.ErrorIs(t, err, core.ErrEmptyGoalSet)
	require.ErrorIs(t, err, core.ErrConfiguration)

	_, err = core.NewGoalSet(g, "Goal", "Nowhere")
	require.ErrorIs(t, err, core.ErrUnknownState)
	var se *core.StateError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Nowhere", se.State)

	gs, err := core.NewGoalSet(g, "Goal", "B", "Goal")
	require.NoError(t, err)
	assert.Equal(t, 2, gs.Len())
	assert.Equal(t, []string{"Goal", "B"}, gs.Names())
	assert.Same(t, g, gs.Graph())
	assert.True(t, gs.Contains(2))
	assert.False(t, gs.Contains(0))
	assert.False(t, gs.Contains(-1))
	assert.False(t, gs.Contains(42))
}

func TestNewHeuristic(t *testing.T) {
	g := buildLine(t)

	h, err := core.NewHeuristic(g, map[string]float64{"A": 3, "B": 1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, h.At(0))
	assert.Equal(t, 1.0, h.At(1))
	assert.Equal(t, 0.0, h.At(2), "absent entries default to zero")
	v, ok := h.Of("B")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
	assert.Same(t, g, h.Graph())

	_, err = core.NewHeuristic(g, map[string]float64{"Z": 1, "Y": 1})
	require.ErrorIs(t, err, core.ErrUnknownState)
	assert.Contains(t, err.Error(), `"Y"`, "unknown names are reported in sorted order")

	_, err = core.NewHeuristic(g, map[string]float64{"A": -0.5})
	require.ErrorIs(t, err, core.ErrNegativeEstimate)

	_, err = core.NewHeuristic(g, map[string]float64{"A": math.NaN()})
	require.ErrorIs(t, err, core.ErrNegativeEstimate)
}

// TestConstructors_NilGraph returns an error instead of dereferencing nil.
func TestConstructors_NilGraph(t *testing.T) {
	_, err := core.NewGoalSet(nil, "Goal")
	require.ErrorIs(t, err, core.ErrNilGraph)
	require.ErrorIs(t, err, core.ErrConfiguration)

	_, err = core.NewHeuristic(nil, map[string]float64{"A": 1})
	require.ErrorIs(t, err, core.ErrNilGraph)
	require.ErrorIs(t, err, core.ErrConfiguration)
}

func TestZeroHeuristic(t *testing.T) {
	g := buildLine(t)
	h := core.ZeroHeuristic(g)
	for i := 0; i < g.Len(); i++ {
		assert.Zero(t, h.At(i))
	}

	var zero core.Heuristic
	_, ok := zero.Of("A")
	assert.False(t, ok)
	assert.Zero(t, zero.At(0))
}
