package search_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// TestRun_Errors verifies that invalid input is rejected before any expansion.
func TestRun_Errors(t *testing.T) {
	g := triangle(t)
	expanded := 0
	count := search.WithOnExpand(func(string, float64) error { expanded++; return nil })

	_, err := search.Run(nil, search.BFS, "A", []string{"C"})
	assert.ErrorIs(t, err, search.ErrGraphNil)

	_, err = search.Run(g, search.Strategy(7), "A", []string{"C"}, count)
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, err = search.Run(g, search.BFS, "Nowhere", []string{"C"}, count)
	assert.ErrorIs(t, err, search.ErrStartNotFound)
	assert.ErrorIs(t, err, core.ErrConfiguration)

	res, err := search.Run(g, search.UCS, "A", []string{"Missing"}, count)
	assert.ErrorIs(t, err, core.ErrUnknownState)
	assert.Nil(t, res)

	_, err = search.Run(g, search.UCS, "A", nil, count)
	assert.ErrorIs(t, err, core.ErrEmptyGoalSet)

	_, err = search.Run(g, search.AStar, "A", []string{"C"}, count)
	assert.ErrorIs(t, err, search.ErrHeuristicRequired)

	other := triangle(t)
	_, err = search.Run(g, search.AStar, "A", []string{"C"}, count, search.WithHeuristic(core.ZeroHeuristic(other)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Run(g, search.BFS, "A", []string{"C"}, count, search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	assert.Zero(t, expanded, "no state may be expanded when configuration is invalid")
}

// TestRun_BFSPrefersFewerEdges: A→C directly beats A→B→C for BFS.
func TestRun_BFSPrefersFewerEdges(t *testing.T) {
	res, err := search.Run(triangle(t), search.BFS, "A", []string{"C"})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 2, res.PathLength)
	assert.Equal(t, 5.0, res.TotalCost)
	assert.Equal(t, 3, res.StatesVisited)
	assert.Equal(t, "A => C", res.PathString())
}

// TestRun_UCSPrefersCheaper: A→B→C costs 2 against 5.
func TestRun_UCSPrefersCheaper(t *testing.T) {
	res, err := search.Run(triangle(t), search.UCS, "A", []string{"C"})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 3, res.PathLength)
	assert.Equal(t, 2.0, res.TotalCost)
	assert.Equal(t, 3, res.StatesVisited)
	assert.Equal(t, search.UCS, res.Strategy)
}

// TestRun_TieBreakByName: equal-cost routes resolve by state name, whatever
// the insertion order of successors.
func TestRun_TieBreakByName(t *testing.T) {
	g := buildGraph(t, []string{"A", "Y", "X", "G"}, []edge{
		{"A", "Y", 1}, {"A", "X", 1}, {"Y", "G", 1}, {"X", "G", 1},
	})
	h, err := core.NewHeuristic(g, map[string]float64{"X": 1, "Y": 1})
	require.NoError(t, err)

	for _, s := range []search.Strategy{search.UCS, search.AStar} {
		res, err := search.Run(g, s, "A", []string{"G"}, search.WithHeuristic(h))
		require.NoError(t, err, s)
		assert.Equal(t, []string{"A", "X", "G"}, res.Path, s)
		assert.Equal(t, 2.0, res.TotalCost, s)
	}

	// BFS follows insertion order instead.
	res, err := search.Run(g, search.BFS, "A", []string{"G"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Y", "G"}, res.Path)
}

// TestRun_StartIsGoal returns the start without expanding anything.
func TestRun_StartIsGoal(t *testing.T) {
	g := triangle(t)
	h, err := core.NewHeuristic(g, nil)
	require.NoError(t, err)
	for _, s := range []search.Strategy{search.BFS, search.UCS, search.AStar} {
		expanded := 0
		res, err := search.Run(g, s, "A", []string{"A", "C"},
			search.WithHeuristic(h),
			search.WithOnExpand(func(string, float64) error { expanded++; return nil }),
		)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Zero(t, res.StatesVisited)
		assert.Zero(t, res.Expansions)
		assert.Zero(t, expanded)
		assert.Equal(t, 1, res.PathLength)
		assert.Zero(t, res.TotalCost)
		assert.Equal(t, []string{"A"}, res.Path)
	}
}

// TestRun_NotFound exhausts the frontier; the path describes the last pop.
func TestRun_NotFound(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "Island"}, []edge{{"A", "B", 3}})

	for _, s := range []search.Strategy{search.BFS, search.UCS} {
		res, err := search.Run(g, s, "A", []string{"Island"})
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, 2, res.StatesVisited)
		assert.Equal(t, []string{"A", "B"}, res.Path)
		assert.Equal(t, 3.0, res.TotalCost)
	}
}

// TestRun_AStarReexpansion uses an admissible but inconsistent heuristic that
// finalizes C too early; the cheaper route must re-open it.
func TestRun_AStarReexpansion(t *testing.T) {
	g := buildGraph(t, []string{"S", "A", "B", "C", "G"}, []edge{
		{"S", "A", 1}, {"S", "B", 1}, {"A", "C", 1}, {"B", "C", 2}, {"C", "G", 10},
	})
	h, err := core.NewHeuristic(g, map[string]float64{"A": 5})
	require.NoError(t, err)

	res, err := search.Run(g, search.AStar, "S", []string{"G"}, search.WithHeuristic(h))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 12.0, res.TotalCost)
	assert.Equal(t, []string{"S", "A", "C", "G"}, res.Path)
	assert.Equal(t, 5, res.StatesVisited)
	assert.Equal(t, 6, res.Expansions, "C is expanded twice")
	assert.LessOrEqual(t, res.StatesVisited, g.Len())
}

// TestRun_ExpansionOrder records BFS expansions through the hook.
func TestRun_ExpansionOrder(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D", "E"}, []edge{
		{"A", "C", 1}, {"A", "B", 1}, {"B", "D", 1}, {"C", "E", 1}, {"D", "E", 1},
	})
	var order []string
	res, err := search.Run(g, search.BFS, "A", []string{"E"}, search.WithOnExpand(func(s string, _ float64) error {
		order = append(order, s)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "E"}, order)
	assert.Equal(t, []string{"A", "C", "E"}, res.Path)
}

func TestRun_OnExpandError(t *testing.T) {
	boom := errors.New("boom")
	_, err := search.Run(triangle(t), search.UCS, "A", []string{"C"}, search.WithOnExpand(func(s string, _ float64) error {
		if s == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"B"`)
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Run(triangle(t), search.BFS, "A", []string{"C"}, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_MaxExpansions(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d", "e"}, []edge{
		{"a", "b", 1}, {"b", "c", 1}, {"c", "d", 1}, {"d", "e", 1},
	})
	_, err := search.Run(g, search.UCS, "a", []string{"e"}, search.WithMaxExpansions(3))
	require.ErrorIs(t, err, search.ErrExpansionLimit)

	res, err := search.Run(g, search.UCS, "a", []string{"e"}, search.WithMaxExpansions(5))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestRun_Idempotent: same input, same result.
func TestRun_Idempotent(t *testing.T) {
	g := randomGraph(t, 7, 40, 160)
	for _, s := range []search.Strategy{search.BFS, search.UCS} {
		first, err := search.Run(g, s, "s0", []string{"s39", "s20"})
		require.NoError(t, err)
		second, err := search.Run(g, s, "s0", []string{"s39", "s20"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

type recordingObserver struct {
	calls []search.Strategy
	errs  []error
}

func (o *recordingObserver) ObserveSearch(s search.Strategy, _ *search.Result, err error, _ time.Duration) {
	o.calls = append(o.calls, s)
	o.errs = append(o.errs, err)
}

func TestRun_ObserverAndLogger(t *testing.T) {
	obs := &recordingObserver{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := search.Run(triangle(t), search.UCS, "A", []string{"C"}, search.WithObserver(obs), search.WithLogger(logger))
	require.NoError(t, err)
	_, err = search.Run(triangle(t), search.BFS, "Z", []string{"C"}, search.WithObserver(obs))
	require.Error(t, err)

	assert.Equal(t, []search.Strategy{search.UCS, search.BFS}, obs.calls)
	assert.NoError(t, obs.errs[0])
	assert.ErrorIs(t, obs.errs[1], search.ErrStartNotFound)
	assert.Contains(t, buf.String(), "search finished")
	assert.Contains(t, buf.String(), "strategy=ucs")
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]search.Strategy{
		"bfs": search.BFS, "UCS": search.UCS, "astar": search.AStar, "A*": search.AStar, " a-star ": search.AStar,
	} {
		got, err := search.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseStrategy("dfs")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	assert.Equal(t, "A-STAR", search.AStar.Title())
	assert.Equal(t, "BFS", search.BFS.Title())
	assert.Equal(t, "astar", search.AStar.String())
	assert.Equal(t, "Strategy(9)", search.Strategy(9).String())
}
