package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

// edge is a compact transition literal for test graphs.
type edge struct {
	from, to string
	cost     float64
}

// buildGraph declares states in order, then adds edges.
func buildGraph(t testing.TB, states []string, edges []edge) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, s := range states {
		require.NoError(t, b.AddState(s))
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e.from, e.to, e.cost))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// triangle is A→B(1), B→C(1), A→C(5).
func triangle(t testing.TB) *core.Graph {
	return buildGraph(t, []string{"A", "B", "C"}, []edge{
		{"A", "B", 1}, {"B", "C", 1}, {"A", "C", 5},
	})
}

// randomGraph builds n states "s0".."s(n-1)" with m random integer-cost edges
// in [0,9]. Integer costs keep every path sum exact in float64.
func randomGraph(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddState(fmt.Sprintf("s%d", i)))
	}
	for k := 0; k < m; k++ {
		u, v := r.Intn(n), r.Intn(n)
		require.NoError(t, b.AddEdge(fmt.Sprintf("s%d", u), fmt.Sprintf("s%d", v), float64(r.Intn(10))))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// distancesToGoals is a Bellman-Ford reference: exact cheapest cost from every
// state to any goal, +Inf when unreachable.
func distancesToGoals(g *core.Graph, goals []string) []float64 {
	dist := make([]float64, g.Len())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	for _, name := range goals {
		i, _ := g.Index(name)
		dist[i] = 0
	}
	for round := 0; round < g.Len(); round++ {
		changed := false
		for _, e := range g.Edges() {
			if d := e.Cost + dist[e.ToIndex]; d < dist[e.FromIndex] {
				dist[e.FromIndex] = d
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// hopsFrom returns the minimum edge count from start to every state, -1 if unreachable.
func hopsFrom(g *core.Graph, start string) []int {
	hops := make([]int, g.Len())
	for i := range hops {
		hops[i] = -1
	}
	s, _ := g.Index(start)
	hops[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.SuccessorsAt(u) {
			if hops[e.ToIndex] < 0 {
				hops[e.ToIndex] = hops[u] + 1
				queue = append(queue, e.ToIndex)
			}
		}
	}

	return hops
}

// pathCost sums the transition costs along path and fails if a step is missing.
func pathCost(t testing.TB, g *core.Graph, path []string) float64 {
	t.Helper()
	total := 0.0
	for k := 1; k < len(path); k++ {
		c, ok := g.Cost(path[k-1], path[k])
		require.Truef(t, ok, "no transition %s -> %s", path[k-1], path[k])
		total += c
	}

	return total
}
