// Package dijkstra implements exact shortest distances on a core.Graph.
//
// Two entry points share one runner:
//
//   - ToGoals: multi-source Dijkstra over the reversed graph, seeded with
//     distance 0 at every goal. The result is h*(s), the true cheapest cost
//     from s to any goal; this is the oracle for heuristic verification.
//   - From: classic single-source Dijkstra over forward transitions.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Each state is settled at most once.
//   - Each relaxation may push a new heap entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for distances and settled flags.
//   - O(E) worst-case heap entries under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - Transition costs are validated by core.Builder, so no negative-weight
//     pre-scan is needed here.
//   - Distances only ever decrease; improved states are re-pushed and stale
//     heap entries are skipped on pop.
//   - Unreachable states keep +Inf.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// ToGoals computes, for every state, the minimum cost to reach any member of goals.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. goals must be non-empty (core.ErrEmptyGoalSet).
//  3. goals must have been resolved against g (ErrGoalSetMismatch).
//
// Returns ctx.Err() if the context is cancelled mid-run.
func ToGoals(g *core.Graph, goals core.GoalSet, opts ...Option) (Distances, error) {
	if g == nil {
		return Distances{}, ErrNilGraph
	}
	if goals.Len() == 0 {
		return Distances{}, core.ErrEmptyGoalSet
	}
	if goals.Graph() != g {
		return Distances{}, ErrGoalSetMismatch
	}

	r := newRunner(g, opts, reverse)
	for _, i := range goals.Indices() {
		r.seed(i)
	}
	if err := r.process(); err != nil {
		return Distances{}, err
	}

	return Distances{g: g, dist: r.dist}, nil
}

// From computes the minimum cost from source to every state.
//
// Errors: ErrNilGraph, ErrSourceNotFound, or ctx.Err().
func From(g *core.Graph, source string, opts ...Option) (Distances, error) {
	if g == nil {
		return Distances{}, ErrNilGraph
	}
	s, ok := g.Index(source)
	if !ok {
		return Distances{}, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	r := newRunner(g, opts, forward)
	r.seed(s)
	if err := r.process(); err != nil {
		return Distances{}, err
	}

	return Distances{g: g, dist: r.dist}, nil
}

// direction selects which adjacency the runner relaxes.
type direction int

const (
	forward direction = iota
	reverse
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // read-only input
	ctx     context.Context // cancellation
	dir     direction       // forward: successors, reverse: predecessors
	dist    []float64       // state index → best known distance
	settled []bool          // state index → distance is final
	pq      nodePQ          // min-heap of *nodeItem for lazy priority queue
}

func newRunner(g *core.Graph, opts []Option, dir direction) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Len()
	r := &runner{
		g:       g,
		ctx:     cfg.Ctx,
		dir:     dir,
		dist:    make([]float64, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	heap.Init(&r.pq)

	return r
}

// seed sets state i to distance 0 and pushes it.
func (r *runner) seed(i int) {
	r.dist[i] = 0
	heap.Push(&r.pq, &nodeItem{id: i, dist: 0})
}

// process repeatedly settles the closest unsettled state and relaxes its edges
// until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] {
			continue // stale entry
		}
		r.settled[item.id] = true
		r.relax(item.id)
	}

	return nil
}

// relax tries to improve every neighbour of the settled state u.
// In reverse mode an edge s→u means s can reach the goals through u.
func (r *runner) relax(u int) {
	var edges []core.Edge
	if r.dir == reverse {
		edges = r.g.PredecessorsAt(u)
	} else {
		edges = r.g.SuccessorsAt(u)
	}

	for _, e := range edges {
		v := e.ToIndex
		if r.dir == reverse {
			v = e.FromIndex
		}
		if r.settled[v] {
			continue
		}
		// strictly better only, so equal distances do not push duplicates
		if nd := r.dist[u] + e.Cost; nd < r.dist[v] {
			r.dist[v] = nd
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}
}

// nodeItem represents a state and a tentative distance.
type nodeItem struct {
	id   int     // state index
	dist float64 // tentative distance
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by index so the
// settle order is deterministic.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
