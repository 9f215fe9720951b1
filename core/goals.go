package core

import (
	"math"
	"sort"
)

// GoalSet is a non-empty set of goal states resolved against one Graph.
// The zero value contains nothing and is rejected by every algorithm.
type GoalSet struct {
	g       *Graph
	members []int
	mask    []bool
}

// NewGoalSet resolves names against g. Duplicate names are collapsed.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrEmptyGoalSet if names is empty.
//   - ErrUnknownState (in *StateError) for the first name absent from g.
//
// Complexity: O(V + len(names)).
func NewGoalSet(g *Graph, names ...string) (GoalSet, error) {
	if g == nil {
		return GoalSet{}, ErrNilGraph
	}
	if len(names) == 0 {
		return GoalSet{}, stateErr("NewGoalSet", "", ErrEmptyGoalSet)
	}
	gs := GoalSet{g: g, mask: make([]bool, g.Len())}
	for _, name := range names {
		i, ok := g.index[name]
		if !ok {
			return GoalSet{}, stateErr("NewGoalSet", name, ErrUnknownState)
		}
		if gs.mask[i] {
			continue
		}
		gs.mask[i] = true
		gs.members = append(gs.members, i)
	}

	return gs, nil
}

// Contains reports whether state index i is a goal.
func (s GoalSet) Contains(i int) bool {
	return i >= 0 && i < len(s.mask) && s.mask[i]
}

// Indices returns the goal indices in the order they were supplied.
func (s GoalSet) Indices() []int { return append([]int(nil), s.members...) }

// Graph returns the Graph the set was resolved against (nil for the zero value).
func (s GoalSet) Graph() *Graph { return s.g }

// Len returns the number of distinct goals.
func (s GoalSet) Len() int { return len(s.members) }

// Names returns the goal names in the order they were supplied.
func (s GoalSet) Names() []string {
	out := make([]string, len(s.members))
	for k, i := range s.members {
		out[k] = s.g.names[i]
	}

	return out
}

// Heuristic holds a non-negative cost-to-goal estimate per state.
// States without an entry estimate 0. The zero value estimates 0 everywhere.
type Heuristic struct {
	g      *Graph
	values []float64
}

// NewHeuristic resolves table against g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrUnknownState for a state absent from g (reported in name order,
//     so the error is deterministic).
//   - ErrNegativeEstimate for a negative or NaN value.
//
// Complexity: O(V + K log K), K = len(table).
func NewHeuristic(g *Graph, table map[string]float64) (Heuristic, error) {
	if g == nil {
		return Heuristic{}, ErrNilGraph
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	h := Heuristic{g: g, values: make([]float64, g.Len())}
	for _, name := range names {
		v := table[name]
		i, ok := g.index[name]
		if !ok {
			return Heuristic{}, stateErr("NewHeuristic", name, ErrUnknownState)
		}
		if v < 0 || math.IsNaN(v) {
			return Heuristic{}, stateErr("NewHeuristic", name, ErrNegativeEstimate)
		}
		h.values[i] = v
	}

	return h, nil
}

// ZeroHeuristic returns the all-zero heuristic for g.
func ZeroHeuristic(g *Graph) Heuristic {
	return Heuristic{g: g, values: make([]float64, g.Len())}
}

// At returns the estimate for state index i.
func (h Heuristic) At(i int) float64 {
	if i < 0 || i >= len(h.values) {
		return 0
	}
	return h.values[i]
}

// Of returns the estimate for the named state.
func (h Heuristic) Of(name string) (float64, bool) {
	if h.g == nil {
		return 0, false
	}
	i, ok := h.g.index[name]
	if !ok {
		return 0, false
	}

	return h.values[i], true
}

// Graph returns the Graph the heuristic was resolved against (nil for the zero value).
func (h Heuristic) Graph() *Graph { return h.g }
