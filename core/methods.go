package core

// Len returns the number of states N.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.names) }

// EdgeCount returns the number of distinct transitions.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Has reports whether a state with the given name exists.
// Complexity: O(1).
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Index returns the dense index of name.
// Complexity: O(1).
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Name returns the state with index i. It panics if i is out of range,
// like a slice access would.
func (g *Graph) Name(i int) string { return g.names[i] }

// States returns all state names in index order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) States() []string {
	return append([]string(nil), g.names...)
}

// Successors returns the transitions leaving name in insertion order.
// The slice is a copy. Returns ErrUnknownState for an absent state.
// Complexity: O(d).
func (g *Graph) Successors(name string) ([]Edge, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, stateErr("Successors", name, ErrUnknownState)
	}

	return append([]Edge(nil), g.succ[i]...), nil
}

// SuccessorsAt returns the transitions leaving state i in insertion order.
// The returned slice is shared with the Graph and must not be modified;
// it exists for allocation-free inner loops.
func (g *Graph) SuccessorsAt(i int) []Edge { return g.succ[i] }

// PredecessorsAt returns the transitions entering state i, ordered by source
// index. Shared with the Graph; must not be modified.
func (g *Graph) PredecessorsAt(i int) []Edge { return g.pred[i] }

// Cost returns the cost of transition from→to, if it exists.
// Complexity: O(d(from)).
func (g *Graph) Cost(from, to string) (float64, bool) {
	i, ok := g.index[from]
	if !ok {
		return 0, false
	}
	for _, e := range g.succ[i] {
		if e.To == to {
			return e.Cost, true
		}
	}

	return 0, false
}

// Edges returns every transition, grouped by source in index order and in
// insertion order within a source. The slice is a copy.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	all := make([]Edge, 0, g.edges)
	for _, out := range g.succ {
		all = append(all, out...)
	}

	return all
}
