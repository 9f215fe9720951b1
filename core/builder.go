package core

import "math"

// BuilderOption configures a Builder before any state is added.
type BuilderOption func(*Builder)

// WithImplicitStates lets Build declare, without successors, any state that
// only ever appears as the target of a transition. Such states are indexed
// after all explicitly declared ones, in order of first reference.
// Without this option Build fails with ErrUnknownState.
func WithImplicitStates() BuilderOption {
	return func(b *Builder) { b.implicit = true }
}

// pendingEdge is a transition whose target may not be declared yet.
type pendingEdge struct {
	to   string
	cost float64
}

// Builder accumulates states and transitions and produces an immutable Graph.
// A Builder is not safe for concurrent use. After the first error every
// further call is a no-op and Build returns that error.
type Builder struct {
	implicit bool

	names []string
	index map[string]int

	// out[i] holds transitions of state i in insertion order;
	// pos[i][to] is the position of the transition to `to` within out[i].
	out [][]pendingEdge
	pos []map[string]int

	// referenced keeps first-reference order of transition targets.
	referenced []string
	seenRef    map[string]struct{}

	err error
}

// NewBuilder returns an empty Builder.
// Complexity: O(1).
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		index:   make(map[string]int),
		seenRef: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddState declares a state. Declaring an existing state is a no-op, so the
// index assigned on first declaration is kept.
// Complexity: O(1) amortized.
func (b *Builder) AddState(name string) error {
	if b.err != nil {
		return b.err
	}
	if name == "" {
		b.err = stateErr("AddState", name, ErrEmptyStateName)
		return b.err
	}
	b.declare(name)

	return nil
}

func (b *Builder) declare(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	i := len(b.names)
	b.names = append(b.names, name)
	b.index[name] = i
	b.out = append(b.out, nil)
	b.pos = append(b.pos, nil)

	return i
}

// AddEdge records the transition from→to with the given cost, declaring
// `from` if needed. A repeated (from,to) pair overwrites the previous cost
// and keeps the original successor position.
// Returns ErrEmptyStateName or ErrNegativeCost wrapped in *StateError.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, cost float64) error {
	if b.err != nil {
		return b.err
	}
	if from == "" || to == "" {
		b.err = stateErr("AddEdge", edgeLabel(from, to), ErrEmptyStateName)
		return b.err
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		b.err = stateErr("AddEdge", edgeLabel(from, to), ErrNegativeCost)
		return b.err
	}

	i := b.declare(from)
	if b.pos[i] == nil {
		b.pos[i] = make(map[string]int)
	}
	if p, ok := b.pos[i][to]; ok {
		b.out[i][p].cost = cost // later definitions overwrite
		return nil
	}
	b.pos[i][to] = len(b.out[i])
	b.out[i] = append(b.out[i], pendingEdge{to: to, cost: cost})

	if _, ok := b.seenRef[to]; !ok {
		b.seenRef[to] = struct{}{}
		b.referenced = append(b.referenced, to)
	}

	return nil
}

// Build resolves every transition target and returns the immutable Graph.
// The Builder must not be reused afterwards.
//
// Errors:
//   - the first error recorded by AddState/AddEdge;
//   - ErrUnknownState for a transition target that was never declared
//     (unless WithImplicitStates was given).
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Resolve targets that were never declared.
	for _, name := range b.referenced {
		if _, ok := b.index[name]; ok {
			continue
		}
		if !b.implicit {
			return nil, stateErr("Build", name, ErrUnknownState)
		}
		b.declare(name)
	}

	n := len(b.names)
	g := &Graph{
		names: append([]string(nil), b.names...),
		index: make(map[string]int, n),
		succ:  make([][]Edge, n),
		pred:  make([][]Edge, n),
	}
	for i, name := range g.names {
		g.index[name] = i
	}

	for i, out := range b.out {
		if len(out) == 0 {
			continue
		}
		edges := make([]Edge, len(out))
		for k, pe := range out {
			j := g.index[pe.to]
			edges[k] = Edge{
				From:      g.names[i],
				To:        pe.to,
				FromIndex: i,
				ToIndex:   j,
				Cost:      pe.cost,
			}
			g.pred[j] = append(g.pred[j], edges[k])
		}
		g.succ[i] = edges
		g.edges += len(edges)
	}

	return g, nil
}
