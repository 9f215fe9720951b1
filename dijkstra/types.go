// Package dijkstra defines result types and configuration options for the
// exact shortest-distance computations used as ground truth by lvsearch.
package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("%w: dijkstra: graph is nil", core.ErrConfiguration)

	// ErrSourceNotFound indicates that the source state does not exist in the graph.
	ErrSourceNotFound = fmt.Errorf("%w: dijkstra: source state not found in graph", core.ErrConfiguration)

	// ErrGoalSetMismatch indicates a GoalSet that was not resolved against the graph.
	ErrGoalSetMismatch = fmt.Errorf("%w: dijkstra: goal set does not match graph", core.ErrConfiguration)
)

// Options configures a Dijkstra run.
//
// Ctx – cancellation and deadlines, checked once per settled state.
type Options struct {
	Ctx context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Distances maps every state of a graph to an exact shortest distance.
// Unreachable states hold +Inf.
type Distances struct {
	g    *core.Graph
	dist []float64
}

// At returns the distance of state index i.
func (d Distances) At(i int) float64 { return d.dist[i] }

// Of returns the distance of the named state; ok is false for an unknown name.
func (d Distances) Of(name string) (dist float64, ok bool) {
	i, ok := d.g.Index(name)
	if !ok {
		return math.Inf(1), false
	}

	return d.dist[i], true
}

// Reachable reports whether state index i has a finite distance.
func (d Distances) Reachable(i int) bool { return !math.IsInf(d.dist[i], 1) }

// Len returns the number of states covered.
func (d Distances) Len() int { return len(d.dist) }

// Slice returns a copy of all distances in index order.
func (d Distances) Slice() []float64 { return append([]float64(nil), d.dist...) }
