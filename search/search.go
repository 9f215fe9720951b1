// Package search runs breadth-first, uniform-cost and A* search over a
// core.Graph with one shared expand/visit loop.
//
// The three strategies differ only in two places:
//
//   - the frontier discipline (FIFO, cost heap, cost+estimate heap);
//   - the re-expansion guard: BFS finalizes a state on its first pop and never
//     revisits it, while UCS and A* keep the best finalized cost per state and
//     re-expand only when a strictly cheaper node is popped (lazy invalidation,
//     no decrease-key).
//
// The goal test happens on pop, so the returned solution is the first goal
// expanded, not the first goal generated.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// engine encapsulates mutable state for one search invocation.
type engine struct {
	g        *core.Graph
	strategy Strategy
	opts     Options
	ctx      context.Context
	log      *slog.Logger
	goals    core.GoalSet
	h        core.Heuristic

	open      frontier.Frontier
	finalized []bool
	best      []float64 // best finalized cost; unused by BFS
	res       *Result
}

// Run searches g from start until a state in goals is expanded or the
// frontier is exhausted.
//
// All configuration problems are reported before any node is expanded:
// ErrGraphNil, ErrUnknownStrategy, ErrOptionViolation, ErrStartNotFound,
// core.ErrEmptyGoalSet, core.ErrUnknownState (goal), ErrHeuristicRequired
// (A* without WithHeuristic) or a heuristic built for another graph.
// Runtime aborts are ctx.Err(), ErrExpansionLimit or a wrapped OnExpand error.
// On any error the returned Result is nil.
//
// Complexity: O((V + E) log E) for the heap strategies, O(V + E) for BFS,
// where E counts generated nodes (lazy duplicates included).
func Run(g *core.Graph, strategy Strategy, start string, goals []string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	began := time.Now()
	res, err := run(g, strategy, start, goals, o)
	if o.Observer != nil {
		o.Observer.ObserveSearch(strategy, res, err, time.Since(began))
	}

	return res, err
}

func run(g *core.Graph, strategy Strategy, start string, goals []string, o Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !strategy.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if o.err != nil {
		return nil, o.err
	}
	si, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	gs, err := core.NewGoalSet(g, goals...)
	if err != nil {
		return nil, err
	}

	h := core.ZeroHeuristic(g)
	if strategy == AStar {
		if o.Heuristic == nil {
			return nil, ErrHeuristicRequired
		}
		if o.Heuristic.Graph() != g {
			return nil, fmt.Errorf("%w: heuristic was built for a different graph", ErrOptionViolation)
		}
		h = *o.Heuristic
	}

	n := g.Len()
	e := &engine{
		g:         g,
		strategy:  strategy,
		opts:      o,
		ctx:       o.Ctx,
		log:       o.Logger.With(slog.String("strategy", strategy.String())),
		goals:     gs,
		h:         h,
		open:      frontier.New(strategy.frontierKind()),
		finalized: make([]bool, n),
		res:       &Result{Strategy: strategy},
	}
	if strategy != BFS {
		e.best = make([]float64, n)
	}

	e.log.Debug("search started", slog.String("start", start), slog.Int("states", n), slog.Int("goals", gs.Len()))
	last, err := e.loop(frontier.Root(g, si, h.At(si)))
	if err != nil {
		e.log.Debug("search aborted", slog.Int("expansions", e.res.Expansions), slog.Any("error", err))
		return nil, err
	}

	e.res.PathLength = last.Length
	e.res.TotalCost = last.Cost
	e.res.Path = last.Path()
	e.log.Debug("search finished",
		slog.Bool("found", e.res.Found),
		slog.Int("visited", e.res.StatesVisited),
		slog.Int("expansions", e.res.Expansions),
		slog.Float64("cost", e.res.TotalCost),
	)

	return e.res, nil
}

// loop pops until a goal is expanded or the frontier is empty, and returns
// the last popped node. A start that is already a goal is returned without
// being expanded, so it counts as zero visited states.
func (e *engine) loop(root *frontier.Node) (*frontier.Node, error) {
	if e.goals.Contains(root.State) {
		e.res.Found = true
		return root, nil
	}
	e.open.Push(root)
	cur := root
	for !e.open.Empty() {
		// cancellation check (once per loop)
		select {
		case <-e.ctx.Done():
			return nil, e.ctx.Err()
		default:
		}

		cur = e.open.Pop()
		if e.stale(cur) {
			continue
		}
		if err := e.finalize(cur); err != nil {
			return nil, err
		}
		if e.goals.Contains(cur.State) {
			e.res.Found = true
			return cur, nil
		}
		if limit := e.opts.MaxExpansions; limit > 0 && e.res.Expansions >= limit {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, limit)
		}
		e.expand(cur)
	}

	return cur, nil
}

// stale reports whether n must be discarded on pop.
// BFS: any earlier finalization. UCS/A*: an earlier finalization at a cost ≤ n.Cost.
func (e *engine) stale(n *frontier.Node) bool {
	if !e.finalized[n.State] {
		return false
	}
	if e.strategy == BFS {
		return true
	}

	return e.best[n.State] <= n.Cost
}

// finalize records n as the best known way to reach its state.
func (e *engine) finalize(n *frontier.Node) error {
	if !e.finalized[n.State] {
		e.finalized[n.State] = true
		e.res.StatesVisited++
	}
	if e.best != nil {
		e.best[n.State] = n.Cost
	}
	e.res.Expansions++
	if e.log.Enabled(e.ctx, slog.LevelDebug) {
		e.log.Debug("expand", slog.String("state", n.Name), slog.Float64("cost", n.Cost), slog.Float64("estimate", n.Estimate))
	}
	if err := e.opts.OnExpand(n.Name, n.Cost); err != nil {
		return fmt.Errorf("search: OnExpand error at %q: %w", n.Name, err)
	}

	return nil
}

// expand pushes every successor that passes the strategy's generation filter.
// BFS: successor not yet finalized. UCS/A*: successor not finalized, or the
// path through n strictly improves its finalized cost.
func (e *engine) expand(n *frontier.Node) {
	for _, edge := range e.g.SuccessorsAt(n.State) {
		to := edge.ToIndex
		if e.finalized[to] {
			if e.strategy == BFS || e.best[to] <= n.Cost+edge.Cost {
				continue
			}
		}
		e.open.Push(n.Extend(edge, e.h.At(to)))
	}
}
