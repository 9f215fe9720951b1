// Package heuristic checks a supplied heuristic for optimism (it never
// overestimates the true remaining cost) and consistency (it obeys the
// triangle inequality along every transition).
//
// Both checks judge every item and never stop at the first failure, so a
// Report always lists all states (or all transitions) in a fixed order:
//
//   - Optimistic: states in index order. The true cost h* comes from
//     dijkstra.ToGoals. A state that cannot reach any goal has h* = +Inf and
//     passes for every finite estimate.
//   - Consistent: transitions in core.Graph.Edges order (source index, then
//     declaration order). Zero-cost transitions are checked like any other.
//
// Equality passes in both checks.
package heuristic

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// CheckOptimistic judges h(s) ≤ h*(s) for every state s of g, where h*(s) is
// the cheapest cost from s to any state in goals.
//
// Errors (before any judgment): ErrGraphNil, ErrGraphMismatch,
// core.ErrEmptyGoalSet, core.ErrUnknownState. ctx.Err() on cancellation.
//
// Complexity: O((V + E) log E) for the oracle plus O(V).
func CheckOptimistic(g *core.Graph, goals []string, h core.Heuristic, opts ...Option) (*Report, error) {
	o := collect(opts)
	began := time.Now()
	rep, err := checkOptimistic(g, goals, h, o)
	if o.Observer != nil {
		o.Observer.ObserveVerification(Optimistic, rep, err, time.Since(began))
	}

	return rep, err
}

// CheckConsistent judges h(s) ≤ h(s2) + c for every transition s→s2 of cost c.
//
// Errors: ErrGraphNil, ErrGraphMismatch, or ctx.Err() on cancellation.
//
// Complexity: O(E).
func CheckConsistent(g *core.Graph, h core.Heuristic, opts ...Option) (*Report, error) {
	o := collect(opts)
	began := time.Now()
	rep, err := checkConsistent(g, h, o)
	if o.Observer != nil {
		o.Observer.ObserveVerification(Consistent, rep, err, time.Since(began))
	}

	return rep, err
}

func collect(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func validate(g *core.Graph, h core.Heuristic) error {
	if g == nil {
		return ErrGraphNil
	}
	if h.Graph() != g {
		return ErrGraphMismatch
	}

	return nil
}

func checkOptimistic(g *core.Graph, goals []string, h core.Heuristic, o Options) (*Report, error) {
	if err := validate(g, h); err != nil {
		return nil, err
	}
	gs, err := core.NewGoalSet(g, goals...)
	if err != nil {
		return nil, err
	}
	hstar, err := dijkstra.ToGoals(g, gs, dijkstra.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	rep := &Report{Kind: Optimistic, Judgments: make([]Judgment, 0, g.Len()), Verdict: true}
	for i := 0; i < g.Len(); i++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		name := g.Name(i)
		j := Judgment{
			Subject: name,
			From:    name,
			LHS:     h.At(i),
			RHS:     hstar.At(i),
		}
		j.Passed = j.LHS <= j.RHS
		rep.add(j, o.Logger)
	}

	return rep, nil
}

func checkConsistent(g *core.Graph, h core.Heuristic, o Options) (*Report, error) {
	if err := validate(g, h); err != nil {
		return nil, err
	}

	edges := g.Edges()
	rep := &Report{Kind: Consistent, Judgments: make([]Judgment, 0, len(edges)), Verdict: true}
	for _, e := range edges {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		j := Judgment{
			Subject:    e.From + " -> " + e.To,
			From:       e.From,
			To:         e.To,
			LHS:        h.At(e.FromIndex),
			ToEstimate: h.At(e.ToIndex),
			Cost:       e.Cost,
		}
		j.RHS = j.ToEstimate + j.Cost
		j.Passed = j.LHS <= j.RHS
		rep.add(j, o.Logger)
	}

	return rep, nil
}

// add appends j and folds it into the verdict.
func (r *Report) add(j Judgment, log *slog.Logger) {
	r.Judgments = append(r.Judgments, j)
	if j.Passed {
		return
	}
	r.Verdict = false
	log.LogAttrs(context.Background(), slog.LevelDebug, "heuristic check failed",
		slog.String("kind", r.Kind.String()),
		slog.String("subject", j.Subject),
		slog.Float64("lhs", j.LHS),
		slog.Float64("rhs", j.RHS),
	)
}
