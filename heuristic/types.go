// Package heuristic defines judgment and report types, options and errors
// for verifying a cost-to-goal heuristic against a core.Graph.
package heuristic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for heuristic verification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("%w: heuristic: graph is nil", core.ErrConfiguration)

	// ErrGraphMismatch is returned when the heuristic was resolved against another graph.
	ErrGraphMismatch = fmt.Errorf("%w: heuristic: heuristic was built for a different graph", core.ErrConfiguration)
)

// Kind names one of the two verification checks.
type Kind int

const (
	// Optimistic checks h(s) ≤ h*(s) for every state.
	Optimistic Kind = iota
	// Consistent checks h(s) ≤ h(s2) + c for every transition s→s2.
	Consistent
)

// String returns "optimistic" or "consistent".
func (k Kind) String() string {
	switch k {
	case Optimistic:
		return "optimistic"
	case Consistent:
		return "consistent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title returns the report banner name, e.g. "HEURISTIC-OPTIMISTIC".
func (k Kind) Title() string {
	switch k {
	case Optimistic:
		return "HEURISTIC-OPTIMISTIC"
	case Consistent:
		return "HEURISTIC-CONSISTENT"
	default:
		return "HEURISTIC-" + k.String()
	}
}

// Judgment is the verdict for one item: a state (Optimistic) or a
// transition (Consistent). The checked inequality is LHS ≤ RHS.
type Judgment struct {
	// Subject is the state name, or "from -> to" for a transition.
	Subject string

	From string
	To   string // empty for Optimistic

	// LHS is h(From).
	LHS float64

	// RHS is h*(From) for Optimistic (+Inf when no goal is reachable),
	// and h(To) + Cost for Consistent.
	RHS float64

	// ToEstimate and Cost are the two addends of RHS; Consistent only.
	ToEstimate float64
	Cost       float64

	Passed bool
}

// Report is the ordered list of judgments for one check plus the verdict,
// which is the conjunction of every Passed.
type Report struct {
	Kind      Kind
	Judgments []Judgment
	Verdict   bool
}

// Failures returns the judgments that did not pass, in report order.
func (r *Report) Failures() []Judgment {
	var out []Judgment
	for _, j := range r.Judgments {
		if !j.Passed {
			out = append(out, j)
		}
	}

	return out
}

// Observer receives one notification per completed (or failed) check.
type Observer interface {
	ObserveVerification(kind Kind, rep *Report, err error, elapsed time.Duration)
}

// Option configures verification via functional arguments.
type Option func(*Options)

// Options holds parameters for a verification pass.
type Options struct {
	// Ctx allows cancellation; checked once per judged item.
	Ctx context.Context

	// Logger receives one debug record per failed judgment.
	Logger *slog.Logger

	// Observer, if set, is notified when a check returns.
	Observer Observer
}

// DefaultOptions returns context.Background(), a discard logger and no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer notified on completion.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
