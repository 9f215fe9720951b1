// Package search provides tunable options, result types and error
// definitions for state-space search over a core.Graph.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("%w: search: graph is nil", core.ErrConfiguration)

	// ErrStartNotFound is returned when the start state is absent from the graph.
	ErrStartNotFound = fmt.Errorf("%w: search: start state not found", core.ErrConfiguration)

	// ErrHeuristicRequired is returned when A* is run without a heuristic.
	ErrHeuristicRequired = fmt.Errorf("%w: search: A* requires a heuristic", core.ErrConfiguration)

	// ErrUnknownStrategy is returned for a Strategy value or name outside BFS/UCS/A*.
	ErrUnknownStrategy = fmt.Errorf("%w: search: unknown strategy", core.ErrConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: search: invalid option supplied", core.ErrConfiguration)

	// ErrExpansionLimit is returned when MaxExpansions is reached before any goal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Strategy selects the search discipline.
type Strategy int

const (
	// BFS is breadth-first search: FIFO frontier, first visit is final.
	BFS Strategy = iota
	// UCS is uniform-cost search: cost-ordered frontier with lazy re-expansion.
	UCS
	// AStar is A*: cost+heuristic-ordered frontier with lazy re-expansion.
	AStar
)

// Strategies lists every supported strategy in canonical order.
func Strategies() []Strategy { return []Strategy{BFS, UCS, AStar} }

// ParseStrategy maps "bfs", "ucs" and "astar" (case-insensitive, "a*" and
// "a-star" accepted) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "ucs":
		return UCS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// String returns the flag spelling: "bfs", "ucs" or "astar".
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Title returns the report banner name: "BFS", "UCS" or "A-STAR".
func (s Strategy) Title() string {
	switch s {
	case BFS:
		return "BFS"
	case UCS:
		return "UCS"
	case AStar:
		return "A-STAR"
	default:
		return strings.ToUpper(s.String())
	}
}

func (s Strategy) valid() bool { return s >= BFS && s <= AStar }

// frontierKind maps the strategy to its open-list discipline.
func (s Strategy) frontierKind() frontier.Kind {
	switch s {
	case UCS:
		return frontier.CostOrder
	case AStar:
		return frontier.CostPlusEstimate
	default:
		return frontier.FIFO
	}
}

// Observer receives one notification per completed (or failed) search.
// Implementations must be safe for concurrent use when shared across RunAll.
type Observer interface {
	ObserveSearch(strategy Strategy, res *Result, err error, elapsed time.Duration)
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Heuristic supplies A* estimates. Ignored by BFS and UCS.
	Heuristic *core.Heuristic

	// Logger receives debug traces. Defaults to a discarding logger.
	Logger *slog.Logger

	// Observer, if set, is notified when Run returns.
	Observer Observer

	// OnExpand is called each time a state is finalized. Returning an error
	// aborts the search and propagates that error.
	OnExpand func(state string, cost float64) error

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// expansions happened without reaching a goal. 0 means no limit.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with sane defaults:
// context.Background(), no heuristic, discard logger, no observer,
// no-op OnExpand and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand: func(string, float64) error { return nil },
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

// WithHeuristic supplies the estimates used by A*.
func WithHeuristic(h core.Heuristic) Option {
	return func(o *Options) { o.Heuristic = &h }
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

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(state string, cost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of one search.
//
// When Found is false the frontier was exhausted; PathLength, TotalCost and
// Path then describe the last popped node and must not be read as a solution.
type Result struct {
	Strategy Strategy

	Found bool

	// StatesVisited counts distinct states finalized at least once (≤ N).
	StatesVisited int

	// Expansions counts every finalization, re-expansions included.
	Expansions int

	// PathLength is the number of states on Path, start included (≥ 1).
	PathLength int

	TotalCost float64
	Path      []string
}

// PathString joins Path with " => ".
func (r *Result) PathString() string { return strings.Join(r.Path, " => ") }
