package core

import (
	"errors"
	"fmt"
)

// Error classes. Every sentinel below wraps exactly one of them.
var (
	// ErrConfiguration marks problems in the supplied data that the caller must fix.
	ErrConfiguration = errors.New("core: configuration error")

	// ErrLookup marks references to states that are absent from the index.
	ErrLookup = errors.New("core: lookup error")
)

// Sentinel errors for state-space construction and queries.
var (
	// ErrEmptyStateName indicates a state with a zero-length name.
	ErrEmptyStateName = fmt.Errorf("%w: state name is empty", ErrConfiguration)

	// ErrNegativeCost indicates a transition cost that is negative, NaN or infinite.
	ErrNegativeCost = fmt.Errorf("%w: transition cost must be finite and non-negative", ErrConfiguration)

	// ErrEmptyGoalSet indicates that no goal state was supplied.
	ErrEmptyGoalSet = fmt.Errorf("%w: goal set is empty", ErrConfiguration)

	// ErrNegativeEstimate indicates a heuristic estimate that is negative or NaN.
	ErrNegativeEstimate = fmt.Errorf("%w: heuristic estimate must be non-negative", ErrConfiguration)

	// ErrNilGraph indicates a nil *Graph passed where a built graph is required.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrConfiguration)

	// ErrUnknownState indicates a state that is referenced but never declared.
	ErrUnknownState = fmt.Errorf("%w: unknown state", ErrLookup)
)

// StateError attaches the offending state (or transition) and the failed
// operation to one of the sentinel errors.
type StateError struct {
	Op    string // operation that failed, e.g. "AddEdge", "Build", "NewGoalSet"
	State string // offending state, or "from -> to" for a transition
	Err   error  // underlying sentinel
}

// Error implements error.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.State, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StateError) Unwrap() error { return e.Err }

func stateErr(op, state string, err error) error {
	return &StateError{Op: op, State: state, Err: err}
}

func edgeLabel(from, to string) string { return from + " -> " + to }

// Edge is a single weighted transition From→To.
// FromIndex and ToIndex are the dense indices of the endpoints.
type Edge struct {
	From      string
	To        string
	FromIndex int
	ToIndex   int
	Cost      float64
}

// Graph is an immutable weighted directed state space.
//
// names[i] is the state with index i; index is its inverse.
// succ[i] lists transitions leaving i in insertion order and
// pred[i] lists transitions entering i (reverse view), ordered by source index.
type Graph struct {
	names []string
	index map[string]int
	succ  [][]Edge
	pred  [][]Edge
	edges int
}
