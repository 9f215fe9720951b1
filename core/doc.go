// Package core provides the immutable state-space model shared by every
// search and verification algorithm in lvsearch.
//
// A state space G = (S, T) is a set of named states S and weighted, directed
// transitions T ⊆ S×S. Each state is assigned a dense integer index 0..N-1 in
// the order it was first declared, so algorithms can keep per-state
// bookkeeping in plain slices instead of maps.
//
// Construction:
//
//	b := core.NewBuilder()
//	b.AddState("A")             // optional: AddEdge declares its source
//	b.AddEdge("A", "B", 1)      // A→B, cost 1
//	b.AddEdge("B", "C", 1)
//	b.AddState("C")             // a state without successors
//	g, err := b.Build()
//
// Guarantees after Build:
//
//   - The name→index assignment is bijective and never changes.
//   - Successors are reported in insertion order (not sorted). Redefining
//     an existing transition overwrites its cost in place.
//   - Every transition cost is finite and non-negative.
//   - A reverse (predecessor) view is precomputed for goal-rooted algorithms.
//   - The Graph has no mutating methods and may be shared by any number of
//     goroutines without locking.
//
// Companion values:
//
//   - GoalSet: non-empty set of goal states resolved against a Graph.
//   - Heuristic: per-state non-negative estimates, 0 where absent.
//
// Errors:
//
//	ErrConfiguration    – class of caller-fixable configuration problems
//	ErrLookup           – class of references to states absent from the index
//	ErrEmptyStateName   – zero-length state name (configuration)
//	ErrNegativeCost     – negative, NaN or infinite transition cost (configuration)
//	ErrEmptyGoalSet     – no goal states supplied (configuration)
//	ErrNegativeEstimate – negative or NaN heuristic value (configuration)
//	ErrUnknownState     – state referenced but never declared (lookup)
//
// All specific errors match their class with errors.Is, and are reported
// wrapped in *StateError so the offending state or transition is visible.
package core
