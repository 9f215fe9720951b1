// Package frontier provides the open-list disciplines used by the search
// engine: a FIFO queue for breadth-first search and two min-heaps ordered by
// path cost (uniform-cost search) or by path cost plus heuristic estimate (A*).
//
// All variants implement Frontier:
//
//	Push(*Node)   // O(1) FIFO, O(log n) heaps
//	Pop() *Node   // O(1) FIFO, O(log n) heaps
//	Len() int
//	Empty() bool
//
// Determinism
//
//	Equal keys are not a total order, so the heaps break ties by state name
//	(ascending, byte-wise) and then by push sequence. Two runs over the same
//	input therefore pop nodes in exactly the same order.
//
// Frontiers never look at the engine's visited table; stale entries are
// left in place and discarded by the caller on pop (lazy invalidation).
package frontier
