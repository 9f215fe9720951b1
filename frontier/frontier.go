package frontier

import (
	"container/heap"
	"fmt"
)

// Frontier is the set of generated but not yet expanded nodes.
type Frontier interface {
	Push(n *Node)
	Pop() *Node // panics on an empty frontier
	Len() int
	Empty() bool
}

// Kind selects a Frontier discipline.
type Kind int

const (
	// FIFO pops the oldest node first (breadth-first search).
	FIFO Kind = iota
	// CostOrder pops the node with the smallest Cost (uniform-cost search).
	CostOrder
	// CostPlusEstimate pops the node with the smallest Cost+Estimate (A*).
	CostPlusEstimate
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case FIFO:
		return "fifo"
	case CostOrder:
		return "cost"
	case CostPlusEstimate:
		return "cost+estimate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New returns an empty frontier of the given kind.
// It panics on an unknown Kind.
func New(k Kind) Frontier {
	switch k {
	case FIFO:
		return NewFIFO()
	case CostOrder:
		return NewCostOrder()
	case CostPlusEstimate:
		return NewCostPlusEstimate()
	default:
		panic(fmt.Sprintf("frontier: unknown kind %d", int(k)))
	}
}

// Queue is a FIFO frontier.
type Queue struct {
	items []*Node
	head  int
	seq   uint64
}

// NewFIFO returns an empty FIFO queue.
func NewFIFO() *Queue { return &Queue{} }

// Push appends n.
func (q *Queue) Push(n *Node) {
	n.seq = q.seq
	q.seq++
	q.items = append(q.items, n)
}

// Pop removes the oldest node.
func (q *Queue) Pop() *Node {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// compact once the consumed prefix dominates the backing array
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return n
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue has no nodes.
func (q *Queue) Empty() bool { return q.Len() == 0 }

// PriorityQueue is a min-heap frontier keyed by a per-node priority.
type PriorityQueue struct {
	h   nodeHeap
	seq uint64
}

// NewCostOrder returns a heap ordered by Cost.
func NewCostOrder() *PriorityQueue {
	return &PriorityQueue{h: nodeHeap{key: func(n *Node) float64 { return n.Cost }}}
}

// NewCostPlusEstimate returns a heap ordered by Cost+Estimate.
func NewCostPlusEstimate() *PriorityQueue {
	return &PriorityQueue{h: nodeHeap{key: (*Node).Priority}}
}

// Push inserts n.
func (pq *PriorityQueue) Push(n *Node) {
	n.seq = pq.seq
	pq.seq++
	heap.Push(&pq.h, n)
}

// Pop removes the node with the smallest key.
func (pq *PriorityQueue) Pop() *Node { return heap.Pop(&pq.h).(*Node) }

// Len returns the number of queued nodes.
func (pq *PriorityQueue) Len() int { return pq.h.Len() }

// Empty reports whether the heap has no nodes.
func (pq *PriorityQueue) Empty() bool { return pq.h.Len() == 0 }

// nodeHeap implements heap.Interface.
// Order: key ascending, then Name ascending, then push sequence ascending.
type nodeHeap struct {
	items []*Node
	key   func(*Node) float64
}

func (h nodeHeap) Len() int { return len(h.items) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if ka, kb := h.key(a), h.key(b); ka != kb {
		return ka < kb
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}

	return a.seq < b.seq
}

func (h nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x any) { h.items = append(h.items, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]

	return item
}
