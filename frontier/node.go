package frontier

import "github.com/katalvlaran/lvsearch/core"

// Node is a transient search record: a state reached along one specific path.
// Paths are shared through Parent links, so extending a node is O(1).
type Node struct {
	State    int     // dense state index
	Name     string  // state name, also the tie-break key
	Cost     float64 // accumulated path cost from the start
	Estimate float64 // heuristic estimate of the remaining cost (A* only)
	Length   int     // number of states on the path, start included
	Parent   *Node   // nil for the start node

	seq uint64 // push sequence, assigned by the frontier
}

// Root creates the start node for state i of g.
func Root(g *core.Graph, i int, estimate float64) *Node {
	return &Node{State: i, Name: g.Name(i), Estimate: estimate, Length: 1}
}

// Extend returns the child reached from n through e.
func (n *Node) Extend(e core.Edge, estimate float64) *Node {
	return &Node{
		State:    e.ToIndex,
		Name:     e.To,
		Cost:     n.Cost + e.Cost,
		Estimate: estimate,
		Length:   n.Length + 1,
		Parent:   n,
	}
}

// Priority is Cost + Estimate.
func (n *Node) Priority() float64 { return n.Cost + n.Estimate }

// Path returns the state names from the start to n.
func (n *Node) Path() []string {
	path := make([]string, n.Length)
	for cur, k := n, n.Length-1; cur != nil && k >= 0; cur, k = cur.Parent, k-1 {
		path[k] = cur.Name
	}

	return path
}
