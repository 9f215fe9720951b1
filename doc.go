// Package lvsearch is a toolkit for searching weighted state spaces and for
// checking the heuristics that guide them.
//
// What is inside?
//
//	A small, deterministic set of packages:
//		• core       - immutable state-space graph, goal sets, heuristic tables
//		• frontier   - FIFO, cost-ordered and cost+estimate-ordered frontiers
//		• search     - BFS, UCS and A* over one expand/visit loop
//		• dijkstra   - exact cost-to-goal oracle (reverse Dijkstra)
//		• heuristic  - optimism and consistency verification
//		• loader     - text, YAML and grid-map state-space files
//		• gridgraph  - 2D cost grids as state spaces, with a grid heuristic
//		• builder    - seeded synthetic state spaces
//		• report     - fixed-format result blocks and summary tables
//		• config, metrics - YAML configuration, slog logging, Prometheus metrics
//
// Determinism
//
//   - States are indexed in declaration order; successors keep insertion order.
//   - Frontier ties break on key, then state name, then insertion sequence.
//   - Reports list judgments in state or transition order.
//
// Quick start:
//
//	b := core.NewBuilder()
//	_ = b.AddEdge("A", "B", 2)
//	_ = b.AddEdge("B", "Goal", 2)
//	_ = b.AddState("Goal")
//	g, _ := b.Build()
//	res, _ := search.Run(g, search.UCS, "A", []string{"Goal"})
//	fmt.Println(res.PathString(), res.TotalCost) // A => B => Goal 4
//
// The lvsearch command (cmd/lvsearch) wraps the same packages:
//
//	lvsearch --ss space.txt --h h.txt --alg astar --check-optimistic --check-consistent
//	lvsearch compare --ss maze.grid
//	lvsearch generate --kind random --states 50 --out space.txt --h-out h.txt
package lvsearch
