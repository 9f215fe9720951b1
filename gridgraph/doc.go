// Package gridgraph treats a 2D grid of cell costs as a search state space.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - ToCoreGraph emits one state "x,y" per passable cell; moving into a
//     cell costs that cell's value.
//   - Heuristic builds a consistent cost-to-goal estimate from grid distance.
//
// Why:
//
//   - Game maps and terrain: weighted path finding around walls.
//   - Benchmarks: large, reproducible state spaces for BFS, UCS and A*.
//
// Complexity:
//
//   - NewGridGraph: O(W×H), Memory: O(W×H).
//   - ToCoreGraph:  O(W×H×d), Memory: O(W×H×d)   (d = number of neighbors, 4 or 8).
//   - Heuristic:    O(W×H×G), Memory: O(W×H)     (G = number of goals).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold below 1.
//   - ErrNotPassable: a goal cell is out of bounds or a wall.
package gridgraph
