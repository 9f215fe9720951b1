package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
)

// ErrGridHeuristic is returned when a .grid file is used as a heuristic
// table. Grid state spaces carry their own heuristic.
var ErrGridHeuristic = fmt.Errorf("%w: loader: grid files do not hold heuristic tables", core.ErrConfiguration)

// Grid cell symbols. Digits 1-9 are entry costs; 0 is a wall like '#'.
const (
	gridWall  = '#'
	gridOpen  = '.'
	gridStart = 'S'
	gridGoal  = 'G'
)

// ParseGrid reads a grid map from r. Lines starting with ';' and blank
// lines are ignored; every other line is one row of cells:
//
//	S..#
//	.5.G
//
// '.' costs 1, '1'..'9' cost their value, '#' and '0' are walls. Exactly one
// 'S' marks the start; every 'G' is a goal. Both cost 1 to enter. States are
// named "x,y" and the returned StateSpace embeds the grid distance heuristic,
// which is consistent for the produced graph.
func ParseGrid(r io.Reader, opts gridgraph.GridOptions) (*StateSpace, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	var (
		rows       [][]int
		start      *[2]int
		startLine  int
		goals      [][2]int
		no, firstW int
	)
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		y := len(rows)
		row := make([]int, 0, len(text))
		for x, ch := range []byte(text) {
			switch {
			case ch == gridWall:
				row = append(row, 0)
			case ch == gridOpen:
				row = append(row, 1)
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == gridStart:
				if start != nil {
					return nil, syntaxErr(no, nil, "second start cell at column %d (first on line %d)", x+1, startLine)
				}
				start, startLine = &[2]int{x, y}, no
				row = append(row, 1)
			case ch == gridGoal:
				goals = append(goals, [2]int{x, y})
				row = append(row, 1)
			default:
				return nil, syntaxErr(no, nil, "unknown cell %q at column %d", ch, x+1)
			}
		}
		if y == 0 {
			firstW = len(row)
		} else if len(row) != firstW {
			return nil, syntaxErr(no, gridgraph.ErrNonRectangular, "row has %d cells, want %d", len(row), firstW)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, syntaxErr(no, gridgraph.ErrEmptyGrid, "no rows")
	}
	if start == nil {
		return nil, syntaxErr(no, nil, "missing start cell %q", gridStart)
	}
	if len(goals) == 0 {
		return nil, syntaxErr(no, core.ErrEmptyGoalSet, "missing goal cell %q", gridGoal)
	}

	gg, err := gridgraph.NewGridGraph(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	// S and G cost 1, so they stay passable only with the default threshold
	for _, p := range append([][2]int{*start}, goals...) {
		if !gg.Passable(p[0], p[1]) {
			return nil, fmt.Errorf("loader: %w: cell (%d,%d)", gridgraph.ErrNotPassable, p[0], p[1])
		}
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	h, err := gg.Heuristic(g, goals...)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	names := make([]string, len(goals))
	for i, p := range goals {
		names[i] = gridgraph.StateName(p[0], p[1])
	}

	return &StateSpace{
		Start:     gridgraph.StateName(start[0], start[1]),
		Goals:     names,
		Graph:     g,
		Heuristic: &h,
	}, nil
}
