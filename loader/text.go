package loader

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// line is one non-comment, non-blank input line.
type line struct {
	no   int
	text string
}

// contentLines returns the trimmed lines worth parsing and the total line count.
func contentLines(r io.Reader) ([]line, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	var out []line
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, line{no: no, text: text})
	}

	return out, no, sc.Err()
}

// ParseStateSpace reads the text format from r.
//
// Errors are *SyntaxError carrying the line number; those caused by invalid
// data also match the core sentinels (core.ErrNegativeCost,
// core.ErrUnknownState, ...) via errors.Is.
func ParseStateSpace(r io.Reader) (*StateSpace, error) {
	lines, total, err := contentLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, syntaxErr(total, nil, "missing start state")
	}
	if len(lines) == 1 {
		return nil, syntaxErr(total, nil, "missing goal states")
	}
	startLine, goalLine := lines[0], lines[1]

	b := core.NewBuilder(core.WithImplicitStates())
	for _, ln := range lines[2:] {
		if err = parseTransitions(b, ln); err != nil {
			return nil, err
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	ss := &StateSpace{
		Start: startLine.text,
		Goals: strings.Fields(goalLine.text),
		Graph: g,
	}
	if !g.Has(ss.Start) {
		return nil, syntaxErr(startLine.no, unknown("ParseStateSpace", ss.Start), "start state is not declared")
	}
	if _, err = core.NewGoalSet(g, ss.Goals...); err != nil {
		return nil, syntaxErr(goalLine.no, err, "invalid goal states")
	}

	return ss, nil
}

// parseTransitions handles "state: succ,cost succ,cost ...".
func parseTransitions(b *core.Builder, ln line) error {
	name, rest, ok := strings.Cut(ln.text, ":")
	if !ok {
		return syntaxErr(ln.no, nil, "expected \"state: successor,cost ...\", got %q", ln.text)
	}
	name = strings.TrimSpace(name)
	if err := b.AddState(name); err != nil {
		return syntaxErr(ln.no, err, "invalid state")
	}

	for _, field := range strings.Fields(rest) {
		succ, costText, ok := strings.Cut(field, ",")
		if !ok {
			return syntaxErr(ln.no, nil, "transition %q has no cost", field)
		}
		cost, err := strconv.ParseFloat(costText, 64)
		if err != nil {
			return syntaxErr(ln.no, err, "invalid cost %q", costText)
		}
		if err = b.AddEdge(name, succ, cost); err != nil {
			return syntaxErr(ln.no, err, "invalid transition %q", field)
		}
	}

	return nil
}

// ParseHeuristic reads "state: estimate" lines from r and resolves them
// against g. States without a line estimate 0; a repeated state keeps the
// last value.
func ParseHeuristic(r io.Reader, g *core.Graph) (core.Heuristic, error) {
	if g == nil {
		return core.Heuristic{}, ErrGraphNil
	}
	lines, _, err := contentLines(r)
	if err != nil {
		return core.Heuristic{}, err
	}

	table := make(map[string]float64, len(lines))
	for _, ln := range lines {
		name, valueText, ok := strings.Cut(ln.text, ":")
		if !ok {
			return core.Heuristic{}, syntaxErr(ln.no, nil, "expected \"state: estimate\", got %q", ln.text)
		}
		name = strings.TrimSpace(name)
		v, err := strconv.ParseFloat(strings.TrimSpace(valueText), 64)
		if err != nil {
			return core.Heuristic{}, syntaxErr(ln.no, err, "invalid estimate for %q", name)
		}
		if err = checkEstimate(g, name, v); err != nil {
			return core.Heuristic{}, syntaxErr(ln.no, err, "invalid heuristic entry")
		}
		table[name] = v
	}

	return core.NewHeuristic(g, table)
}

// checkEstimate mirrors core.NewHeuristic so that failures keep a line number.
func checkEstimate(g *core.Graph, name string, v float64) error {
	if !g.Has(name) {
		return unknown("ParseHeuristic", name)
	}
	if v < 0 || math.IsNaN(v) {
		return &core.StateError{Op: "ParseHeuristic", State: name, Err: core.ErrNegativeEstimate}
	}

	return nil
}
