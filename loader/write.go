package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvsearch/core"
)

// WriteStateSpace renders ss in the text format accepted by ParseStateSpace.
// Every state gets a line in index order, so parsing the output reproduces
// the same indices and successor order. An embedded heuristic is not
// written; see WriteHeuristic.
//
// Nothing is written when a state name would not parse back; the error then
// matches ErrUnrepresentableName. Grid state names ("x,y") are such names.
func WriteStateSpace(w io.Writer, ss *StateSpace) error {
	if ss == nil || ss.Graph == nil {
		return ErrGraphNil
	}
	names := append([]string{ss.Start}, ss.Goals...)
	names = append(names, ss.Graph.States()...)
	for _, name := range names {
		if !transitionName(name) {
			return &core.StateError{Op: "WriteStateSpace", State: name, Err: ErrUnrepresentableName}
		}
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(ss.Start + "\n")
	bw.WriteString(strings.Join(ss.Goals, " ") + "\n")

	g := ss.Graph
	for i := 0; i < g.Len(); i++ {
		bw.WriteString(g.Name(i) + ":")
		for _, e := range g.SuccessorsAt(i) {
			bw.WriteString(" " + e.To + "," + formatCost(e.Cost))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteHeuristic renders h as "state: estimate" lines in index order.
// Commas and inner blanks survive this format, so grid heuristics can be
// written; a name with ':' or surrounding blanks fails with
// ErrUnrepresentableName.
func WriteHeuristic(w io.Writer, h core.Heuristic) error {
	g := h.Graph()
	if g == nil {
		return ErrGraphNil
	}
	for _, name := range g.States() {
		if !estimateName(name) {
			return &core.StateError{Op: "WriteHeuristic", State: name, Err: ErrUnrepresentableName}
		}
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Len(); i++ {
		bw.WriteString(g.Name(i) + ": " + formatCost(h.At(i)) + "\n")
	}

	return bw.Flush()
}

// estimateName reports whether name survives a "name: value" line.
func estimateName(name string) bool {
	return name != "" &&
		name == strings.TrimSpace(name) &&
		!strings.HasPrefix(name, "#") &&
		!strings.Contains(name, ":")
}

// transitionName reports whether name survives the start, goal and
// "name: succ,cost" lines, which split on blanks and commas.
func transitionName(name string) bool {
	return estimateName(name) &&
		!strings.ContainsRune(name, ',') &&
		strings.IndexFunc(name, unicode.IsSpace) < 0
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
