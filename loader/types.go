// Package loader reads state spaces and heuristic tables from files.
//
// Three formats are understood, chosen by file extension:
//
//   - Text (any extension other than .yaml/.yml/.grid). Lines starting with '#'
//     and blank lines are ignored. The first remaining line is the start
//     state, the second lists the goal states separated by spaces, and every
//     further line declares one state and its transitions:
//
//     A: B,2 C,5.5
//     Goal:
//
//     A heuristic file holds one "state: estimate" line per state.
//
//   - YAML, with keys start, goals, transitions (state → successor → cost,
//     declaration order preserved) and an optional heuristic table. A
//     heuristic file in YAML is a plain state → estimate mapping.
//
//   - Grid (.grid), a character map with one 'S' start and any number of
//     'G' goals. See ParseGrid.
//
// States that only appear as transition targets are declared with no
// successors. Start, goal and heuristic states must exist in the graph.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrGraphNil is returned when a heuristic is parsed without a graph.
var ErrGraphNil = fmt.Errorf("%w: loader: graph is nil", core.ErrConfiguration)

// ErrUnrepresentableName is returned by the writers for a state name the text
// format cannot carry: empty, starting with '#', or containing ':' (and, in
// transition lines, ',' or whitespace). It arrives inside a *core.StateError
// naming the state.
var ErrUnrepresentableName = fmt.Errorf("%w: loader: state name cannot be written as text", core.ErrConfiguration)

// StateSpace is a fully resolved search problem.
type StateSpace struct {
	Start string
	Goals []string
	Graph *core.Graph

	// Heuristic is set only when the source embeds a heuristic table.
	Heuristic *core.Heuristic
}

// Format selects a parser.
type Format int

const (
	// Text is the line-oriented "state: succ,cost ..." format.
	Text Format = iota
	// YAML is the structured format.
	YAML
	// Grid is the character map format.
	Grid
)

// String returns "text", "yaml" or "grid".
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case Grid:
		return "grid"
	default:
		return "text"
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".grid":
		return Grid
	default:
		return Text
	}
}

// SyntaxError reports a malformed or unresolvable line.
// Err, when set, is the underlying core sentinel (e.g. core.ErrNegativeCost).
type SyntaxError struct {
	File string // empty when parsing from a reader
	Line int    // 1-based
	Msg  string
	Err  error
}

// Error implements error.
func (e *SyntaxError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("loader: %s: %s: %v", loc, e.Msg, e.Err)
	}

	return fmt.Sprintf("loader: %s: %s", loc, e.Msg)
}

// Unwrap exposes the underlying error for errors.Is.
func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErr(line int, err error, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}

// unknown wraps core.ErrUnknownState for a name that failed to resolve.
func unknown(op, name string) error {
	return &core.StateError{Op: op, State: name, Err: core.ErrUnknownState}
}
