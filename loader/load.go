package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
)

// LoadStateSpace opens path and parses it in the format implied by its
// extension. Syntax errors carry the file name.
func LoadStateSpace(path string) (*StateSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var ss *StateSpace
	switch FormatOf(path) {
	case YAML:
		ss, err = ParseStateSpaceYAML(f)
	case Grid:
		ss, err = ParseGrid(f, gridgraph.DefaultGridOptions())
	default:
		ss, err = ParseStateSpace(f)
	}
	if err != nil {
		return nil, withFile(err, path)
	}

	return ss, nil
}

// LoadHeuristic opens path and resolves its estimates against g.
func LoadHeuristic(path string, g *core.Graph) (core.Heuristic, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Heuristic{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var h core.Heuristic
	switch FormatOf(path) {
	case YAML:
		h, err = ParseHeuristicYAML(f, g)
	case Grid:
		err = ErrGridHeuristic
	default:
		h, err = ParseHeuristic(f, g)
	}
	if err != nil {
		return core.Heuristic{}, withFile(err, path)
	}

	return h, nil
}

func withFile(err error, path string) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		if se.File == "" {
			se.File = path
		}
		return err
	}

	return fmt.Errorf("%s: %w", path, err)
}
