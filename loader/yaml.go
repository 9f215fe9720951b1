package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/core"
)

// document is the YAML state-space layout. Transitions and Heuristic stay
// as nodes so that declaration order and line numbers survive decoding.
type document struct {
	Start       string    `yaml:"start"`
	Goals       []string  `yaml:"goals"`
	Transitions yaml.Node `yaml:"transitions"`
	Heuristic   yaml.Node `yaml:"heuristic"`
}

// ParseStateSpaceYAML reads the YAML format from r. Unknown top-level keys
// are rejected.
func ParseStateSpaceYAML(r io.Reader) (*StateSpace, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, syntaxErr(1, nil, "empty document")
		}
		return nil, fmt.Errorf("loader: decode yaml: %w", err)
	}
	if doc.Start == "" {
		return nil, syntaxErr(1, nil, "missing start state")
	}
	if len(doc.Goals) == 0 {
		return nil, syntaxErr(1, core.ErrEmptyGoalSet, "missing goal states")
	}

	g, err := graphFromNode(&doc.Transitions)
	if err != nil {
		return nil, err
	}
	if !g.Has(doc.Start) {
		return nil, fmt.Errorf("loader: start state: %w", unknown("ParseStateSpaceYAML", doc.Start))
	}
	if _, err = core.NewGoalSet(g, doc.Goals...); err != nil {
		return nil, fmt.Errorf("loader: goal states: %w", err)
	}

	ss := &StateSpace{Start: doc.Start, Goals: doc.Goals, Graph: g}
	if doc.Heuristic.Kind != 0 {
		h, err := heuristicFromNode(&doc.Heuristic, g)
		if err != nil {
			return nil, err
		}
		ss.Heuristic = &h
	}

	return ss, nil
}

// ParseHeuristicYAML reads a state → estimate mapping from r. An empty
// document yields the all-zero heuristic.
func ParseHeuristicYAML(r io.Reader, g *core.Graph) (core.Heuristic, error) {
	if g == nil {
		return core.Heuristic{}, ErrGraphNil
	}
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return core.ZeroHeuristic(g), nil
		}
		return core.Heuristic{}, fmt.Errorf("loader: decode yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return core.ZeroHeuristic(g), nil
	}

	return heuristicFromNode(root.Content[0], g)
}

// graphFromNode builds the graph from a state → {successor: cost} mapping.
func graphFromNode(n *yaml.Node) (*core.Graph, error) {
	if n.Kind != yaml.MappingNode {
		return nil, syntaxErr(n.Line, nil, "transitions must be a mapping")
	}

	b := core.NewBuilder(core.WithImplicitStates())
	for k := 0; k+1 < len(n.Content); k += 2 {
		key, val := n.Content[k], n.Content[k+1]
		if err := b.AddState(key.Value); err != nil {
			return nil, syntaxErr(key.Line, err, "invalid state")
		}
		if isNull(val) {
			continue
		}
		if val.Kind != yaml.MappingNode {
			return nil, syntaxErr(val.Line, nil, "successors of %q must be a mapping", key.Value)
		}
		for m := 0; m+1 < len(val.Content); m += 2 {
			succ, costNode := val.Content[m], val.Content[m+1]
			var cost float64
			if err := costNode.Decode(&cost); err != nil {
				return nil, syntaxErr(costNode.Line, err, "invalid cost for %s -> %s", key.Value, succ.Value)
			}
			if err := b.AddEdge(key.Value, succ.Value, cost); err != nil {
				return nil, syntaxErr(succ.Line, err, "invalid transition")
			}
		}
	}

	return b.Build()
}

// heuristicFromNode resolves a state → estimate mapping against g.
func heuristicFromNode(n *yaml.Node, g *core.Graph) (core.Heuristic, error) {
	if isNull(n) {
		return core.ZeroHeuristic(g), nil
	}
	if n.Kind != yaml.MappingNode {
		return core.Heuristic{}, syntaxErr(n.Line, nil, "heuristic must be a mapping")
	}

	table := make(map[string]float64, len(n.Content)/2)
	for k := 0; k+1 < len(n.Content); k += 2 {
		key, val := n.Content[k], n.Content[k+1]
		var v float64
		if err := val.Decode(&v); err != nil {
			return core.Heuristic{}, syntaxErr(val.Line, err, "invalid estimate for %q", key.Value)
		}
		if err := checkEstimate(g, key.Value, v); err != nil {
			return core.Heuristic{}, syntaxErr(key.Line, err, "invalid heuristic entry")
		}
		table[key.Value] = v
	}

	return core.NewHeuristic(g, table)
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
