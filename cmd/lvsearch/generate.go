package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/loader"
)

// generateFlags holds the generate subcommand's own flags.
type generateFlags struct {
	kind             string
	states           int
	p                float64
	seed             int64
	minCost, maxCost int
	prefix           string
	out, hOut        string
}

func (c *cli) newGenerateCmd() *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic state space in the text format",
		Long: `generate builds a seeded synthetic state space (path, cycle, complete or
random) with integer transition costs and writes it in the text format. The
first state is the start and the last one the goal. With --h-out the exact
cost to the goal of every state is written as a heuristic file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runGenerate(cmd, gf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&gf.kind, "kind", "random", "graph kind: path, cycle, complete or random")
	f.IntVar(&gf.states, "states", 20, "number of states")
	f.Float64Var(&gf.p, "p", 0.2, "transition probability for --kind random")
	f.Int64Var(&gf.seed, "seed", 1, "random seed")
	f.IntVar(&gf.minCost, "min-cost", 1, "smallest transition cost")
	f.IntVar(&gf.maxCost, "max-cost", 9, "largest transition cost")
	f.StringVar(&gf.prefix, "prefix", "s", "state name prefix")
	f.StringVar(&gf.out, "out", "", "output file (default stdout)")
	f.StringVar(&gf.hOut, "h-out", "", "also write the exact cost-to-goal table to this file")

	return cmd
}

func (c *cli) runGenerate(cmd *cobra.Command, gf generateFlags) (err error) {
	logCfg := config.Default().Log
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		logCfg.Level = c.flags.Log.Level
	}
	if fs.Changed("log-format") {
		logCfg.Format = c.flags.Log.Format
	}
	log := config.NewLogger(logCfg, c.stderr)

	if gf.minCost < 0 || gf.maxCost < gf.minCost {
		return fmt.Errorf("%w: need 0 <= --min-cost <= --max-cost, got %d and %d",
			config.ErrInvalidConfig, gf.minCost, gf.maxCost)
	}
	cons, err := builder.ByName(gf.kind, gf.states, gf.p)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(gf.seed),
		builder.WithIntegerWeight(gf.minCost, gf.maxCost),
		builder.WithSymbNumb(gf.prefix),
	}, cons)
	if err != nil {
		return err
	}
	ss := &loader.StateSpace{
		Start: g.Name(0),
		Goals: []string{g.Name(g.Len() - 1)},
		Graph: g,
	}
	log.Info("state space generated",
		slog.String("kind", gf.kind),
		slog.Int("states", g.Len()),
		slog.Int("transitions", g.EdgeCount()),
		slog.Int64("seed", gf.seed),
	)

	if err = writeTo(gf.out, c.stdout, func(w io.Writer) error { return loader.WriteStateSpace(w, ss) }); err != nil {
		return err
	}
	if gf.hOut == "" {
		return nil
	}

	goals, err := core.NewGoalSet(g, ss.Goals...)
	if err != nil {
		return err
	}
	dist, err := dijkstra.ToGoals(g, goals, dijkstra.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	table := make(map[string]float64, g.Len())
	for i, d := range dist.Slice() {
		table[g.Name(i)] = d
	}
	h, err := core.NewHeuristic(g, table)
	if err != nil {
		return err
	}

	return writeTo(gf.hOut, c.stdout, func(w io.Writer) error { return loader.WriteHeuristic(w, h) })
}

// writeTo runs write against path, or against stdout when path is empty.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return write(f)
}
