package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
)

func (c *cli) newCompareCmd() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies concurrently and compare them",
		Long: `compare runs the selected strategies in parallel over the same state space,
prints one result block per strategy and a summary table. A* is skipped when
no heuristic is available and --strategies was not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := c.resolveConfig(cmd)
			if err != nil {
				return err
			}
			// a config file shared with the root command may request a
			// single search or checks; compare does neither
			cfg.Algorithm, cfg.CheckOptimistic, cfg.CheckConsistent = "", false, false
			ctx, cancel := withTimeout(cmd.Context(), cfg)
			defer cancel()
			s, err := c.open(cfg)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.flushMetrics()) }()

			strategies, err := pickStrategies(names, s.h != nil, cmd.Flags().Changed("strategies"))
			if err != nil {
				return err
			}
			opts := s.searchOptions(ctx, search.AStar)
			s.log.Info("comparing strategies", "strategies", names)

			results, err := search.RunAll(ctx, s.space.Graph, s.space.Start, s.space.Goals, strategies, opts...)
			if err != nil {
				return err
			}
			for _, res := range results {
				if err = report.WriteSearch(c.stdout, cfg.StateSpace, res); err != nil {
					return err
				}
			}

			return report.WriteSummary(c.stdout, results, isTerminal(c.stdout))
		},
	}
	cmd.Flags().StringSliceVar(&names, "strategies", []string{"bfs", "ucs", "astar"}, "strategies to run, in output order")

	return cmd
}

// pickStrategies parses names. With the default list and no heuristic, A* is
// dropped; an explicit request for A* without a heuristic is left to fail in
// search.Run.
func pickStrategies(names []string, haveHeuristic, explicit bool) ([]search.Strategy, error) {
	out := make([]search.Strategy, 0, len(names))
	for _, name := range names {
		s, err := search.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if s == search.AStar && !haveHeuristic && !explicit {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
