package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
)

// errNothingToDo is returned when neither a search nor a check was requested.
var errNothingToDo = errors.New("nothing to do: pass --alg, --check-optimistic or --check-consistent")

// cli carries flag values and the writers shared by all commands.
type cli struct {
	stdout, stderr io.Writer

	configPath string
	flags      config.Config // raw flag values; only changed flags are applied
}

// session is everything a command needs once configuration is resolved.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Collector // nil unless a metrics file was requested
	space   *loader.StateSpace
	h       *core.Heuristic // nil when no heuristic is available
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "State-space search and heuristic verification",
		Long: `lvsearch loads a weighted state space, runs breadth-first, uniform-cost
or A* search from its start state to any goal, and checks whether a heuristic
is optimistic (never overestimates) and consistent (obeys the triangle
inequality along every transition).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runRoot,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&c.flags.StateSpace, "ss", "", "state-space file (text, .yaml/.yml or .grid)")
	pf.StringVar(&c.flags.Heuristic, "h", "", "heuristic file (text, or .yaml/.yml)")
	pf.StringVar(&c.flags.Log.Level, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&c.flags.Log.Format, "log-format", "", "log format: text or json")
	pf.DurationVar(&c.flags.Timeout, "timeout", 0, "abort the run after this duration (0 = none)")
	pf.IntVar(&c.flags.MaxExpansions, "max-expansions", 0, "abort a search after this many expansions (0 = none)")
	pf.StringVar(&c.flags.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	f := root.Flags()
	f.StringVar(&c.flags.Algorithm, "alg", "", "search algorithm: bfs, ucs or astar")
	f.BoolVar(&c.flags.CheckOptimistic, "check-optimistic", false, "check that the heuristic never overestimates")
	f.BoolVar(&c.flags.CheckConsistent, "check-consistent", false, "check that the heuristic is consistent")

	root.AddCommand(c.newCompareCmd(), c.newGenerateCmd())

	return root
}

// runRoot prints the search block (if --alg is set), then the consistency
// and optimism reports, in that order.
func (c *cli) runRoot(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := c.resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Algorithm == "" && !cfg.CheckOptimistic && !cfg.CheckConsistent {
		return errNothingToDo
	}

	ctx, cancel := withTimeout(cmd.Context(), cfg)
	defer cancel()
	s, err := c.open(cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.flushMetrics()) }()

	if cfg.Algorithm != "" {
		strategy, err := search.ParseStrategy(cfg.Algorithm)
		if err != nil {
			return err
		}
		res, err := search.Run(s.space.Graph, strategy, s.space.Start, s.space.Goals, s.searchOptions(ctx, strategy)...)
		if err != nil {
			return fmt.Errorf("%s: %w", strategy.Title(), err)
		}
		if err = report.WriteSearch(c.stdout, cfg.StateSpace, res); err != nil {
			return err
		}
	}

	hopts := s.heuristicOptions(ctx)
	if cfg.CheckConsistent {
		rep, err := heuristic.CheckConsistent(s.space.Graph, *s.h, hopts...)
		if err != nil {
			return err
		}
		if err = report.WriteVerification(c.stdout, s.heuristicSource(), rep); err != nil {
			return err
		}
	}
	if cfg.CheckOptimistic {
		rep, err := heuristic.CheckOptimistic(s.space.Graph, s.space.Goals, *s.h, hopts...)
		if err != nil {
			return err
		}
		if err = report.WriteVerification(c.stdout, s.heuristicSource(), rep); err != nil {
			return err
		}
	}

	return nil
}

// resolveConfig loads --config, overlays every flag the user set and validates.
func (c *cli) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}

	fs := cmd.Flags()
	apply := func(name string, set func()) {
		if fs.Lookup(name) != nil && fs.Changed(name) {
			set()
		}
	}
	apply("alg", func() { cfg.Algorithm = c.flags.Algorithm })
	apply("ss", func() { cfg.StateSpace = c.flags.StateSpace })
	apply("h", func() { cfg.Heuristic = c.flags.Heuristic })
	apply("check-optimistic", func() { cfg.CheckOptimistic = c.flags.CheckOptimistic })
	apply("check-consistent", func() { cfg.CheckConsistent = c.flags.CheckConsistent })
	apply("log-level", func() { cfg.Log.Level = c.flags.Log.Level })
	apply("log-format", func() { cfg.Log.Format = c.flags.Log.Format })
	apply("timeout", func() { cfg.Timeout = c.flags.Timeout })
	apply("max-expansions", func() { cfg.MaxExpansions = c.flags.MaxExpansions })
	apply("metrics-file", func() { cfg.MetricsFile = c.flags.MetricsFile })

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// open builds the logger and metrics, then loads the state space and the
// heuristic. An explicit heuristic file wins over a table embedded in the
// state space.
func (c *cli) open(cfg config.Config) (*session, error) {
	s := &session{
		cfg: cfg,
		log: config.NewLogger(cfg.Log, c.stderr).With(slog.String("run_id", uuid.NewString())),
	}
	if cfg.MetricsFile != "" {
		s.metrics = metrics.New(nil)
	}

	space, err := loader.LoadStateSpace(cfg.StateSpace)
	if err != nil {
		return nil, err
	}
	s.space = space
	s.log.Info("state space loaded",
		slog.String("path", cfg.StateSpace),
		slog.Int("states", space.Graph.Len()),
		slog.Int("transitions", space.Graph.EdgeCount()),
	)

	switch {
	case cfg.Heuristic != "":
		h, err := loader.LoadHeuristic(cfg.Heuristic, space.Graph)
		if err != nil {
			return nil, err
		}
		s.h = &h
	case space.Heuristic != nil:
		s.h = space.Heuristic
	}
	if s.h == nil && cfg.NeedsHeuristic() {
		return nil, config.ErrHeuristicRequired
	}

	return s, nil
}

func (s *session) searchOptions(ctx context.Context, strategy search.Strategy) []search.Option {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(s.log),
		search.WithMaxExpansions(s.cfg.MaxExpansions),
	}
	if strategy == search.AStar && s.h != nil {
		opts = append(opts, search.WithHeuristic(*s.h))
	}
	if s.metrics != nil {
		opts = append(opts, search.WithObserver(s.metrics))
	}

	return opts
}

func (s *session) heuristicOptions(ctx context.Context) []heuristic.Option {
	opts := []heuristic.Option{heuristic.WithContext(ctx), heuristic.WithLogger(s.log)}
	if s.metrics != nil {
		opts = append(opts, heuristic.WithObserver(s.metrics))
	}

	return opts
}

// heuristicSource names the heuristic in report banners.
func (s *session) heuristicSource() string {
	if s.cfg.Heuristic != "" {
		return s.cfg.Heuristic
	}
	return s.cfg.StateSpace
}

// flushMetrics writes the metrics file, if one was requested.
func (s *session) flushMetrics() error {
	if s.metrics == nil {
		return nil
	}
	f, err := os.Create(s.cfg.MetricsFile)
	if err != nil {
		return fmt.Errorf("metrics file: %w", err)
	}
	if err = s.metrics.WriteText(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func withTimeout(ctx context.Context, cfg config.Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
