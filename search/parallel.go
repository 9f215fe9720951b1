package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/core"
)

// RunAll runs each strategy concurrently over the shared, read-only graph.
// Every invocation owns its frontier and visited table. Results are returned
// in the order of strategies. The first error cancels the remaining searches
// and is returned, tagged with the failing strategy.
//
// opts are applied to every invocation; WithContext is overridden by the
// group context derived from ctx.
func RunAll(ctx context.Context, g *core.Graph, start string, goals []string, strategies []Strategy, opts ...Option) ([]*Result, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	results := make([]*Result, len(strategies))
	grp, gctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		grp.Go(func() error {
			callOpts := append(append([]Option(nil), opts...), WithContext(gctx))
			res, err := Run(g, s, start, goals, callOpts...)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
