// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order, builds.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// Constructor applies a deterministic mutation to a core.Builder using the
// resolved builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves the configuration from bopts, applies all constructors
// in order to one core.Builder and returns the built graph. Constructors
// sharing state names compose: re-declaring a state is a no-op and a repeated
// transition keeps the latest cost.
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w"; branch with errors.Is
//     against ErrTooFewStates, ErrInvalidProbability, ErrNeedRandSource.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := core.NewBuilder()
	for _, c := range cons {
		if err := c(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build()
}

// Kinds lists the names accepted by ByName.
func Kinds() []string {
	return []string{"path", "cycle", "complete", "random"}
}

// ByName returns the constructor called name with n states. p is used only
// by "random".
func ByName(name string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(name) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "complete":
		return Complete(n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, name, strings.Join(Kinds(), ", "))
	}
}

// addStates declares states 0..n-1 in index order.
func addStates(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := b.AddState(id); err != nil {
			return fmt.Errorf("%s: AddState(%s): %w", method, id, err)
		}
	}
	return nil
}

// addEdge adds i→j with a cost drawn from cfg.weightFn.
func addEdge(method string, b *core.Builder, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := b.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	return nil
}
