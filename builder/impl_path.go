// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; transitions i→i+1 for i = 0..n-2.
//   - Cycle: n ≥ 3; the path plus (n-1)→0.
//   - States are declared via cfg.idFn in ascending index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	minPathStates  = 2
	minCycleStates = 3
)

// Path returns a Constructor for a one-way chain of n states.
// The only route from the first to the last state has n-1 transitions.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathStates, ErrTooFewStates)
		}
		return chain(methodPath, b, cfg, n, false)
	}
}

// Cycle returns a Constructor for a directed ring of n states.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleStates, ErrTooFewStates)
		}
		return chain(methodCycle, b, cfg, n, true)
	}
}

func chain(method string, b *core.Builder, cfg builderConfig, n int, closed bool) error {
	if err := addStates(method, b, cfg, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := addEdge(method, b, cfg, i, i+1); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(method, b, cfg, n-1, 0)
	}

	return nil
}
