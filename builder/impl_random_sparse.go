// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j: each
//     transition is included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewStates).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - States are declared via cfg.idFn in ascending index order (0..n-1).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.
//   - The cost is drawn only for included transitions, right after the trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	minRandomSparseStates = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor that samples a directed graph over n
// states with independent transition probability p.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseStates, ErrTooFewStates)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addStates(methodRandomSparse, b, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				var include bool
				switch {
				case p == probMax:
					include = true
				case p == probMin:
					include = false
				default:
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(methodRandomSparse, b, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
