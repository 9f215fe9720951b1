// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1; one transition for every ordered pair (i,j), i≠j.
//   - Edge order: i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodComplete    = "Complete"
	minCompleteStates = 1
)

// Complete returns a Constructor for the complete directed graph on n states.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteStates, ErrTooFewStates)
		}
		if err := addStates(methodComplete, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, b, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
