// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Every sentinel also matches core.ErrConfiguration.
//   • Constructors attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrTooFewStates indicates that n is smaller than the minimum the
// requested constructor accepts.
var ErrTooFewStates = fmt.Errorf("%w: builder: parameter too small", core.ErrConfiguration)

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = fmt.Errorf("%w: builder: probability out of range", core.ErrConfiguration)

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = fmt.Errorf("%w: builder: rng is required", core.ErrConfiguration)

// ErrUnknownKind is returned by ByName for an unrecognised constructor name.
var ErrUnknownKind = fmt.Errorf("%w: builder: unknown kind", core.ErrConfiguration)
