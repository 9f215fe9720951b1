// Package builder generates synthetic state spaces for tests, benchmarks
// and the "lvsearch generate" command.
//
// Constructors (Path, Cycle, Complete, RandomSparse) are composed by
// BuildGraph over one core.Builder. Options pick the state naming scheme
// (WithIDScheme, WithSymbNumb, WithExcelColumnIDs), the transition cost
// distribution (WithConstantWeight, WithUniformWeight, WithIntegerWeight,
// WithExponentialWeight) and the random source (WithSeed, WithRand).
//
// The same options, seed and constructor order always produce the same graph.
package builder
