package mst

import "github.com/katalvlaran/nographs/weight"

// WeightedSuccessor is one outgoing edge from a vertex, as seen by an
// unlabeled Prim/Jarník run. Callers presenting an undirected graph must
// supply the edge in both directions (spec.md §4.9).
type WeightedSuccessor[V any, W weight.Weight] struct {
	To     V
	Weight W
}

// NextVertices enumerates the outgoing edges of v.
type NextVertices[V any, W weight.Weight] func(v V) []WeightedSuccessor[V, W]

// WeightedLabeledSuccessor is the labeled counterpart of WeightedSuccessor.
type WeightedLabeledSuccessor[V any, W weight.Weight, L any] struct {
	To     V
	Weight W
	Label  L
}

// NextLabeledVertices is the labeled counterpart of NextVertices.
type NextLabeledVertices[V any, W weight.Weight, L any] func(v V) []WeightedLabeledSuccessor[V, W, L]

// Option configures a single StartFrom call.
type Option[Vid comparable] func(*options[Vid])

type options[Vid comparable] struct {
	buildPaths       bool
	calculationLimit int
}

// WithBuildPaths enables predecessor-chain recording in Search.Paths.
func WithBuildPaths[Vid comparable]() Option[Vid] {
	return func(o *options[Vid]) { o.buildPaths = true }
}

// WithCalculationLimit bounds the number of successor-function calls.
func WithCalculationLimit[Vid comparable](n int) Option[Vid] {
	return func(o *options[Vid]) { o.calculationLimit = n }
}
