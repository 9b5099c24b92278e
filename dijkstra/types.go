package dijkstra

import (
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// ErrNotStarted is returned by a filter method called before StartFrom.
var ErrNotStarted = traversal.ErrUsage

// WeightedSuccessor pairs a reachable vertex with the weight of the edge
// reaching it.
type WeightedSuccessor[V any, W weight.Weight] struct {
	To     V
	Weight W
}

// NextVertices enumerates the unlabeled weighted successors of v. distance
// is v's current best-known distance from the start, passed for read
// access to state per spec.md §3.
type NextVertices[V any, W weight.Weight] func(v V, distance W) []WeightedSuccessor[V, W]

// WeightedLabeledSuccessor is WeightedSuccessor plus an edge label.
type WeightedLabeledSuccessor[V any, W weight.Weight, L any] struct {
	To     V
	Weight W
	Label  L
}

// NextLabeledVertices enumerates the labeled weighted successors of v.
type NextLabeledVertices[V any, W weight.Weight, L any] func(v V, distance W) []WeightedLabeledSuccessor[V, W, L]

// Option configures a StartFrom call.
type Option[Vid comparable, W weight.Weight] func(*options[Vid, W])

type options[Vid comparable, W weight.Weight] struct {
	buildPaths       bool
	keepDistances    bool
	knownDistances   map[Vid]W
	calculationLimit int
	isTree           bool
}

// WithBuildPaths enables predecessor recording and path iterators.
func WithBuildPaths[Vid comparable, W weight.Weight]() Option[Vid, W] {
	return func(o *options[Vid, W]) { o.buildPaths = true }
}

// WithKeepDistances keeps every finalized distance in the Distances map
// instead of replacing it with zero once a vertex is reported (spec.md
// §4.7: the default reclaims temporary values for GC while still rejecting
// longer alternatives).
func WithKeepDistances[Vid comparable, W weight.Weight]() Option[Vid, W] {
	return func(o *options[Vid, W]) { o.keepDistances = true }
}

// WithKnownDistances preloads distances, mutated in place during the run;
// the same map surfaces as Search.Distances afterwards.
func WithKnownDistances[Vid comparable, W weight.Weight](known map[Vid]W) Option[Vid, W] {
	return func(o *options[Vid, W]) { o.knownDistances = known }
}

// WithCalculationLimit bounds the number of successor-function calls; n<=0
// means unlimited.
func WithCalculationLimit[Vid comparable, W weight.Weight](n int) Option[Vid, W] {
	return func(o *options[Vid, W]) { o.calculationLimit = n }
}

// WithIsTree skips the visited check and distance-update logic, assuming
// the caller's successor function already describes a tree (each vertex
// reachable via exactly one path). Invalid input is undefined behavior,
// not a detected error.
func WithIsTree[Vid comparable, W weight.Weight]() Option[Vid, W] {
	return func(o *options[Vid, W]) { o.isTree = true }
}
