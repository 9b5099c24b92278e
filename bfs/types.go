// Package bfs implements breadth-first search over a lazily-enumerated,
// implicitly-defined graph: the caller supplies a successor function instead
// of a stored adjacency structure, and BFS reports vertices one at a time,
// in non-decreasing distance from the start, without ever materializing the
// whole graph.
//
// Two alternating frontier buckets (current depth, next depth) are swapped
// each level; every vertex in the current bucket is expanded, each newly
// seen successor is reported, marked visited, has its predecessor recorded,
// and is placed in the next bucket. Depth tracks the most recently reported
// vertex's distance in edges from a start vertex.
//
// Complexity (V, E = vertices/edges actually reachable and explored):
//
//   - Time:   O(V + E), each vertex enqueued and expanded at most once.
//   - Memory: O(V) for the two buckets, the visited set, and the paths store.
//
// Errors:
//
//	ErrUsage            - no start vertex given.
//	ErrCalculationLimit - the CalculationLimit was exhausted mid-run.
//	ErrNotStarted       - a filter method was called before StartFrom.
package bfs

import "github.com/katalvlaran/nographs/traversal"

// ErrNotStarted is returned by a filter method called before StartFrom.
var ErrNotStarted = traversal.ErrUsage

// NextVertices enumerates the unlabeled successors of v. depth is the
// current BFS depth of v, passed for read access to state per spec.md §3.
type NextVertices[V any] func(v V, depth int) []V

// LabeledSuccessor pairs a reachable vertex with the edge label reaching
// it. BFS never carries weight (spec.md §3: "weight may be absent for
// unweighted strategies").
type LabeledSuccessor[V any, L any] struct {
	To    V
	Label L
}

// NextLabeledVertices enumerates the labeled successors of v.
type NextLabeledVertices[V any, L any] func(v V, depth int) []LabeledSuccessor[V, L]

// Option configures a StartFrom call.
type Option[Vid comparable] func(*options[Vid])

type options[Vid comparable] struct {
	buildPaths          bool
	calculationLimit    int
	alreadyVisited      []Vid
	reportDepthIncrease bool // hidden option used by bidirectional BFS
}

// WithBuildPaths enables predecessor recording and path iterators.
func WithBuildPaths[Vid comparable]() Option[Vid] {
	return func(o *options[Vid]) { o.buildPaths = true }
}

// WithCalculationLimit bounds the number of successor-function calls; n<=0
// means unlimited.
func WithCalculationLimit[Vid comparable](n int) Option[Vid] {
	return func(o *options[Vid]) { o.calculationLimit = n }
}

// WithAlreadyVisited preloads a visited set: the ids are copied into the
// run's Visited set (the caller's slice is not modified), and vertices in it
// are never (re-)reported.
func WithAlreadyVisited[Vid comparable](ids []Vid) Option[Vid] {
	return func(o *options[Vid]) { o.alreadyVisited = ids }
}

// WithReportDepthIncrease re-reports the last vertex of a level immediately
// before moving to the next level; used by bidirectional BFS to detect
// layer boundaries (spec.md §4.3's hidden option).
func WithReportDepthIncrease[Vid comparable]() Option[Vid] {
	return func(o *options[Vid]) { o.reportDepthIncrease = true }
}
