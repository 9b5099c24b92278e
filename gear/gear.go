// Package gear implements the storage-factory abstraction shared by every
// search strategy: a Gear produces the bookkeeping containers (visited set,
// distance/predecessor/label/time maps, vertex/label sequences) used by a
// single traversal run, without the strategies ever branching on which
// concrete container flavor they got.
//
// Two concrete families are provided:
//
//   - HashGear: hash-map/hash-set backed, works for any comparable Vid.
//   - ArrayGear: dense array / bit-vector backed, specialized for
//     nonnegative small-integer Vids (see array_gear.go).
//
// Strategies hold the Gear and the containers it produces as interface
// values, so every container access is an interface method call; the hot
// loops in bfs/dfs/dijkstra/mst never type-switch on gear kind. ArrayGear's
// containers are plain indexed slices, already O(1) per operation with no
// hashing to begin with, so the interface methods alone (Contains/Add/
// Get/Set) are enough without a separate probe surface.
//
// Errors:
//
//	(none of its own — ReportOverflow delegates to weight.ErrOverflow)
package gear

import "github.com/katalvlaran/nographs/weight"

// VisitedSet is the set of vertex ids that must not be expanded again.
type VisitedSet[Vid comparable] interface {
	Contains(id Vid) bool
	Add(id Vid)
	Len() int
}

// PredecessorMap maps a vertex id to its recorded predecessor vertex.
// A missing key is the documented signal for "no path".
type PredecessorMap[Vid comparable, V any] interface {
	Get(id Vid) (V, bool)
	Set(id Vid, v V)
	Delete(id Vid)
}

// LabelMap maps a vertex id to the edge label on its predecessor entry.
// Only populated for labeled strategies, always paired with a PredecessorMap.
type LabelMap[Vid comparable, L any] interface {
	Get(id Vid) (L, bool)
	Set(id Vid, l L)
	Delete(id Vid)
}

// DistanceMap maps a vertex id to its current best-known distance.
// A missing key semantically equals the gear's Infinity().
type DistanceMap[Vid comparable, W weight.Weight] interface {
	// Get returns the stored distance, or inf (the gear's infinity) if absent.
	Get(id Vid, inf W) W
	HasKey(id Vid) bool
	Set(id Vid, d W)
	Delete(id Vid)
}

// TimeMap maps a vertex id to a nonnegative integer (DFS entry index).
// A missing key equals 0.
type TimeMap[Vid comparable] interface {
	Get(id Vid) int
	Set(id Vid, t int)
}

// VertexSequence is a mutable, appendable sequence of V, used to buffer
// path iteration results.
type VertexSequence[V any] interface {
	Append(v V)
	Slice() []V
}

// LabelSequence is the labeled-edge counterpart of VertexSequence.
type LabelSequence[L any] interface {
	Append(l L)
	Slice() []L
}

// Gear bundles the factories that produce every bookkeeping container used
// by a single traversal run, plus the Weight zero/infinity sentinels and the
// overflow hook required by weight.CheckOverflow callers.
type Gear[Vid comparable, V any, W weight.Weight, L any] interface {
	VisitedSet(initial []Vid) VisitedSet[Vid]
	PredecessorMap(initial map[Vid]V) PredecessorMap[Vid, V]
	LabelMap(initial map[Vid]L) LabelMap[Vid, L]
	DistanceMap(initial map[Vid]W) DistanceMap[Vid, W]
	TimeMap(initial map[Vid]int) TimeMap[Vid]
	VertexSequence(initial []V) VertexSequence[V]
	LabelSequence(initial []L) LabelSequence[L]

	Zero() W
	Infinity() W

	// ReportOverflow is invoked when the engine detects a computed distance
	// that reaches or exceeds Infinity(). By contract it must return a
	// non-nil error; the run fails with it.
	ReportOverflow(value W) error
}
