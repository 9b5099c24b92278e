package dfs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// ErrCycle is returned by TopologicalSort when the graph is not a DAG.
var ErrCycle = errors.New("dfs: graph contains a cycle, no topological order exists")

// TopologicalSort computes a topological order of the vertices reachable
// from starts: a DFS run in ModeDFSTree reporting LEAVING_SUCCESSOR and
// LEAVING_START, whose postorder is already "prerequisites before
// dependents" and needs no reversal (for an edge u->v, v finishes and is
// reported before u, which is exactly what DFS postorder gives).
// A BACK_EDGE during the run means the graph has a cycle; Run then returns
// ErrCycle with CycleFromStart populated with the offending cycle.
type TopologicalSort[Vid comparable, V any, W weight.Weight, L any] struct {
	search     *Search[Vid, V, W, L]
	vertexToID traversal.VertexToID[V, Vid]

	order []V
	// CycleFromStart holds the cycle found by the most recent failed Run,
	// starting and ending at the same vertex (e.g. [make, water, make]).
	CycleFromStart []V

	err  error
	done bool
}

// NewTopologicalSort builds a topological sort over an unlabeled graph.
func NewTopologicalSort[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V],
) *TopologicalSort[Vid, V, W, L] {
	return &TopologicalSort[Vid, V, W, L]{
		search:     NewFromVertices[Vid, V, W, L](g, vertexToID, next),
		vertexToID: vertexToID,
	}
}

// NewTopologicalSortLabeled builds a topological sort over a labeled graph.
func NewTopologicalSortLabeled[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, L],
) *TopologicalSort[Vid, V, W, L] {
	return &TopologicalSort[Vid, V, W, L]{
		search:     NewFromLabeledVertices[Vid, V, W, L](g, vertexToID, next),
		vertexToID: vertexToID,
	}
}

// Run executes the sort over the given start vertices and returns the
// topological order. This is the General case (spec.md §4.6): it tracks
// on-trace membership and detects cycles via ErrCycle.
func (t *TopologicalSort[Vid, V, W, L]) Run(starts []V, calculationLimit int) ([]V, error) {
	return t.run(starts, calculationLimit, false)
}

// RunTree is the Tree case (spec.md §4.6): the caller asserts the successor
// function already describes a tree, so on-trace tracking and cycle
// detection are skipped entirely. A cyclic input given to RunTree produces
// undefined iteration, not ErrCycle.
func (t *TopologicalSort[Vid, V, W, L]) RunTree(starts []V, calculationLimit int) ([]V, error) {
	return t.run(starts, calculationLimit, true)
}

func (t *TopologicalSort[Vid, V, W, L]) run(starts []V, calculationLimit int, tree bool) ([]V, error) {
	opts := []Option[Vid]{
		WithMode[Vid](ModeDFSTree),
		WithReport[Vid](EventLeavingSuccessor | EventLeavingStart | EventBackEdge),
	}
	if calculationLimit > 0 {
		opts = append(opts, WithCalculationLimit[Vid](calculationLimit))
	}
	if tree {
		opts = append(opts, WithIsTree[Vid](true))
	}
	if err := t.search.StartFrom(starts, opts...); err != nil {
		return nil, err
	}

	var order []V
	for {
		v, ok, err := t.search.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if t.search.Event == EventBackEdge {
			t.CycleFromStart = t.buildCycle(v)

			return nil, fmt.Errorf("%w: cycle_from_start %v", ErrCycle, t.CycleFromStart)
		}
		order = append(order, v)
	}

	t.order = order
	t.done = true

	return order, nil
}

// buildCycle reconstructs [ancestor, ..., top, ancestor] from the current
// trace, given the ancestor vertex a back edge pointed to.
func (t *TopologicalSort[Vid, V, W, L]) buildCycle(ancestor V) []V {
	targetID := t.vertexToID(ancestor)
	trace := t.search.Trace()
	ids := t.search.TraceIDs()

	idx := 0
	for i, id := range ids {
		if id == targetID {
			idx = i

			break
		}
	}

	cycle := append([]V(nil), trace[idx:]...)
	cycle = append(cycle, ancestor)

	return cycle
}

// All ranges over the topological order computed by a prior Run.
func (t *TopologicalSort[Vid, V, W, L]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.order {
			if !yield(v) {
				return
			}
		}
	}
}
