// Package mst computes a minimum spanning tree (or, for multiple starts, a
// minimum spanning forest) with Prim/Jarník's algorithm: a min-heap of
// candidate edges keyed by weight, tie-broken so the more recently pushed
// edge wins, growing the tree one cheapest-frontier-edge at a time.
package mst

import (
	"container/heap"
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/paths"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// heapItem is one candidate frontier edge: from the tree to an as-yet
// unvisited target. seq breaks ties: newer edges win (spec.md §4.9).
type heapItem[Vid comparable, V any, W weight.Weight, L any] struct {
	from   V
	id     Vid
	to     V
	weight W
	label  L
	seq    int
}

type heapQueue[Vid comparable, V any, W weight.Weight, L any] []*heapItem[Vid, V, W, L]

func (q heapQueue[Vid, V, W, L]) Len() int { return len(q) }
func (q heapQueue[Vid, V, W, L]) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}

	return q[i].seq > q[j].seq
}
func (q heapQueue[Vid, V, W, L]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *heapQueue[Vid, V, W, L]) Push(x any)   { *q = append(*q, x.(*heapItem[Vid, V, W, L])) }
func (q *heapQueue[Vid, V, W, L]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// Search is a single Prim/Jarník run. Build one with NewFromVertices or
// NewFromLabeledVertices, call StartFrom, then pull reported vertices with
// Next or range over All.
type Search[Vid comparable, V any, W weight.Weight, L any] struct {
	g            gear.Gear[Vid, V, W, L]
	vertexToID   traversal.VertexToID[V, Vid]
	nextVertices NextVertices[V, W]
	nextLabeled  NextLabeledVertices[V, W, L]
	labeled      bool

	opts  options[Vid]
	limit traversal.CalculationLimit
	seq   int

	// Weight is the weight of the edge most recently reported by Next.
	Weight W
	// From is the tree-side endpoint of the edge most recently reported.
	From V
	// Visited is the set of vertices already joined to the tree/forest.
	Visited gear.VisitedSet[Vid]
	// Paths is the predecessor-chain store for this run.
	Paths paths.Store[Vid, V, L]

	pq heapQueue[Vid, V, W, L]

	started bool
	err     error
}

// NewFromVertices builds an unlabeled MST search.
func NewFromVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V, W],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextVertices: next}
}

// NewFromLabeledVertices builds a labeled MST search.
func NewFromLabeledVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, W, L],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextLabeled: next, labeled: true}
}

// StartFrom marks every start vertex visited eagerly and seeds the heap
// with all of their outgoing edges. Multiple starts grow a spanning forest.
// Only a repeated start is skipped: a later start in the same component as
// an earlier one is still marked visited and expanded as a root of its own,
// so that component is spanned by more than one tree.
func (s *Search[Vid, V, W, L]) StartFrom(starts []V, opts ...Option[Vid]) error {
	if len(starts) == 0 {
		return fmt.Errorf("%w: mst: StartFrom requires at least one start vertex", traversal.ErrUsage)
	}

	var o options[Vid]
	for _, opt := range opts {
		opt(&o)
	}
	s.opts = o
	s.limit = traversal.NewCalculationLimit(o.calculationLimit)
	s.Visited = s.g.VisitedSet(nil)

	if o.buildPaths {
		pred := s.g.PredecessorMap(nil)
		var labels gear.LabelMap[Vid, L]
		if s.labeled {
			labels = s.g.LabelMap(nil)
		}
		s.Paths = paths.NewHashStore[Vid, V, L](s.vertexToID, pred, labels)
	} else {
		s.Paths = paths.NewDummyStore[Vid, V, L]()
	}

	s.pq = nil
	s.seq = 0
	s.Weight = s.g.Zero()
	s.started = true
	s.err = nil

	for _, v := range starts {
		id := s.vertexToID(v)
		if s.Visited.Contains(id) {
			continue
		}
		s.Visited.Add(id)
		if o.buildPaths {
			s.Paths.SetStart(id, v)
		}
		if err := s.expand(v); err != nil {
			s.err = err

			return err
		}
	}
	heap.Init(&s.pq)

	return nil
}

func (s *Search[Vid, V, W, L]) push(from V, id Vid, to V, w W, label L) {
	s.seq++
	heap.Push(&s.pq, &heapItem[Vid, V, W, L]{from: from, id: id, to: to, weight: w, label: label, seq: s.seq})
}

func (s *Search[Vid, V, W, L]) expand(v V) error {
	if err := s.limit.Consume(); err != nil {
		return err
	}

	if s.labeled {
		for _, succ := range s.nextLabeled(v) {
			id := s.vertexToID(succ.To)
			if s.Visited.Contains(id) {
				continue
			}
			s.push(v, id, succ.To, succ.Weight, succ.Label)
		}

		return nil
	}

	var zeroL L
	for _, succ := range s.nextVertices(v) {
		id := s.vertexToID(succ.To)
		if s.Visited.Contains(id) {
			continue
		}
		s.push(v, id, succ.To, succ.Weight, zeroL)
	}

	return nil
}

// Next advances the search and returns the next vertex joined to the
// tree/forest (the start vertices themselves are not reported), or
// ok==false once every reachable vertex has been reported.
func (s *Search[Vid, V, W, L]) Next() (v V, ok bool, err error) {
	if s.err != nil {
		return v, false, s.err
	}

	for s.pq.Len() > 0 {
		it := heap.Pop(&s.pq).(*heapItem[Vid, V, W, L])
		if s.Visited.Contains(it.id) {
			continue // stale: the target already joined via a cheaper edge
		}

		s.Visited.Add(it.id)
		if s.opts.buildPaths {
			s.Paths.AppendEdge(it.from, it.id, it.to, it.label)
		}
		s.Weight = it.weight
		s.From = it.from

		if err := s.expand(it.to); err != nil {
			s.err = err

			return v, false, err
		}

		return it.to, true, nil
	}

	return v, false, nil
}

// All returns the reported vertices as a range-over-func sequence. Check
// Err afterwards to distinguish normal exhaustion from a failed run.
func (s *Search[Vid, V, W, L]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok, err := s.Next()
			if err != nil || !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the error that terminated the run, if any.
func (s *Search[Vid, V, W, L]) Err() error { return s.err }
