package dijkstra

import (
	"container/heap"
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/paths"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// heapItem is one priority-queue entry: a vertex, its id, and the tentative
// distance it was pushed with. seq breaks ties: the heap pops the
// most-recently-pushed entry first among equal distances (spec.md §4.7:
// "descending unique counter").
type heapItem[Vid comparable, V any, W weight.Weight] struct {
	id      Vid
	v       V
	dist    W
	seq     int
	isStart bool
}

type heapQueue[Vid comparable, V any, W weight.Weight] []*heapItem[Vid, V, W]

func (q heapQueue[Vid, V, W]) Len() int { return len(q) }
func (q heapQueue[Vid, V, W]) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return q[i].seq > q[j].seq
}
func (q heapQueue[Vid, V, W]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *heapQueue[Vid, V, W]) Push(x any)   { *q = append(*q, x.(*heapItem[Vid, V, W])) }
func (q *heapQueue[Vid, V, W]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// Search is a single Dijkstra shortest-paths run. Build one with
// NewFromVertices or NewFromLabeledVertices, call StartFrom, then pull
// reported vertices with Next or range over All.
type Search[Vid comparable, V any, W weight.Weight, L any] struct {
	g            gear.Gear[Vid, V, W, L]
	vertexToID   traversal.VertexToID[V, Vid]
	nextVertices NextVertices[V, W]
	nextLabeled  NextLabeledVertices[V, W, L]
	labeled      bool

	opts  options[Vid, W]
	limit traversal.CalculationLimit
	seq   int

	// Distance is the distance of the vertex most recently returned by Next.
	Distance W
	// Distances holds every vertex's best-known distance. Unless
	// WithKeepDistances was requested, a reported vertex's entry is
	// replaced with the gear's zero value once finalized.
	Distances gear.DistanceMap[Vid, W]
	// Visited is the set of vertices whose shortest distance is finalized.
	// Not created (nil) when WithIsTree was requested.
	Visited gear.VisitedSet[Vid]
	// Paths is the predecessor-chain store for this run.
	Paths paths.Store[Vid, V, L]

	pq heapQueue[Vid, V, W]

	started bool
	err     error
}

// NewFromVertices builds an unlabeled Dijkstra search.
func NewFromVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V, W],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextVertices: next}
}

// NewFromLabeledVertices builds a labeled Dijkstra search.
func NewFromLabeledVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, W, L],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextLabeled: next, labeled: true}
}

// StartFrom initializes bookkeeping for one or more start vertices, each at
// distance zero.
func (s *Search[Vid, V, W, L]) StartFrom(starts []V, opts ...Option[Vid, W]) error {
	if len(starts) == 0 {
		return fmt.Errorf("%w: dijkstra: StartFrom requires at least one start vertex", traversal.ErrUsage)
	}

	var o options[Vid, W]
	for _, opt := range opts {
		opt(&o)
	}
	s.opts = o
	s.limit = traversal.NewCalculationLimit(o.calculationLimit)
	s.Distances = s.g.DistanceMap(o.knownDistances)
	if !o.isTree {
		s.Visited = s.g.VisitedSet(nil)
	}

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
	s.Distance = s.g.Zero()
	s.started = true
	s.err = nil

	zero := s.g.Zero()
	for _, v := range starts {
		id := s.vertexToID(v)
		s.Distances.Set(id, zero)
		if o.buildPaths {
			s.Paths.SetStart(id, v)
		}
		s.pushStart(id, v, zero)
	}
	heap.Init(&s.pq)

	return nil
}

func (s *Search[Vid, V, W, L]) push(id Vid, v V, d W) {
	s.seq++
	heap.Push(&s.pq, &heapItem[Vid, V, W]{id: id, v: v, dist: d, seq: s.seq})
}

func (s *Search[Vid, V, W, L]) pushStart(id Vid, v V, d W) {
	s.seq++
	heap.Push(&s.pq, &heapItem[Vid, V, W]{id: id, v: v, dist: d, seq: s.seq, isStart: true})
}

// PeekDistance returns the distance of the heap's next pop without
// consuming it, for callers (bidirectional Dijkstra) that need to compare
// both sides' frontiers before deciding which one to advance. ok is false
// when the heap is empty.
func (s *Search[Vid, V, W, L]) PeekDistance() (d W, ok bool) {
	if s.pq.Len() == 0 {
		return d, false
	}

	return s.pq[0].dist, true
}

// Next advances the search and returns the next reported vertex (the start
// vertices themselves are not reported), or ok==false when the heap is
// exhausted.
func (s *Search[Vid, V, W, L]) Next() (v V, ok bool, err error) {
	if s.err != nil {
		return v, false, s.err
	}

	for s.pq.Len() > 0 {
		it := heap.Pop(&s.pq).(*heapItem[Vid, V, W])

		if !s.opts.isTree {
			if s.Visited.Contains(it.id) {
				continue // stale entry
			}
			if s.Distances.HasKey(it.id) && s.Distances.Get(it.id, s.g.Infinity()) < it.dist {
				continue // a better distance was already finalized
			}
			s.Visited.Add(it.id)
		}

		if err := s.expand(it); err != nil {
			s.err = err

			return v, false, err
		}

		if !s.opts.keepDistances {
			s.Distances.Set(it.id, s.g.Zero())
		}
		s.Distance = it.dist

		if it.isStart {
			continue // start vertices are not reported, only expanded
		}

		return it.v, true, nil
	}

	return v, false, nil
}

func (s *Search[Vid, V, W, L]) expand(u *heapItem[Vid, V, W]) error {
	if err := s.limit.Consume(); err != nil {
		return err
	}

	if s.labeled {
		for _, succ := range s.nextLabeled(u.v, u.dist) {
			if err := s.relax(u, succ.To, succ.Weight, succ.Label); err != nil {
				return err
			}
		}

		return nil
	}

	var zeroL L
	for _, succ := range s.nextVertices(u.v, u.dist) {
		if err := s.relax(u, succ.To, succ.Weight, zeroL); err != nil {
			return err
		}
	}

	return nil
}

func (s *Search[Vid, V, W, L]) relax(u *heapItem[Vid, V, W], to V, w W, label L) error {
	nd, err := weight.Add(u.dist, w, s.g.Infinity())
	if err != nil {
		return s.g.ReportOverflow(nd)
	}

	id := s.vertexToID(to)
	if s.opts.isTree {
		s.Distances.Set(id, nd)
		if s.opts.buildPaths {
			s.Paths.AppendEdge(u.v, id, to, label)
		}
		s.push(id, to, nd)

		return nil
	}

	if s.Distances.HasKey(id) && s.Distances.Get(id, s.g.Infinity()) <= nd {
		return nil
	}
	s.Distances.Set(id, nd)
	if s.opts.buildPaths {
		s.Paths.AppendEdge(u.v, id, to, label)
	}
	s.push(id, to, nd)

	return nil
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
