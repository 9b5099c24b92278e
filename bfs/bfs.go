package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/paths"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// item is one frontier entry: a vertex, its id, and its BFS depth.
type item[Vid comparable, V any] struct {
	id    Vid
	v     V
	depth int
}

// Search is a single breadth-first traversal run. Build one with
// NewFromVertices or NewFromLabeledVertices, call StartFrom, then pull
// reported vertices with Next or range over All.
type Search[Vid comparable, V any, W weight.Weight, L any] struct {
	g            gear.Gear[Vid, V, W, L]
	vertexToID   traversal.VertexToID[V, Vid]
	nextVertices NextVertices[V]
	nextLabeled  NextLabeledVertices[V, L]
	labeled      bool

	opts  options[Vid]
	limit traversal.CalculationLimit

	// Depth is the depth of the vertex most recently returned by Next.
	Depth int
	// Visited is the set of vertex ids that have been enqueued.
	Visited gear.VisitedSet[Vid]
	// Paths is the predecessor-chain store for this run.
	Paths paths.Store[Vid, V, L]

	frontier     []item[Vid, V]
	nextFrontier []item[Vid, V]
	reportQueue  []item[Vid, V]
	lastReported *item[Vid, V]

	started bool
	err     error
}

// NewFromVertices builds an unlabeled BFS search.
func NewFromVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextVertices: next, Depth: -1}
}

// NewFromLabeledVertices builds a labeled BFS search.
func NewFromLabeledVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, L],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextLabeled: next, labeled: true, Depth: -1}
}

// StartFrom initializes bookkeeping for one or more start vertices and
// configures the run via opts. It must be called exactly once, before the
// first Next/All/filter call.
func (s *Search[Vid, V, W, L]) StartFrom(starts []V, opts ...Option[Vid]) error {
	if len(starts) == 0 {
		return fmt.Errorf("%w: bfs: StartFrom requires at least one start vertex", traversal.ErrUsage)
	}

	var o options[Vid]
	for _, opt := range opts {
		opt(&o)
	}
	s.opts = o
	s.limit = traversal.NewCalculationLimit(o.calculationLimit)
	s.Visited = s.g.VisitedSet(o.alreadyVisited)

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

	s.Depth = -1
	s.frontier = nil
	s.nextFrontier = nil
	s.reportQueue = nil
	s.lastReported = nil
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
		// start vertices are seeded for expansion only: spec.md §4.3 reports
		// "each newly seen successor", and a start vertex is not a successor.
		s.frontier = append(s.frontier, item[Vid, V]{id: id, v: v, depth: 0})
	}
	s.started = true

	return nil
}

// Next advances the search and returns the next reported vertex, or
// ok==false when the frontier is exhausted. err is non-nil (and ok is
// false) when the run failed (the calculation limit was exhausted).
func (s *Search[Vid, V, W, L]) Next() (v V, ok bool, err error) {
	if s.err != nil {
		return v, false, s.err
	}
	if len(s.reportQueue) == 0 {
		if err := s.advance(); err != nil {
			s.err = err

			return v, false, err
		}
	}
	if len(s.reportQueue) == 0 {
		return v, false, nil
	}
	it := s.reportQueue[0]
	s.reportQueue = s.reportQueue[1:]
	s.Depth = it.depth
	s.lastReported = &it

	return it.v, true, nil
}

// advance expands frontier vertices until reportQueue gains an entry or the
// whole frontier is exhausted.
func (s *Search[Vid, V, W, L]) advance() error {
	for len(s.reportQueue) == 0 {
		if len(s.frontier) == 0 {
			if len(s.nextFrontier) == 0 {
				return nil // fully exhausted
			}
			if s.opts.reportDepthIncrease && s.lastReported != nil {
				s.reportQueue = append(s.reportQueue, *s.lastReported)
				s.lastReported = nil // only once per boundary
			}
			s.frontier, s.nextFrontier = s.nextFrontier, s.frontier[:0]
			if len(s.reportQueue) > 0 {
				return nil
			}

			continue
		}

		u := s.frontier[0]
		s.frontier = s.frontier[1:]
		if err := s.limit.Consume(); err != nil {
			return err
		}

		if s.labeled {
			for _, succ := range s.nextLabeled(u.v, u.depth) {
				if err := s.consider(u, succ.To, succ.Label); err != nil {
					return err
				}
			}
		} else {
			for _, to := range s.nextVertices(u.v, u.depth) {
				var zeroL L
				if err := s.consider(u, to, zeroL); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (s *Search[Vid, V, W, L]) consider(u item[Vid, V], to V, label L) error {
	id := s.vertexToID(to)
	if s.Visited.Contains(id) {
		return nil
	}
	s.Visited.Add(id)
	if s.opts.buildPaths {
		s.Paths.AppendEdge(u.v, id, to, label)
	}
	it := item[Vid, V]{id: id, v: to, depth: u.depth + 1}
	s.nextFrontier = append(s.nextFrontier, it)
	s.reportQueue = append(s.reportQueue, it)

	return nil
}

// All returns the reported vertices as a range-over-func sequence. On
// failure the loop simply stops early; call Err afterwards to distinguish
// normal exhaustion from a failed run.
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
