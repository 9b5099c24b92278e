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

// Heuristic estimates the remaining distance from v to the goal. A value
// equal to the gear's infinity marks v as unreachable-from-here: the
// resulting path-length guess stays infinity without triggering an
// overflow report (spec.md §4.8).
type Heuristic[V any, W weight.Weight] func(v V) W

// aStarItem is a heap entry ordered by f = g + h; seq breaks ties the same
// way heapItem does for plain Dijkstra.
type aStarItem[Vid comparable, V any, W weight.Weight] struct {
	id      Vid
	v       V
	g       W
	f       W
	seq     int
	isStart bool
}

type aStarQueue[Vid comparable, V any, W weight.Weight] []*aStarItem[Vid, V, W]

func (q aStarQueue[Vid, V, W]) Len() int { return len(q) }
func (q aStarQueue[Vid, V, W]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq > q[j].seq
}
func (q aStarQueue[Vid, V, W]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *aStarQueue[Vid, V, W]) Push(x any)   { *q = append(*q, x.(*aStarItem[Vid, V, W])) }
func (q *aStarQueue[Vid, V, W]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// AStar is a single A* run: the same heap discipline as Search, keyed on
// g(v)+h(v) instead of plain distance.
type AStar[Vid comparable, V any, W weight.Weight, L any] struct {
	g            gear.Gear[Vid, V, W, L]
	vertexToID   traversal.VertexToID[V, Vid]
	nextVertices NextVertices[V, W]
	nextLabeled  NextLabeledVertices[V, W, L]
	labeled      bool
	heuristic    Heuristic[V, W]

	opts  options[Vid, W]
	limit traversal.CalculationLimit
	seq   int

	// Distance is the final g(v) of the vertex most recently returned by Next.
	Distance W
	// Distances holds every vertex's best-known g value.
	Distances gear.DistanceMap[Vid, W]
	// PathLengthGuesses holds every vertex's best-known f = g + h value.
	PathLengthGuesses gear.DistanceMap[Vid, W]
	Paths             paths.Store[Vid, V, L]

	pq aStarQueue[Vid, V, W]

	started bool
	err     error
}

// NewAStarFromVertices builds an unlabeled A* search.
func NewAStarFromVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V, W],
	h Heuristic[V, W],
) *AStar[Vid, V, W, L] {
	return &AStar[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextVertices: next, heuristic: h}
}

// NewAStarFromLabeledVertices builds a labeled A* search.
func NewAStarFromLabeledVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, W, L],
	h Heuristic[V, W],
) *AStar[Vid, V, W, L] {
	return &AStar[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextLabeled: next, labeled: true, heuristic: h}
}

// StartFrom initializes bookkeeping for one or more start vertices.
func (a *AStar[Vid, V, W, L]) StartFrom(starts []V, opts ...Option[Vid, W]) error {
	if len(starts) == 0 {
		return fmt.Errorf("%w: dijkstra: StartFrom requires at least one start vertex", traversal.ErrUsage)
	}

	var o options[Vid, W]
	for _, opt := range opts {
		opt(&o)
	}
	a.opts = o
	a.limit = traversal.NewCalculationLimit(o.calculationLimit)
	a.Distances = a.g.DistanceMap(o.knownDistances)
	a.PathLengthGuesses = a.g.DistanceMap(nil)

	if o.buildPaths {
		pred := a.g.PredecessorMap(nil)
		var labels gear.LabelMap[Vid, L]
		if a.labeled {
			labels = a.g.LabelMap(nil)
		}
		a.Paths = paths.NewHashStore[Vid, V, L](a.vertexToID, pred, labels)
	} else {
		a.Paths = paths.NewDummyStore[Vid, V, L]()
	}

	a.pq = nil
	a.seq = 0
	a.Distance = a.g.Zero()
	a.started = true
	a.err = nil

	zero := a.g.Zero()
	for _, v := range starts {
		id := a.vertexToID(v)
		a.Distances.Set(id, zero)
		f := a.heuristicFor(v, zero)
		a.PathLengthGuesses.Set(id, f)
		if o.buildPaths {
			a.Paths.SetStart(id, v)
		}
		a.pushStart(id, v, zero, f)
	}
	heap.Init(&a.pq)

	return nil
}

// heuristicFor computes f = g + h(v), special-casing h(v) == infinity so it
// never participates in arithmetic (spec.md §4.8).
func (a *AStar[Vid, V, W, L]) heuristicFor(v V, g W) W {
	h := a.heuristic(v)
	if h >= a.g.Infinity() {
		return a.g.Infinity()
	}
	f, err := weight.Add(g, h, a.g.Infinity())
	if err != nil {
		return a.g.Infinity()
	}

	return f
}

func (a *AStar[Vid, V, W, L]) push(id Vid, v V, g, f W) {
	a.seq++
	heap.Push(&a.pq, &aStarItem[Vid, V, W]{id: id, v: v, g: g, f: f, seq: a.seq})
}

func (a *AStar[Vid, V, W, L]) pushStart(id Vid, v V, g, f W) {
	a.seq++
	heap.Push(&a.pq, &aStarItem[Vid, V, W]{id: id, v: v, g: g, f: f, seq: a.seq, isStart: true})
}

// Next advances the search and returns the next reported vertex, or
// ok==false when the heap is exhausted.
func (a *AStar[Vid, V, W, L]) Next() (v V, ok bool, err error) {
	if a.err != nil {
		return v, false, a.err
	}

	for a.pq.Len() > 0 {
		it := heap.Pop(&a.pq).(*aStarItem[Vid, V, W])

		if a.PathLengthGuesses.Get(it.id, a.g.Infinity()) < it.f {
			continue // a better f was already recorded; stale entry
		}

		if err := a.expand(it); err != nil {
			a.err = err

			return v, false, err
		}

		a.Distance = it.g

		if it.isStart {
			continue // start vertices are not reported, only expanded
		}

		return it.v, true, nil
	}

	return v, false, nil
}

func (a *AStar[Vid, V, W, L]) expand(u *aStarItem[Vid, V, W]) error {
	if err := a.limit.Consume(); err != nil {
		return err
	}

	if a.labeled {
		for _, succ := range a.nextLabeled(u.v, u.g) {
			if err := a.relax(u, succ.To, succ.Weight, succ.Label); err != nil {
				return err
			}
		}

		return nil
	}

	var zeroL L
	for _, succ := range a.nextVertices(u.v, u.g) {
		if err := a.relax(u, succ.To, succ.Weight, zeroL); err != nil {
			return err
		}
	}

	return nil
}

func (a *AStar[Vid, V, W, L]) relax(u *aStarItem[Vid, V, W], to V, w W, label L) error {
	ng, err := weight.Add(u.g, w, a.g.Infinity())
	if err != nil {
		return a.g.ReportOverflow(ng)
	}

	id := a.vertexToID(to)
	if a.Distances.HasKey(id) && a.Distances.Get(id, a.g.Infinity()) <= ng {
		return nil
	}

	nf := a.heuristicFor(to, ng)
	a.Distances.Set(id, ng)
	a.PathLengthGuesses.Set(id, nf)
	if a.opts.buildPaths {
		a.Paths.AppendEdge(u.v, id, to, label)
	}
	a.push(id, to, ng, nf)

	return nil
}

// All returns the reported vertices as a range-over-func sequence.
func (a *AStar[Vid, V, W, L]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok, err := a.Next()
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
func (a *AStar[Vid, V, W, L]) Err() error { return a.err }
