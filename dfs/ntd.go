package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/paths"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

type ntdFrame[Vid comparable, V any] struct {
	id       Vid
	v        V
	depth    int
	children []V
	idx      int
	expanded bool
}

// NeighborsThenDepth reports a vertex's unvisited neighbors as a batch, in
// order, before descending depth-first into the first of them — unlike
// plain DFS, which descends into the first neighbor immediately and only
// discovers siblings on backtrack. Like bfs and dijkstra, a start vertex is
// visited and expanded but never itself reported by Next.
type NeighborsThenDepth[Vid comparable, V any, W weight.Weight, L any] struct {
	g            gear.Gear[Vid, V, W, L]
	vertexToID   traversal.VertexToID[V, Vid]
	nextVertices NextVertices[V]
	nextLabeled  NextLabeledVertices[V, L]
	labeled      bool

	opts  ntdOptions[Vid]
	limit traversal.CalculationLimit

	Depth   int
	Visited gear.VisitedSet[Vid]
	Paths   paths.Store[Vid, V, L]

	stack []*ntdFrame[Vid, V]
	queue []ntdReport[Vid, V]

	err error
}

type ntdReport[Vid comparable, V any] struct {
	id    Vid
	v     V
	depth int
}

type ntdOptions[Vid comparable] struct {
	buildPaths       bool
	calculationLimit int
	alreadyVisited   []Vid
}

// NTDOption configures a NeighborsThenDepth run.
type NTDOption[Vid comparable] func(*ntdOptions[Vid])

// WithNTDBuildPaths enables predecessor recording.
func WithNTDBuildPaths[Vid comparable]() NTDOption[Vid] {
	return func(o *ntdOptions[Vid]) { o.buildPaths = true }
}

// WithNTDCalculationLimit bounds the number of successor-function calls.
func WithNTDCalculationLimit[Vid comparable](n int) NTDOption[Vid] {
	return func(o *ntdOptions[Vid]) { o.calculationLimit = n }
}

// WithNTDAlreadyVisited preloads a visited set; the ids are copied into the
// run's Visited set and the caller's slice is not modified.
func WithNTDAlreadyVisited[Vid comparable](ids []Vid) NTDOption[Vid] {
	return func(o *ntdOptions[Vid]) { o.alreadyVisited = ids }
}

// NewNTDFromVertices builds an unlabeled Neighbors-Then-Depth traversal.
func NewNTDFromVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V],
) *NeighborsThenDepth[Vid, V, W, L] {
	return &NeighborsThenDepth[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextVertices: next}
}

// NewNTDFromLabeledVertices builds a labeled Neighbors-Then-Depth traversal.
func NewNTDFromLabeledVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, L],
) *NeighborsThenDepth[Vid, V, W, L] {
	return &NeighborsThenDepth[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextLabeled: next, labeled: true}
}

// StartFrom initializes bookkeeping and expands the start vertices; the
// start vertices themselves are not reported (see NeighborsThenDepth).
func (n *NeighborsThenDepth[Vid, V, W, L]) StartFrom(starts []V, opts ...NTDOption[Vid]) error {
	if len(starts) == 0 {
		return fmt.Errorf("%w: dfs: StartFrom requires at least one start vertex", traversal.ErrUsage)
	}

	o := ntdOptions[Vid]{}
	for _, opt := range opts {
		opt(&o)
	}
	n.opts = o
	n.limit = traversal.NewCalculationLimit(o.calculationLimit)
	n.Visited = n.g.VisitedSet(o.alreadyVisited)

	if o.buildPaths {
		pred := n.g.PredecessorMap(nil)
		var labels gear.LabelMap[Vid, L]
		if n.labeled {
			labels = n.g.LabelMap(nil)
		}
		n.Paths = paths.NewHashStore[Vid, V, L](n.vertexToID, pred, labels)
	} else {
		n.Paths = paths.NewDummyStore[Vid, V, L]()
	}

	n.stack = nil
	n.queue = nil
	n.Depth = -1
	n.err = nil

	for _, start := range starts {
		id := n.vertexToID(start)
		if n.Visited.Contains(id) {
			continue
		}
		n.Visited.Add(id)
		n.Paths.SetStart(id, start)
		n.stack = append(n.stack, &ntdFrame[Vid, V]{id: id, v: start, depth: 0})
	}

	return nil
}

func (n *NeighborsThenDepth[Vid, V, W, L]) expand(f *ntdFrame[Vid, V]) error {
	if err := n.limit.Consume(); err != nil {
		return err
	}

	if n.labeled {
		for _, s := range n.nextLabeled(f.v, f.depth) {
			sid := n.vertexToID(s.To)
			if n.Visited.Contains(sid) {
				continue
			}
			n.Visited.Add(sid)
			n.Paths.AppendEdge(f.v, sid, s.To, s.Label)
			n.queue = append(n.queue, ntdReport[Vid, V]{id: sid, v: s.To, depth: f.depth + 1})
			f.children = append(f.children, s.To)
		}

		return nil
	}

	var zeroL L
	for _, to := range n.nextVertices(f.v, f.depth) {
		sid := n.vertexToID(to)
		if n.Visited.Contains(sid) {
			continue
		}
		n.Visited.Add(sid)
		n.Paths.AppendEdge(f.v, sid, to, zeroL)
		n.queue = append(n.queue, ntdReport[Vid, V]{id: sid, v: to, depth: f.depth + 1})
		f.children = append(f.children, to)
	}

	return nil
}

// Next returns the next reported vertex, in discovery order, or ok==false
// once the traversal is exhausted.
func (n *NeighborsThenDepth[Vid, V, W, L]) Next() (v V, ok bool, err error) {
	if n.err != nil {
		return v, false, n.err
	}

	for len(n.queue) == 0 {
		if len(n.stack) == 0 {
			return v, false, nil
		}
		top := n.stack[len(n.stack)-1]
		if !top.expanded {
			top.expanded = true
			if err := n.expand(top); err != nil {
				n.err = err

				return v, false, err
			}
		}
		if top.idx < len(top.children) {
			child := top.children[top.idx]
			top.idx++
			n.stack = append(n.stack, &ntdFrame[Vid, V]{id: n.vertexToID(child), v: child, depth: top.depth + 1})
		} else {
			n.stack = n.stack[:len(n.stack)-1]
		}
	}

	r := n.queue[0]
	n.queue = n.queue[1:]
	n.Depth = r.depth

	return r.v, true, nil
}

// All returns the reported vertices as a range-over-func sequence.
func (n *NeighborsThenDepth[Vid, V, W, L]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok, err := n.Next()
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
func (n *NeighborsThenDepth[Vid, V, W, L]) Err() error { return n.err }
