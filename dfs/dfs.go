package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/paths"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

type succ[V any, L any] struct {
	to    V
	label L
}

// frame is one stack entry: a vertex being explored, its successors
// (computed once on entry), and a cursor into them so expansion can resume
// lazily across Next() calls instead of pushing all children up front.
type frame[Vid comparable, V any, L any] struct {
	id    Vid
	v     V
	depth int

	hasParent   bool
	parentV     V
	parentLabel L

	succs []succ[V, L]
	idx   int

	entered       bool
	isRoot        bool
	skipConfirmed bool
}

// traceSet is the on-trace set: unlike gear.VisitedSet it supports removal,
// since vertices leave the trace when the search backtracks past them.
type traceSet[Vid comparable] struct{ m map[Vid]struct{} }

func newTraceSet[Vid comparable]() *traceSet[Vid] { return &traceSet[Vid]{m: make(map[Vid]struct{})} }
func (s *traceSet[Vid]) Add(id Vid)               { s.m[id] = struct{}{} }
func (s *traceSet[Vid]) Remove(id Vid)            { delete(s.m, id) }
func (s *traceSet[Vid]) Contains(id Vid) bool     { _, ok := s.m[id]; return ok }
func (s *traceSet[Vid]) Len() int                 { return len(s.m) }

// Search is a single depth-first traversal run, covering all three Modes
// and the full Event set. Build one with NewFromVertices or
// NewFromLabeledVertices, call StartFrom, then pull reports with Next or
// range over All.
type Search[Vid comparable, V any, W weight.Weight, L any] struct {
	g            gear.Gear[Vid, V, W, L]
	vertexToID   traversal.VertexToID[V, Vid]
	nextVertices NextVertices[V]
	nextLabeled  NextLabeledVertices[V, L]
	labeled      bool

	opts  options[Vid]
	limit traversal.CalculationLimit

	// Depth is the depth of the vertex in the most recent report.
	Depth int
	// Event is the kind of the most recent report.
	Event Event
	// Visited is the permanent visited set (ModeDFSTree only; unused and
	// left empty in ModeAllPaths/ModeAllWalks).
	Visited gear.VisitedSet[Vid]
	// OnTrace is the set of vertex ids currently on Trace (unused in
	// ModeAllWalks).
	OnTrace *traceSet[Vid]
	// Index maps a vertex id to its entry order (1-based; 0 means never
	// entered). Unused in ModeAllWalks.
	Index gear.TimeMap[Vid]
	// Paths is the predecessor-chain store for this run.
	Paths paths.Store[Vid, V, L]

	stack        []*frame[Vid, V, L]
	pendingStart []V
	timeCounter  int
	skipRequest  bool

	started bool
	err     error
}

// NewFromVertices builds an unlabeled DFS search.
func NewFromVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextVertices[V],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextVertices: next, Depth: -1}
}

// NewFromLabeledVertices builds a labeled DFS search.
func NewFromLabeledVertices[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	next NextLabeledVertices[V, L],
) *Search[Vid, V, W, L] {
	return &Search[Vid, V, W, L]{g: g, vertexToID: vertexToID, nextLabeled: next, labeled: true, Depth: -1}
}

// StartFrom initializes bookkeeping for one or more start vertices.
func (s *Search[Vid, V, W, L]) StartFrom(starts []V, opts ...Option[Vid]) error {
	if len(starts) == 0 {
		return fmt.Errorf("%w: dfs: StartFrom requires at least one start vertex", traversal.ErrUsage)
	}

	o := defaultOptions[Vid]()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateReport(o.report); err != nil {
		return err
	}
	if o.buildPaths && o.mode == ModeAllWalks {
		return fmt.Errorf("%w: dfs: path building is not allowed in ModeAllWalks", traversal.ErrUsage)
	}
	if o.isTree && o.mode != ModeDFSTree {
		return fmt.Errorf("%w: dfs: WithIsTree is only valid in ModeDFSTree", traversal.ErrUsage)
	}
	s.opts = o
	s.limit = traversal.NewCalculationLimit(o.calculationLimit)

	if o.mode == ModeDFSTree {
		s.Visited = s.g.VisitedSet(o.alreadyVisited)
	} else {
		s.Visited = s.g.VisitedSet(nil)
	}
	s.OnTrace = newTraceSet[Vid]()
	s.Index = s.g.TimeMap(nil)
	s.timeCounter = 0

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
	s.Event = 0
	s.stack = nil
	s.pendingStart = append([]V(nil), starts...)
	s.skipRequest = false
	s.started = true
	s.err = nil

	return nil
}

// SkipExpansion requests that the vertex most recently reported via an
// ENTERING_* event not have its successors expanded. The strategy confirms
// by re-reporting the same vertex once (same Event), then continues without
// expanding it. Call this immediately after receiving an ENTERING_* report,
// before pulling Next again.
func (s *Search[Vid, V, W, L]) SkipExpansion() { s.skipRequest = true }

func (s *Search[Vid, V, W, L]) computeSuccessors(v V, depth int) ([]succ[V, L], error) {
	if err := s.limit.Consume(); err != nil {
		return nil, err
	}
	if s.labeled {
		out := s.nextLabeled(v, depth)
		succs := make([]succ[V, L], len(out))
		for i, o := range out {
			succs[i] = succ[V, L]{to: o.To, label: o.Label}
		}

		return succs, nil
	}
	out := s.nextVertices(v, depth)
	succs := make([]succ[V, L], len(out))
	for i, to := range out {
		succs[i] = succ[V, L]{to: to}
	}

	return succs, nil
}

// Next advances the search and returns the next reported vertex, or
// ok==false when the search is exhausted.
func (s *Search[Vid, V, W, L]) Next() (v V, ok bool, err error) {
	if s.err != nil {
		return v, false, s.err
	}
	for {
		rv, event, returned, done, stepErr := s.step()
		if stepErr != nil {
			s.err = stepErr

			return v, false, stepErr
		}
		if done {
			return v, false, nil
		}
		if returned {
			s.Event = event

			return rv, true, nil
		}
	}
}

// step performs one unit of traversal work. returned indicates a
// reportable event occurred and rv/event are valid; done indicates the
// whole search is exhausted.
func (s *Search[Vid, V, W, L]) step() (rv V, event Event, returned bool, done bool, err error) {
	if len(s.stack) == 0 {
		if len(s.pendingStart) == 0 {
			return rv, 0, false, true, nil
		}
		start := s.pendingStart[0]
		s.pendingStart = s.pendingStart[1:]
		id := s.vertexToID(start)
		if s.opts.mode == ModeDFSTree && s.Visited.Contains(id) {
			if s.opts.report&EventSkippingStart != 0 {
				s.Depth = 0

				return start, EventSkippingStart, true, false, nil
			}

			return rv, 0, false, false, nil
		}
		s.stack = append(s.stack, &frame[Vid, V, L]{id: id, v: start, depth: 0, isRoot: true})

		return rv, 0, false, false, nil
	}

	top := s.stack[len(s.stack)-1]

	if !top.entered {
		top.entered = true
		if s.opts.mode != ModeAllWalks {
			if s.opts.mode == ModeDFSTree {
				s.Visited.Add(top.id)
			}
			if !s.opts.isTree {
				s.OnTrace.Add(top.id)
				s.timeCounter++
				s.Index.Set(top.id, s.timeCounter)
			}
		}
		if s.opts.buildPaths {
			if top.hasParent {
				// parent is the frame directly below top on the stack.
				parent := s.stack[len(s.stack)-2]
				s.Paths.AppendEdge(parent.v, top.id, top.v, top.parentLabel)
			} else {
				s.Paths.SetStart(top.id, top.v)
			}
		}
		succs, cerr := s.computeSuccessors(top.v, top.depth)
		if cerr != nil {
			return rv, 0, false, false, cerr
		}
		top.succs = succs
		ev := EventEnteringSuccessor
		if top.isRoot {
			ev = EventEnteringStart
		}
		s.Depth = top.depth
		if s.opts.report&ev != 0 {
			return top.v, ev, true, false, nil
		}

		return rv, 0, false, false, nil
	}

	if s.skipRequest && !top.skipConfirmed {
		top.idx = len(top.succs)
		top.skipConfirmed = true
		s.skipRequest = false
		ev := EventEnteringSuccessor
		if top.isRoot {
			ev = EventEnteringStart
		}
		s.Depth = top.depth

		return top.v, ev, true, false, nil
	}

	if top.idx < len(top.succs) {
		sc := top.succs[top.idx]
		top.idx++
		sid := s.vertexToID(sc.to)

		if s.opts.mode == ModeAllWalks || s.opts.isTree {
			// Tree case (spec.md §4.6): the successor function is known to
			// describe a tree, so every child is unconditionally new — no
			// on-trace/visited check, no back/forward/cross-edge
			// classification needed.
			s.stack = append(s.stack, &frame[Vid, V, L]{
				id: sid, v: sc.to, depth: top.depth + 1,
				hasParent: true, parentLabel: sc.label,
			})

			return rv, 0, false, false, nil
		}

		onTrace := s.OnTrace.Contains(sid)
		visited := s.opts.mode == ModeDFSTree && s.Visited.Contains(sid)

		switch {
		case onTrace:
			s.Depth = top.depth
			if s.opts.report&EventBackEdge != 0 || s.opts.report&EventSomeNonTreeEdge != 0 {
				return sc.to, EventBackEdge, true, false, nil
			}

			return rv, 0, false, false, nil
		case visited:
			ev := EventCrossEdge
			if s.Index.Get(sid) > s.Index.Get(top.id) {
				ev = EventForwardEdge
			}
			s.Depth = top.depth
			if s.opts.report&ev != 0 || s.opts.report&EventSomeNonTreeEdge != 0 ||
				s.opts.report&EventForwardOrCrossEdge != 0 {
				return sc.to, ev, true, false, nil
			}

			return rv, 0, false, false, nil
		default:
			s.stack = append(s.stack, &frame[Vid, V, L]{
				id: sid, v: sc.to, depth: top.depth + 1,
				hasParent: true, parentLabel: sc.label,
			})

			return rv, 0, false, false, nil
		}
	}

	// leave step
	ev := EventLeavingSuccessor
	if top.isRoot {
		ev = EventLeavingStart
	}
	s.Depth = top.depth
	if s.opts.mode != ModeAllWalks && !s.opts.isTree {
		s.OnTrace.Remove(top.id)
	}
	s.stack = s.stack[:len(s.stack)-1]
	if s.opts.report&ev != 0 {
		return top.v, ev, true, false, nil
	}

	return rv, 0, false, false, nil
}

// Trace returns the current path from a start vertex to the vertex being
// processed, outermost (start) first.
func (s *Search[Vid, V, W, L]) Trace() []V {
	out := make([]V, len(s.stack))
	for i, f := range s.stack {
		out[i] = f.v
	}

	return out
}

// TraceIDs is Trace, expressed as vertex ids; the two slices are always the
// same length and index-aligned.
func (s *Search[Vid, V, W, L]) TraceIDs() []Vid {
	out := make([]Vid, len(s.stack))
	for i, f := range s.stack {
		out[i] = f.id
	}

	return out
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
