package bidirectional

import (
	"fmt"

	"github.com/katalvlaran/nographs/bfs"
	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// BFS runs two bfs.Search instances — one from the start side following
// forward edges, one from the goal side following backward (reversed)
// edges — each with depth-increase reporting enabled, and alternates
// single-vertex pulls between them until a vertex reported by one side has
// already been reported by the other side or is one of its start vertices
// (spec.md §4.10). Vertices the other side has discovered but not yet
// reported are not checked.
type BFS[Vid comparable, V any, W weight.Weight, L any] struct {
	forward  *bfs.Search[Vid, V, W, L]
	backward *bfs.Search[Vid, V, W, L]

	vertexToID traversal.VertexToID[V, Vid]

	forwardDepth  map[Vid]int
	backwardDepth map[Vid]int

	lastForwardID    Vid
	haveLastForward  bool
	lastBackwardID   Vid
	haveLastBackward bool

	selfMatch bool
	meetingV  V
	started   bool
	done      bool
	found     bool
	length    int
	err       error
}

// NewBFS builds a bidirectional BFS over forwardNext (used from the start
// side) and backwardNext (used from the goal side, i.e. the successor
// function for the reversed graph).
func NewBFS[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	forwardNext bfs.NextVertices[V],
	backwardNext bfs.NextVertices[V],
) *BFS[Vid, V, W, L] {
	return &BFS[Vid, V, W, L]{
		forward:    bfs.NewFromVertices[Vid, V, W, L](g, vertexToID, forwardNext),
		backward:   bfs.NewFromVertices[Vid, V, W, L](g, vertexToID, backwardNext),
		vertexToID: vertexToID,
	}
}

// StartFrom initializes both sides. If any start vertex equals any goal
// vertex, the run is immediately resolved as a zero-length self-match
// (spec.md §4.10's special case), bypassing both underlying searches.
func (s *BFS[Vid, V, W, L]) StartFrom(starts, goals []V, opts ...Option[Vid]) error {
	if len(starts) == 0 || len(goals) == 0 {
		return fmt.Errorf("%w: bidirectional: StartFrom requires at least one start and one goal", traversal.ErrUsage)
	}

	var o options[Vid]
	for _, opt := range opts {
		opt(&o)
	}

	s.forwardDepth = make(map[Vid]int, len(starts))
	s.backwardDepth = make(map[Vid]int, len(goals))
	for _, v := range starts {
		s.forwardDepth[s.vertexToID(v)] = 0
	}
	for _, v := range goals {
		id := s.vertexToID(v)
		s.backwardDepth[id] = 0
		if _, ok := s.forwardDepth[id]; ok {
			s.selfMatch = true
			s.meetingV = v
			s.found = true
			s.done = true
		}
	}

	s.started = true
	s.err = nil
	if s.selfMatch {
		return nil
	}

	if err := s.forward.StartFrom(starts,
		bfs.WithReportDepthIncrease[Vid](),
		bfs.WithBuildPaths[Vid](),
		bfs.WithCalculationLimit[Vid](o.calculationLimit),
	); err != nil {
		return err
	}

	return s.backward.StartFrom(goals,
		bfs.WithReportDepthIncrease[Vid](),
		bfs.WithBuildPaths[Vid](),
		bfs.WithCalculationLimit[Vid](o.calculationLimit),
	)
}

// advanceOnce pulls a single vertex from one side. meet reports whether
// this pull closed the search (the vertex was already reported by the other
// side or is one of its starts); exhausted reports the side's frontier ran
// out first.
func (s *BFS[Vid, V, W, L]) advanceOnce(forward bool) (meet, exhausted bool, err error) {
	var this *bfs.Search[Vid, V, W, L]
	var lastID *Vid
	var haveLast *bool
	var thisDepth, otherDepth map[Vid]int
	if forward {
		this = s.forward
		lastID, haveLast = &s.lastForwardID, &s.haveLastForward
		thisDepth, otherDepth = s.forwardDepth, s.backwardDepth
	} else {
		this = s.backward
		lastID, haveLast = &s.lastBackwardID, &s.haveLastBackward
		thisDepth, otherDepth = s.backwardDepth, s.forwardDepth
	}

	v, ok, nextErr := this.Next()
	if nextErr != nil {
		return false, false, nextErr
	}
	if !ok {
		return false, true, nil
	}

	id := s.vertexToID(v)
	if *haveLast && id == *lastID {
		return false, false, nil // depth-increase duplicate: layer boundary, not a meeting
	}
	*lastID, *haveLast = id, true
	thisDepth[id] = this.Depth

	if _, met := otherDepth[id]; met {
		s.meetingV = v
		s.length = thisDepth[id] + otherDepth[id]
		s.found = true

		return true, false, nil
	}

	return false, false, nil
}

// Find runs the alternating-pull search to completion and reports the
// total path length and whether a meeting point was found. failSilently
// selects between returning traversal.ErrNoPath and returning ok==false
// with a nil error when no path connects any start to any goal.
func (s *BFS[Vid, V, W, L]) Find(failSilently bool) (length int, ok bool, err error) {
	if !s.started {
		return 0, false, fmt.Errorf("%w: bidirectional: Find called before StartFrom", traversal.ErrUsage)
	}
	if s.err != nil {
		return 0, false, s.err
	}
	if s.done {
		if !s.found && !failSilently {
			return 0, false, traversal.ErrNoPath
		}

		return s.length, s.found, nil
	}

	for {
		meet, exhausted, advErr := s.advanceOnce(true)
		if advErr != nil {
			s.err = advErr

			return 0, false, advErr
		}
		if meet {
			s.done = true

			return s.length, true, nil
		}
		if exhausted {
			s.done = true
			if !failSilently {
				return 0, false, traversal.ErrNoPath
			}

			return 0, false, nil
		}

		meet, exhausted, advErr = s.advanceOnce(false)
		if advErr != nil {
			s.err = advErr

			return 0, false, advErr
		}
		if meet {
			s.done = true

			return s.length, true, nil
		}
		if exhausted {
			s.done = true
			if !failSilently {
				return 0, false, traversal.ErrNoPath
			}

			return 0, false, nil
		}
	}
}

// Path assembles the full start-to-goal vertex sequence through the
// meeting point found by Find. Find must have returned ok==true first.
func (s *BFS[Vid, V, W, L]) Path() ([]V, error) {
	if s.selfMatch {
		return []V{s.meetingV}, nil
	}
	if !s.done || !s.found {
		return nil, fmt.Errorf("%w: bidirectional: Path called before a successful Find", traversal.ErrUsage)
	}

	head, err := s.forward.Paths.IterVerticesFromStart(s.meetingV)
	if err != nil {
		return nil, err
	}
	tail, err := s.backward.Paths.IterVerticesToStart(s.meetingV)
	if err != nil {
		return nil, err
	}

	var out []V
	for v := range head {
		out = append(out, v)
	}
	skippedMeeting := false
	for v := range tail {
		if !skippedMeeting {
			skippedMeeting = true

			continue // already the last element of head
		}
		out = append(out, v)
	}

	return out, nil
}
