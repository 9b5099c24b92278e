package bidirectional

import (
	"fmt"

	"github.com/katalvlaran/nographs/dijkstra"
	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/traversal"
	"github.com/katalvlaran/nographs/weight"
)

// Dijkstra runs two dijkstra.Search instances — one from the start side,
// one from the goal side over the reversed graph — stepping whichever
// side's heap head currently holds the smaller distance, and tracking the
// best meeting point found so far: a vertex finalized on one side that
// already has a recorded (final or still tentative) distance on the other
// (spec.md §4.11). Both sides are run with WithKeepDistances so a
// finalized distance remains readable after a vertex is popped.
type Dijkstra[Vid comparable, V any, W weight.Weight, L any] struct {
	forward  *dijkstra.Search[Vid, V, W, L]
	backward *dijkstra.Search[Vid, V, W, L]

	vertexToID traversal.VertexToID[V, Vid]
	inf        W

	haveBest   bool
	bestLength W
	bestV      V

	selfMatch bool
	meetingV  V
	started   bool
	done      bool
	found     bool
	err       error
}

// NewDijkstra builds a bidirectional Dijkstra search over forwardNext (used
// from the start side) and backwardNext (used from the goal side, i.e. the
// successor function for the reversed, still-nonnegative-weighted graph).
func NewDijkstra[Vid comparable, V any, W weight.Weight, L any](
	g gear.Gear[Vid, V, W, L],
	vertexToID traversal.VertexToID[V, Vid],
	forwardNext dijkstra.NextVertices[V, W],
	backwardNext dijkstra.NextVertices[V, W],
) *Dijkstra[Vid, V, W, L] {
	return &Dijkstra[Vid, V, W, L]{
		forward:    dijkstra.NewFromVertices[Vid, V, W, L](g, vertexToID, forwardNext),
		backward:   dijkstra.NewFromVertices[Vid, V, W, L](g, vertexToID, backwardNext),
		vertexToID: vertexToID,
		inf:        g.Infinity(),
	}
}

// StartFrom initializes both sides. As in bidirectional BFS, any start
// vertex equal to any goal vertex resolves the run immediately as a
// zero-length self-match.
func (s *Dijkstra[Vid, V, W, L]) StartFrom(starts, goals []V, opts ...Option[Vid]) error {
	if len(starts) == 0 || len(goals) == 0 {
		return fmt.Errorf("%w: bidirectional: StartFrom requires at least one start and one goal", traversal.ErrUsage)
	}

	var o options[Vid]
	for _, opt := range opts {
		opt(&o)
	}

	startIDs := make(map[Vid]struct{}, len(starts))
	for _, v := range starts {
		startIDs[s.vertexToID(v)] = struct{}{}
	}
	for _, v := range goals {
		if _, ok := startIDs[s.vertexToID(v)]; ok {
			s.selfMatch = true
			s.meetingV = v
			s.found = true
			s.done = true

			break
		}
	}

	s.started = true
	s.err = nil
	if s.selfMatch {
		return nil
	}

	if err := s.forward.StartFrom(starts,
		dijkstra.WithBuildPaths[Vid, W](),
		dijkstra.WithKeepDistances[Vid, W](),
		dijkstra.WithCalculationLimit[Vid, W](o.calculationLimit),
	); err != nil {
		return err
	}

	return s.backward.StartFrom(goals,
		dijkstra.WithBuildPaths[Vid, W](),
		dijkstra.WithKeepDistances[Vid, W](),
		dijkstra.WithCalculationLimit[Vid, W](o.calculationLimit),
	)
}

// considerMeeting records u (just finalized on the side carrying distance
// dThis) as a candidate meeting point if the opposite side has already
// recorded a distance to it, final or still tentative.
func (s *Dijkstra[Vid, V, W, L]) considerMeeting(u V, dThis W, other *dijkstra.Search[Vid, V, W, L]) {
	id := s.vertexToID(u)
	if !other.Distances.HasKey(id) {
		return
	}

	candidate, err := weight.Add(dThis, other.Distances.Get(id, s.inf), s.inf)
	if err != nil {
		return // overflow: not a usable candidate
	}
	if !s.haveBest || candidate < s.bestLength {
		s.haveBest = true
		s.bestLength = candidate
		s.bestV = u
	}
}

// Find runs the alternating-step search to completion and reports the
// total path length and whether a meeting point was found.
func (s *Dijkstra[Vid, V, W, L]) Find(failSilently bool) (length W, ok bool, err error) {
	if !s.started {
		return length, false, fmt.Errorf("%w: bidirectional: Find called before StartFrom", traversal.ErrUsage)
	}
	if s.err != nil {
		return length, false, s.err
	}
	if s.done {
		if !s.found {
			if !failSilently {
				return length, false, traversal.ErrNoPath
			}

			return length, false, nil
		}
		s.meetingV = s.bestV

		return s.bestLength, true, nil
	}

	for {
		fd, fok := s.forward.PeekDistance()
		bd, bok := s.backward.PeekDistance()
		if !fok && !bok {
			break
		}

		useForward := fok && (!bok || fd <= bd)
		var dOtherTop W
		var otherTopOK bool
		if useForward {
			dOtherTop, otherTopOK = bd, bok
		} else {
			dOtherTop, otherTopOK = fd, fok
		}

		var dThis W
		if useForward {
			dThis = fd
		} else {
			dThis = bd
		}
		if s.haveBest && otherTopOK {
			sum, err := weight.Add(dThis, dOtherTop, s.inf)
			if err == nil && sum >= s.bestLength {
				break // no cheaper meeting can remain
			}
		}

		if useForward {
			v, ok, nextErr := s.forward.Next()
			if nextErr != nil {
				s.err = nextErr

				return length, false, nextErr
			}
			if !ok {
				break
			}
			s.considerMeeting(v, s.forward.Distance, s.backward)
		} else {
			v, ok, nextErr := s.backward.Next()
			if nextErr != nil {
				s.err = nextErr

				return length, false, nextErr
			}
			if !ok {
				break
			}
			s.considerMeeting(v, s.backward.Distance, s.forward)
		}
	}

	s.done = true
	s.found = s.haveBest
	if !s.found {
		if !failSilently {
			return length, false, traversal.ErrNoPath
		}

		return length, false, nil
	}
	s.meetingV = s.bestV

	return s.bestLength, true, nil
}

// Path assembles the full start-to-goal vertex sequence through the
// meeting point found by Find. Find must have returned ok==true first.
func (s *Dijkstra[Vid, V, W, L]) Path() ([]V, error) {
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

			continue
		}
		out = append(out, v)
	}

	return out, nil
}
