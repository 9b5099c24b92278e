package dijkstra

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/traversal"
)

// GoForDistanceRange mirrors bfs.GoForDepthRange, keyed on Distance instead
// of depth: it pulls vertices from the underlying run and yields those
// whose distance at report time lies in [lo, hi); it stops at the first
// vertex with distance >= hi (consumed but not yielded).
func (s *Search[Vid, V, W, L]) GoForDistanceRange(lo, hi W) (iter.Seq[V], error) {
	if !s.started {
		return nil, fmt.Errorf("%w: dijkstra: GoForDistanceRange called before StartFrom", traversal.ErrUsage)
	}

	return func(yield func(V) bool) {
		for {
			v, ok, err := s.Next()
			if err != nil || !ok {
				return
			}
			if s.Distance >= hi {
				return
			}
			if s.Distance < lo {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// GoTo pulls vertices until v is reported (returning its distance) or the
// run is exhausted without finding it. failSilently selects between
// returning traversal.ErrNoPath and returning ok==false with a nil error.
func (s *Search[Vid, V, W, L]) GoTo(target Vid, failSilently bool) (distance W, ok bool, err error) {
	if !s.started {
		return distance, false, fmt.Errorf("%w: dijkstra: GoTo called before StartFrom", traversal.ErrUsage)
	}

	for {
		v, more, nextErr := s.Next()
		if nextErr != nil {
			return distance, false, nextErr
		}
		if !more {
			if failSilently {
				return distance, false, nil
			}

			return distance, false, traversal.ErrNoPath
		}
		if s.vertexToID(v) == target {
			return s.Distance, true, nil
		}
	}
}

// GoForVerticesIn pulls vertices until every id in targets has been
// reported or the run exhausts.
func (s *Search[Vid, V, W, L]) GoForVerticesIn(targets []Vid, failSilently bool) (found map[Vid]V, err error) {
	if !s.started {
		return nil, fmt.Errorf("%w: dijkstra: GoForVerticesIn called before StartFrom", traversal.ErrUsage)
	}

	want := make(map[Vid]struct{}, len(targets))
	for _, id := range targets {
		want[id] = struct{}{}
	}
	found = make(map[Vid]V, len(targets))

	for len(found) < len(want) {
		v, more, nextErr := s.Next()
		if nextErr != nil {
			return found, nextErr
		}
		if !more {
			if failSilently {
				return found, nil
			}

			return found, traversal.ErrNoPath
		}
		id := s.vertexToID(v)
		if _, ok := want[id]; ok {
			found[id] = v
		}
	}

	return found, nil
}
