package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/traversal"
)

// GoForDepthRange pulls vertices from the underlying run and yields those
// whose depth at report time lies in [lo, hi); it stops at the first vertex
// with depth >= hi (that vertex is consumed from the run but not yielded,
// and is therefore lost to the caller — spec.md §4.3/§8 property 8).
//
// StartFrom must have been called first; otherwise ErrNotStarted.
func (s *Search[Vid, V, W, L]) GoForDepthRange(lo, hi int) (iter.Seq[V], error) {
	if !s.started {
		return nil, fmt.Errorf("%w: bfs: GoForDepthRange called before StartFrom", traversal.ErrUsage)
	}

	return func(yield func(V) bool) {
		for {
			v, ok, err := s.Next()
			if err != nil || !ok {
				return
			}
			if s.Depth >= hi {
				return // consumed, not yielded — lost, per spec
			}
			if s.Depth < lo {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// GoTo pulls vertices until one with the given id is reported. failSilently
// selects between returning traversal.ErrNoPath and returning ok==false
// with a nil error when the run exhausts without finding it.
func (s *Search[Vid, V, W, L]) GoTo(target Vid, failSilently bool) (ok bool, err error) {
	if !s.started {
		return false, fmt.Errorf("%w: bfs: GoTo called before StartFrom", traversal.ErrUsage)
	}

	for {
		v, more, nextErr := s.Next()
		if nextErr != nil {
			return false, nextErr
		}
		if !more {
			if failSilently {
				return false, nil
			}

			return false, traversal.ErrNoPath
		}
		if s.vertexToID(v) == target {
			return true, nil
		}
	}
}

// GoForVerticesIn pulls vertices until every id in targets has been
// reported (in any order) or the run exhausts. failSilently selects
// between returning traversal.ErrNoPath and returning the partial set with
// a nil error.
func (s *Search[Vid, V, W, L]) GoForVerticesIn(targets []Vid, failSilently bool) (found map[Vid]V, err error) {
	if !s.started {
		return nil, fmt.Errorf("%w: bfs: GoForVerticesIn called before StartFrom", traversal.ErrUsage)
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
