package paths

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/traversal"
)

// HashStore is the general predecessor-chain implementation, backed by the
// PredecessorMap and (if labeled) LabelMap a Gear produces. It is the store
// every strategy builds when BuildPaths is requested.
type HashStore[Vid comparable, V any, L any] struct {
	vertexToID traversal.VertexToID[V, Vid]
	pred       gear.PredecessorMap[Vid, V]
	labels     gear.LabelMap[Vid, L]
	labeled    bool
}

// NewHashStore builds a store. Pass a non-nil labels map to enable labeled
// edge iteration; pass nil for an unlabeled store.
func NewHashStore[Vid comparable, V any, L any](
	vertexToID traversal.VertexToID[V, Vid],
	pred gear.PredecessorMap[Vid, V],
	labels gear.LabelMap[Vid, L],
) *HashStore[Vid, V, L] {
	return &HashStore[Vid, V, L]{
		vertexToID: vertexToID,
		pred:       pred,
		labels:     labels,
		labeled:    labels != nil,
	}
}

func (s *HashStore[Vid, V, L]) Contains(id Vid) bool {
	_, ok := s.pred.Get(id)

	return ok
}

func (s *HashStore[Vid, V, L]) SetStart(id Vid, v V) {
	s.pred.Set(id, v)
}

func (s *HashStore[Vid, V, L]) AppendEdge(fromV V, toID Vid, toV V, label L) {
	s.pred.Set(toID, fromV)
	if s.labeled {
		s.labels.Set(toID, label)
	}
}

func (s *HashStore[Vid, V, L]) IterVerticesToStart(v V) (iter.Seq[V], error) {
	id := s.vertexToID(v)
	if !s.Contains(id) {
		return nil, noPathError(fmt.Sprintf("%v", id))
	}

	return func(yield func(V) bool) {
		current := v
		for {
			if !yield(current) {
				return
			}
			curID := s.vertexToID(current)
			pred, _ := s.pred.Get(curID)
			if s.vertexToID(pred) == curID {
				return // self-loop entry: current is the path's first vertex
			}
			current = pred
		}
	}, nil
}

func (s *HashStore[Vid, V, L]) IterVerticesFromStart(v V) (iter.Seq[V], error) {
	toStart, err := s.IterVerticesToStart(v)
	if err != nil {
		return nil, err
	}
	buf := make([]V, 0)
	for x := range toStart {
		buf = append(buf, x)
	}
	reverseInPlace(buf)

	return sliceSeq(buf), nil
}

func (s *HashStore[Vid, V, L]) IterLabeledEdgesToStart(v V) (iter.Seq[LabeledEdge[V, L]], error) {
	if !s.labeled {
		return nil, ErrUnlabeled
	}
	id := s.vertexToID(v)
	if !s.Contains(id) {
		return nil, noPathError(fmt.Sprintf("%v", id))
	}

	return func(yield func(LabeledEdge[V, L]) bool) {
		current := v
		for {
			curID := s.vertexToID(current)
			pred, _ := s.pred.Get(curID)
			if s.vertexToID(pred) == curID {
				return // reached start: no incoming edge to emit
			}
			label, _ := s.labels.Get(curID)
			if !yield(LabeledEdge[V, L]{From: pred, To: current, Label: label}) {
				return
			}
			current = pred
		}
	}, nil
}

func (s *HashStore[Vid, V, L]) IterLabeledEdgesFromStart(v V) (iter.Seq[LabeledEdge[V, L]], error) {
	toStart, err := s.IterLabeledEdgesToStart(v)
	if err != nil {
		return nil, err
	}
	buf := make([]LabeledEdge[V, L], 0)
	for e := range toStart {
		buf = append(buf, e)
	}
	reverseInPlace(buf)

	return sliceSeq(buf), nil
}

func reverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func sliceSeq[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}
