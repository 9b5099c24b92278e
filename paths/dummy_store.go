package paths

import "iter"

// DummyStore is used when path building is disabled for a run. Every
// iteration method fails with ErrNotBuilt; Contains always reports false.
type DummyStore[Vid comparable, V any, L any] struct{}

// NewDummyStore returns a store usable as a placeholder when BuildPaths was
// not requested.
func NewDummyStore[Vid comparable, V any, L any]() *DummyStore[Vid, V, L] {
	return &DummyStore[Vid, V, L]{}
}

func (s *DummyStore[Vid, V, L]) Contains(Vid) bool { return false }

func (s *DummyStore[Vid, V, L]) SetStart(Vid, V) {}

func (s *DummyStore[Vid, V, L]) AppendEdge(V, Vid, V, L) {}

func (s *DummyStore[Vid, V, L]) IterVerticesToStart(V) (iter.Seq[V], error) {
	return nil, ErrNotBuilt
}

func (s *DummyStore[Vid, V, L]) IterVerticesFromStart(V) (iter.Seq[V], error) {
	return nil, ErrNotBuilt
}

func (s *DummyStore[Vid, V, L]) IterLabeledEdgesToStart(V) (iter.Seq[LabeledEdge[V, L]], error) {
	return nil, ErrNotBuilt
}

func (s *DummyStore[Vid, V, L]) IterLabeledEdgesFromStart(V) (iter.Seq[LabeledEdge[V, L]], error) {
	return nil, ErrNotBuilt
}
