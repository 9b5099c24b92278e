package gear

import "github.com/katalvlaran/nographs/weight"

// HashGear is the general-purpose Gear: every container is a Go map or a
// map-backed set. It works for any comparable Vid, at the cost of hashing on
// every access — the default choice, analogous to the teacher's core.Graph
// using map[string]... for adjacency.
type HashGear[Vid comparable, V any, W weight.Weight, L any] struct {
	zero W
	inf  W
}

// NewHashGear builds a HashGear with the given zero and infinity sentinels.
// zero must satisfy v+zero==v for every v the application produces; inf must
// be strictly greater than every valid distance.
func NewHashGear[Vid comparable, V any, W weight.Weight, L any](zero, inf W) *HashGear[Vid, V, W, L] {
	return &HashGear[Vid, V, W, L]{zero: zero, inf: inf}
}

func (g *HashGear[Vid, V, W, L]) Zero() W     { return g.zero }
func (g *HashGear[Vid, V, W, L]) Infinity() W { return g.inf }

func (g *HashGear[Vid, V, W, L]) ReportOverflow(value W) error {
	return weight.CheckOverflow(value, g.inf)
}

func (g *HashGear[Vid, V, W, L]) VisitedSet(initial []Vid) VisitedSet[Vid] {
	s := &hashVisitedSet[Vid]{m: make(map[Vid]struct{}, len(initial))}
	for _, id := range initial {
		s.m[id] = struct{}{}
	}

	return s
}

func (g *HashGear[Vid, V, W, L]) PredecessorMap(initial map[Vid]V) PredecessorMap[Vid, V] {
	m := initial
	if m == nil {
		m = make(map[Vid]V)
	}

	return &hashPredecessorMap[Vid, V]{m: m}
}

func (g *HashGear[Vid, V, W, L]) LabelMap(initial map[Vid]L) LabelMap[Vid, L] {
	m := initial
	if m == nil {
		m = make(map[Vid]L)
	}

	return &hashLabelMap[Vid, L]{m: m}
}

func (g *HashGear[Vid, V, W, L]) DistanceMap(initial map[Vid]W) DistanceMap[Vid, W] {
	m := initial
	if m == nil {
		m = make(map[Vid]W)
	}

	return &hashDistanceMap[Vid, W]{m: m}
}

func (g *HashGear[Vid, V, W, L]) TimeMap(initial map[Vid]int) TimeMap[Vid] {
	m := initial
	if m == nil {
		m = make(map[Vid]int)
	}

	return &hashTimeMap[Vid]{m: m}
}

func (g *HashGear[Vid, V, W, L]) VertexSequence(initial []V) VertexSequence[V] {
	return &sliceVertexSequence[V]{s: initial}
}

func (g *HashGear[Vid, V, W, L]) LabelSequence(initial []L) LabelSequence[L] {
	return &sliceLabelSequence[L]{s: initial}
}

// --- concrete hash-backed containers ---

type hashVisitedSet[Vid comparable] struct{ m map[Vid]struct{} }

func (s *hashVisitedSet[Vid]) Contains(id Vid) bool { _, ok := s.m[id]; return ok }
func (s *hashVisitedSet[Vid]) Add(id Vid)           { s.m[id] = struct{}{} }
func (s *hashVisitedSet[Vid]) Len() int             { return len(s.m) }

type hashPredecessorMap[Vid comparable, V any] struct{ m map[Vid]V }

func (p *hashPredecessorMap[Vid, V]) Get(id Vid) (V, bool) { v, ok := p.m[id]; return v, ok }
func (p *hashPredecessorMap[Vid, V]) Set(id Vid, v V)      { p.m[id] = v }
func (p *hashPredecessorMap[Vid, V]) Delete(id Vid)        { delete(p.m, id) }

type hashLabelMap[Vid comparable, L any] struct{ m map[Vid]L }

func (p *hashLabelMap[Vid, L]) Get(id Vid) (L, bool) { l, ok := p.m[id]; return l, ok }
func (p *hashLabelMap[Vid, L]) Set(id Vid, l L)      { p.m[id] = l }
func (p *hashLabelMap[Vid, L]) Delete(id Vid)        { delete(p.m, id) }

type hashDistanceMap[Vid comparable, W weight.Weight] struct{ m map[Vid]W }

func (d *hashDistanceMap[Vid, W]) Get(id Vid, inf W) W {
	if v, ok := d.m[id]; ok {
		return v
	}

	return inf
}
func (d *hashDistanceMap[Vid, W]) HasKey(id Vid) bool { _, ok := d.m[id]; return ok }
func (d *hashDistanceMap[Vid, W]) Set(id Vid, v W)    { d.m[id] = v }
func (d *hashDistanceMap[Vid, W]) Delete(id Vid)      { delete(d.m, id) }

type hashTimeMap[Vid comparable] struct{ m map[Vid]int }

func (t *hashTimeMap[Vid]) Get(id Vid) int {
	return t.m[id] // zero value (0) is the documented "missing" default
}
func (t *hashTimeMap[Vid]) Set(id Vid, v int) { t.m[id] = v }

type sliceVertexSequence[V any] struct{ s []V }

func (q *sliceVertexSequence[V]) Append(v V) { q.s = append(q.s, v) }
func (q *sliceVertexSequence[V]) Slice() []V { return q.s }

type sliceLabelSequence[L any] struct{ s []L }

func (q *sliceLabelSequence[L]) Append(l L) { q.s = append(q.s, l) }
func (q *sliceLabelSequence[L]) Slice() []L { return q.s }
