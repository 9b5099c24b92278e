// Package paths implements the predecessor-chain path store every strategy
// shares: a mapping Vid -> (predecessor V, optional label L) from which
// forward/backward vertex or labeled-edge iterators are produced lazily on
// demand, without ever materializing a full path list unless the consumer
// asks for the "from start" direction (which buffers internally).
//
// A path to v exists iff Vid(v) is a key of the mapping. The path's first
// vertex is marked by a self-loop entry (predecessor == v); recording a real
// self-loop edge is therefore impossible (documented limitation, matching
// spec.md §4.2).
//
// Errors:
//
//	ErrNoPath    - iteration requested for a vertex with no stored path.
//	ErrUnlabeled - labeled iteration requested on an unlabeled store.
//	ErrNotBuilt  - any iteration method called on the dummy (paths-disabled)
//	               store.
package paths

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNoPath is returned by the iteration methods when the requested vertex
// has no recorded path.
var ErrNoPath = errors.New("paths: no path to vertex")

// ErrUnlabeled is returned when a labeled iteration method is called on a
// store that was built unlabeled.
var ErrUnlabeled = errors.New("paths: store is unlabeled")

// ErrNotBuilt is returned by every iteration method of the dummy store, used
// when path building was disabled for a run (its Contains reports false and
// its SetStart/AppendEdge do nothing).
var ErrNotBuilt = errors.New("paths: paths not built")

// LabeledEdge pairs an edge's endpoints with its label, in the direction
// the edge was originally followed (From -> To), regardless of which
// direction it is being iterated in.
type LabeledEdge[V any, L any] struct {
	From  V
	To    V
	Label L
}

// Store is the predecessor-chain abstraction. It never exposes its raw
// mapping; the iterators above are the only consumer-facing view.
type Store[Vid comparable, V any, L any] interface {
	// Contains reports whether a path has been recorded for id.
	Contains(id Vid) bool

	// SetStart records v as the first vertex of its own path: a self-loop
	// entry whose predecessor is v itself.
	SetStart(id Vid, v V)

	// AppendEdge records that the path to toID is the path to fromV
	// followed by this edge. Overwriting an existing entry means "this is
	// now the preferred predecessor". Valid on both labeled and unlabeled
	// stores; the label is ignored by an unlabeled store.
	AppendEdge(fromV V, toID Vid, toV V, label L)

	// IterVerticesToStart yields V's from v back to its path's first
	// vertex (terminated by detection of the self-loop entry). Fails with
	// ErrNoPath if v has no stored path.
	IterVerticesToStart(v V) (iter.Seq[V], error)

	// IterVerticesFromStart is IterVerticesToStart reversed; it buffers the
	// sequence internally.
	IterVerticesFromStart(v V) (iter.Seq[V], error)

	// IterLabeledEdgesToStart is the labeled-edge variant of
	// IterVerticesToStart; fails with ErrUnlabeled if the store is
	// unlabeled.
	IterLabeledEdgesToStart(v V) (iter.Seq[LabeledEdge[V, L]], error)

	// IterLabeledEdgesFromStart is IterLabeledEdgesToStart reversed; it
	// buffers the sequence internally.
	IterLabeledEdgesFromStart(v V) (iter.Seq[LabeledEdge[V, L]], error)
}

// noPathError wraps ErrNoPath with a detail naming the vertex that has no
// stored path.
func noPathError(detail string) error {
	return fmt.Errorf("%w: %s", ErrNoPath, detail)
}
