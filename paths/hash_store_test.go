package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/paths"
)

func identity(v int) int { return v }

func buildChain(t *testing.T, labeled bool) paths.Store[int, int, string] {
	t.Helper()
	g := gear.NewHashGear[int, int, int64, string](0, 1<<62)
	pred := g.PredecessorMap(nil)
	var labels gear.LabelMap[int, string]
	if labeled {
		labels = g.LabelMap(nil)
	}
	store := paths.NewHashStore[int, int, string](identity, pred, labels)
	store.SetStart(0, 0)
	store.AppendEdge(0, 1, 1, "a")
	store.AppendEdge(1, 3, 3, "b")

	return store
}

func TestHashStore_RoundTrip(t *testing.T) {
	store := buildChain(t, false)

	assert.True(t, store.Contains(0))
	assert.True(t, store.Contains(3))
	assert.False(t, store.Contains(42))

	toStart, err := store.IterVerticesToStart(3)
	require.NoError(t, err)
	var got []int
	for v := range toStart {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 1, 0}, got)

	fromStart, err := store.IterVerticesFromStart(3)
	require.NoError(t, err)
	var fwd []int
	for v := range fromStart {
		fwd = append(fwd, v)
	}
	assert.Equal(t, []int{0, 1, 3}, fwd)
}

func TestHashStore_StartVertexIsSingleElementPath(t *testing.T) {
	store := buildChain(t, false)

	toStart, err := store.IterVerticesToStart(0)
	require.NoError(t, err)
	var got []int
	for v := range toStart {
		got = append(got, v)
	}
	assert.Equal(t, []int{0}, got)
}

func TestHashStore_NoPathError(t *testing.T) {
	store := buildChain(t, false)
	_, err := store.IterVerticesToStart(99)
	assert.ErrorIs(t, err, paths.ErrNoPath)
}

func TestHashStore_UnlabeledIterationFails(t *testing.T) {
	store := buildChain(t, false)
	_, err := store.IterLabeledEdgesToStart(3)
	assert.ErrorIs(t, err, paths.ErrUnlabeled)
}

func TestHashStore_LabeledEdges(t *testing.T) {
	store := buildChain(t, true)

	toStart, err := store.IterLabeledEdgesToStart(3)
	require.NoError(t, err)
	var edges []paths.LabeledEdge[int, string]
	for e := range toStart {
		edges = append(edges, e)
	}
	require.Len(t, edges, 2)
	assert.Equal(t, paths.LabeledEdge[int, string]{From: 1, To: 3, Label: "b"}, edges[0])
	assert.Equal(t, paths.LabeledEdge[int, string]{From: 0, To: 1, Label: "a"}, edges[1])

	fromStart, err := store.IterLabeledEdgesFromStart(3)
	require.NoError(t, err)
	var fwd []paths.LabeledEdge[int, string]
	for e := range fromStart {
		fwd = append(fwd, e)
	}
	require.Len(t, fwd, 2)
	assert.Equal(t, paths.LabeledEdge[int, string]{From: 0, To: 1, Label: "a"}, fwd[0])
	assert.Equal(t, paths.LabeledEdge[int, string]{From: 1, To: 3, Label: "b"}, fwd[1])
}

func TestHashStore_OverwritePreferredPredecessor(t *testing.T) {
	store := buildChain(t, false)
	store.AppendEdge(0, 3, 3, "")

	toStart, err := store.IterVerticesToStart(3)
	require.NoError(t, err)
	var got []int
	for v := range toStart {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 0}, got)
}

func TestDummyStore_AllMethodsFail(t *testing.T) {
	store := paths.NewDummyStore[int, int, string]()
	assert.False(t, store.Contains(0))

	_, err := store.IterVerticesToStart(0)
	assert.ErrorIs(t, err, paths.ErrNotBuilt)

	_, err = store.IterVerticesFromStart(0)
	assert.ErrorIs(t, err, paths.ErrNotBuilt)

	_, err = store.IterLabeledEdgesToStart(0)
	assert.ErrorIs(t, err, paths.ErrNotBuilt)

	_, err = store.IterLabeledEdgesFromStart(0)
	assert.ErrorIs(t, err, paths.ErrNotBuilt)
}
