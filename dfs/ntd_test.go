package dfs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nographs/dfs"
	"github.com/katalvlaran/nographs/gear"
)

// graph: 0 -> [1, 2], 1 -> [3, 4], 2 -> [], 3 -> [], 4 -> []
func ntdGraph(v int, _ int) []int {
	switch v {
	case 0:
		return []int{1, 2}
	case 1:
		return []int{3, 4}
	default:
		return nil
	}
}

// TestNTD_NeighborsReportedBeforeDescending checks that 1 and 2 (0's direct
// neighbors) are both reported before 3 or 4 (1's neighbors), unlike plain
// DFS which would report 1, 3, 4, 2. The start vertex 0 is expanded but
// never itself reported.
func TestNTD_NeighborsReportedBeforeDescending(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	n := dfs.NewNTDFromVertices[int, int](g, identity, ntdGraph)
	require.NoError(t, n.StartFrom([]int{0}))

	var order []int
	for v := range n.All() {
		order = append(order, v)
	}
	require.NoError(t, n.Err())
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestNTD_DepthTracksDiscoveryLevel(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	n := dfs.NewNTDFromVertices[int, int](g, identity, ntdGraph)
	require.NoError(t, n.StartFrom([]int{0}))

	depths := map[int]int{}
	for v := range n.All() {
		depths[v] = n.Depth
	}
	require.NoError(t, n.Err())
	assert.Equal(t, 1, depths[1])
	assert.Equal(t, 1, depths[2])
	assert.Equal(t, 2, depths[3])
	assert.Equal(t, 2, depths[4])
}

func TestNTD_BuildPathsRecordsPredecessors(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	n := dfs.NewNTDFromVertices[int, int](g, identity, ntdGraph)
	require.NoError(t, n.StartFrom([]int{0}, dfs.WithNTDBuildPaths[int]()))
	for range n.All() {
	}
	require.NoError(t, n.Err())

	seq, err := n.Paths.IterVerticesToStart(3)
	require.NoError(t, err)
	var chain []int
	for v := range seq {
		chain = append(chain, v)
	}
	assert.Equal(t, []int{3, 1, 0}, chain)
}

func TestNTD_NoStartVertexIsUsageError(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	n := dfs.NewNTDFromVertices[int, int](g, identity, ntdGraph)
	assert.Error(t, n.StartFrom(nil))
}
