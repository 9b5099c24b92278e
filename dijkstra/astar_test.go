package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nographs/dijkstra"
	"github.com/katalvlaran/nographs/gear"
)

// zeroHeuristic reduces A* to plain Dijkstra: useful for checking the shared
// relaxation logic without involving a real estimate.
func zeroHeuristic(int) int64 { return 0 }

func TestAStar_MatchesDijkstraWithZeroHeuristic(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	a := dijkstra.NewAStarFromVertices[int, int](g, identity, diamondWeighted, zeroHeuristic)
	require.NoError(t, a.StartFrom([]int{0}, dijkstra.WithBuildPaths[int, int64]()))

	var order []int
	for v := range a.All() {
		order = append(order, v)
	}
	require.NoError(t, a.Err())
	assert.Equal(t, []int{1, 3, 2}, order)
	assert.Equal(t, int64(5), a.Distance)

	seq, err := a.Paths.IterVerticesFromStart(3)
	require.NoError(t, err)
	var path []int
	for v := range seq {
		path = append(path, v)
	}
	assert.Equal(t, []int{0, 1, 3}, path)
}

// deadEndGraph: 0 -(1)-> 1 (dead end); 0 -(1)-> 2 -(1)-> 3 (goal).
func deadEndGraph(v int, _ int64) []dijkstra.WeightedSuccessor[int, int64] {
	switch v {
	case 0:
		return []dijkstra.WeightedSuccessor[int, int64]{{To: 1, Weight: 1}, {To: 2, Weight: 1}}
	case 2:
		return []dijkstra.WeightedSuccessor[int, int64]{{To: 3, Weight: 1}}
	default:
		return nil
	}
}

// TestAStar_UnreachableHeuristicDoesNotStarveAlternatives matches spec.md
// scenario S6: vertex 1 carries an infinity heuristic (it is a dead end with
// no path to the goal), so its f stays infinity and it is reported only
// after every other, non-dead-end alternative — and no overflow is raised
// solely by that heuristic value.
func TestAStar_UnreachableHeuristicDoesNotStarveAlternatives(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	heuristic := func(v int) int64 {
		switch v {
		case 0:
			return 2
		case 1:
			return math.MaxInt64 // unreachable from here
		case 2:
			return 1
		default:
			return 0
		}
	}
	a := dijkstra.NewAStarFromVertices[int, int](g, identity, deadEndGraph, heuristic)
	require.NoError(t, a.StartFrom([]int{0}))

	var order []int
	for v := range a.All() {
		order = append(order, v)
	}
	require.NoError(t, a.Err())
	assert.Equal(t, []int{2, 3, 1}, order)
}

func TestAStar_NoStartVertexIsUsageError(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	a := dijkstra.NewAStarFromVertices[int, int](g, identity, diamondWeighted, zeroHeuristic)
	assert.Error(t, a.StartFrom(nil))
}
