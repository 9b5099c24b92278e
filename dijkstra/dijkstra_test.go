package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nographs/dijkstra"
	"github.com/katalvlaran/nographs/gear"
)

func identity(v int) int { return v }

// spiralGraph matches the classic nographs doctest example: j = (i + i/6) %
// 6; i -> i+1 at weight 2j+1 always; i -> i+6 at weight 7-j when i is even;
// i -> i-6 at weight 1 when i is odd and i > 5.
func spiralGraph(i int, _ int64) []dijkstra.WeightedSuccessor[int, int64] {
	j := (i + i/6) % 6
	out := []dijkstra.WeightedSuccessor[int, int64]{{To: i + 1, Weight: int64(j*2 + 1)}}
	if i%2 == 0 {
		out = append(out, dijkstra.WeightedSuccessor[int, int64]{To: i + 6, Weight: int64(7 - j)})
	} else if i > 5 {
		out = append(out, dijkstra.WeightedSuccessor[int, int64]{To: i - 6, Weight: 1})
	}

	return out
}

// TestDijkstra_S2Spiral matches spec.md scenario S2.
func TestDijkstra_S2Spiral(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	s := dijkstra.NewFromVertices[int, int](g, identity, spiralGraph)
	require.NoError(t, s.StartFrom([]int{0}, dijkstra.WithBuildPaths[int, int64]()))

	distance, ok, err := s.GoTo(5, false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(24), distance)

	seq, err := s.Paths.IterVerticesFromStart(5)
	require.NoError(t, err)
	var path []int
	for v := range seq {
		path = append(path, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 10, 16, 17, 11, 5}, path)
}

// graph: 0 -(1)-> 1 -(4)-> 3; 0 -(5)-> 2 -(1)-> 3. shortest to 3 is via 1.
func diamondWeighted(v int, _ int64) []dijkstra.WeightedSuccessor[int, int64] {
	switch v {
	case 0:
		return []dijkstra.WeightedSuccessor[int, int64]{{To: 1, Weight: 1}, {To: 2, Weight: 5}}
	case 1:
		return []dijkstra.WeightedSuccessor[int, int64]{{To: 3, Weight: 4}}
	case 2:
		return []dijkstra.WeightedSuccessor[int, int64]{{To: 3, Weight: 1}}
	default:
		return nil
	}
}

func TestDijkstra_ShortestDistanceWins(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	s := dijkstra.NewFromVertices[int, int](g, identity, diamondWeighted)
	require.NoError(t, s.StartFrom([]int{0}, dijkstra.WithBuildPaths[int, int64]()))

	var order []int
	for v := range s.All() {
		order = append(order, v)
	}
	require.NoError(t, s.Err())
	// 2 and 3 both finalize at distance 5; the descending tie-break counter
	// means 3 (pushed later, as 1's successor) pops before 2.
	assert.Equal(t, []int{1, 3, 2}, order)
	assert.Equal(t, int64(5), s.Distance)

	seq, err := s.Paths.IterVerticesFromStart(3)
	require.NoError(t, err)
	var path []int
	for v := range seq {
		path = append(path, v)
	}
	assert.Equal(t, []int{0, 1, 3}, path)
}

func TestDijkstra_KeepDistancesRetainsFinalValues(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	s := dijkstra.NewFromVertices[int, int](g, identity, diamondWeighted)
	require.NoError(t, s.StartFrom([]int{0}, dijkstra.WithKeepDistances[int, int64]()))

	for range s.All() {
	}
	require.NoError(t, s.Err())
	assert.Equal(t, int64(1), s.Distances.Get(1, math.MaxInt64))
	assert.Equal(t, int64(5), s.Distances.Get(2, math.MaxInt64))
	assert.Equal(t, int64(5), s.Distances.Get(3, math.MaxInt64))
}

func TestDijkstra_NoStartVertexIsUsageError(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	s := dijkstra.NewFromVertices[int, int](g, identity, diamondWeighted)
	assert.Error(t, s.StartFrom(nil))
}

func TestDijkstra_CalculationLimit(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	s := dijkstra.NewFromVertices[int, int](g, identity, diamondWeighted)
	require.NoError(t, s.StartFrom([]int{0}, dijkstra.WithCalculationLimit[int, int64](1)))

	_, ok, err := s.Next()
	require.True(t, ok)
	require.NoError(t, err)

	_, _, err = s.Next()
	assert.Error(t, err)
}

func TestDijkstra_GoForDistanceRange(t *testing.T) {
	g := gear.NewHashGear[int, int, int64, struct{}](0, math.MaxInt64)
	s := dijkstra.NewFromVertices[int, int](g, identity, diamondWeighted)
	require.NoError(t, s.StartFrom([]int{0}))

	seq, err := s.GoForDistanceRange(1, 5)
	require.NoError(t, err)
	var got []int
	for v := range seq {
		got = append(got, v)
	}
	assert.Equal(t, []int{1}, got)
}
