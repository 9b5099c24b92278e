package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nographs/dijkstra"
	"github.com/katalvlaran/nographs/gear"
)

// BenchmarkDijkstra_Grid runs a shortest-paths search over an implicit n x n
// grid graph with unit-ish weights, exercising the heap-relaxation hot loop
// without ever materializing the grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const n = 50
	next := func(v int, _ int64) []dijkstra.WeightedSuccessor[int, int64] {
		x, y := v%n, v/n
		out := make([]dijkstra.WeightedSuccessor[int, int64], 0, 4)
		if x > 0 {
			out = append(out, dijkstra.WeightedSuccessor[int, int64]{To: v - 1, Weight: 1})
		}
		if x < n-1 {
			out = append(out, dijkstra.WeightedSuccessor[int, int64]{To: v + 1, Weight: 1})
		}
		if y > 0 {
			out = append(out, dijkstra.WeightedSuccessor[int, int64]{To: v - n, Weight: 2})
		}
		if y < n-1 {
			out = append(out, dijkstra.WeightedSuccessor[int, int64]{To: v + n, Weight: 2})
		}

		return out
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := gear.NewArrayGear[int, int, int64, struct{}](0, math.MaxInt64, true)
		s := dijkstra.NewFromVertices[int, int](g, func(v int) int { return v }, next)
		if err := s.StartFrom([]int{0}); err != nil {
			b.Fatal(err)
		}
		for range s.All() {
		}
	}
}
