package dfs_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nographs/dfs"
	"github.com/katalvlaran/nographs/gear"
)

// BenchmarkDFS_Grid runs ModeDFSTree over an implicit n x n grid graph.
func BenchmarkDFS_Grid(b *testing.B) {
	const n = 50
	next := func(v int, _ int) []int {
		x, y := v%n, v/n
		out := make([]int, 0, 4)
		if x > 0 {
			out = append(out, v-1)
		}
		if x < n-1 {
			out = append(out, v+1)
		}
		if y > 0 {
			out = append(out, v-n)
		}
		if y < n-1 {
			out = append(out, v+n)
		}

		return out
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := gear.NewArrayGear[int, int, int64, struct{}](0, math.MaxInt64, true)
		s := dfs.NewFromVertices[int, int](g, func(v int) int { return v }, next)
		if err := s.StartFrom([]int{0}); err != nil {
			b.Fatal(err)
		}
		for range s.All() {
		}
	}
}
