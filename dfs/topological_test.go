package dfs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nographs/dfs"
	"github.com/katalvlaran/nographs/gear"
)

// drink->make, make->stand, make->water, water->stand
func drinkGraph(extraWaterToMake bool) func(v string, _ int) []string {
	return func(v string, _ int) []string {
		switch v {
		case "drink":
			return []string{"make"}
		case "make":
			return []string{"stand", "water"}
		case "water":
			if extraWaterToMake {
				return []string{"stand", "make"}
			}

			return []string{"stand"}
		default:
			return nil
		}
	}
}

// TestTopologicalSort_S3 matches spec.md scenario S3.
func TestTopologicalSort_S3(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64)
	id := func(v string) string { return v }
	ts := dfs.NewTopologicalSort[string, string](g, id, drinkGraph(false))

	order, err := ts.Run([]string{"drink"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"stand", "water", "make", "drink"}, order)
}

// TestTopologicalSort_S3Cycle matches the cycle variant of spec.md scenario
// S3: adding edge water->make.
func TestTopologicalSort_S3Cycle(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64)
	id := func(v string) string { return v }
	ts := dfs.NewTopologicalSort[string, string](g, id, drinkGraph(true))

	_, err := ts.Run([]string{"drink"}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, dfs.ErrCycle)
	assert.Equal(t, []string{"make", "water", "make"}, ts.CycleFromStart)
}

// straightChain: root -> a -> b, a genuine tree with no repeated vertices,
// exercising the Tree case fast path.
func straightChain(v string, _ int) []string {
	switch v {
	case "root":
		return []string{"a"}
	case "a":
		return []string{"b"}
	default:
		return nil
	}
}

func TestTopologicalSort_RunTree(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64)
	id := func(v string) string { return v }
	ts := dfs.NewTopologicalSort[string, string](g, id, straightChain)

	order, err := ts.RunTree([]string{"root"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "root"}, order)
}
