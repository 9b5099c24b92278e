package gear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nographs/gear"
	"github.com/katalvlaran/nographs/weight"
)

func TestHashGear_DistanceMapMissingIsInfinity(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64)
	d := g.DistanceMap(nil)
	assert.Equal(t, int64(math.MaxInt64), d.Get("x", g.Infinity()))
	assert.False(t, d.HasKey("x"))
	d.Set("x", 7)
	assert.True(t, d.HasKey("x"))
	assert.Equal(t, int64(7), d.Get("x", g.Infinity()))
}

func TestHashGear_VisitedSet(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64)
	s := g.VisitedSet([]string{"a"})
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))
	s.Add("b")
	assert.True(t, s.Contains("b"))
	assert.Equal(t, 2, s.Len())
}

func TestHashGear_PredecessorMapMissingMeansNoPath(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64)
	p := g.PredecessorMap(nil)
	_, ok := p.Get("x")
	assert.False(t, ok)
	p.Set("x", "start")
	v, ok := p.Get("x")
	require.True(t, ok)
	assert.Equal(t, "start", v)
}

func TestArrayGear_DenseVisitedSetAutoExtends(t *testing.T) {
	g := gear.NewArrayGear[int, int, int64, struct{}](0, math.MaxInt64, false)
	s := g.VisitedSet(nil)
	assert.False(t, s.Contains(100))
	s.Add(100)
	assert.True(t, s.Contains(100))
	assert.False(t, s.Contains(99))
	assert.Equal(t, 1, s.Len())
}

func TestArrayGear_BitPackedVisitedSet(t *testing.T) {
	g := gear.NewArrayGear[int, int, int64, struct{}](0, math.MaxInt64, true)
	s := g.VisitedSet(nil)
	assert.False(t, s.Contains(17))
	s.Add(17)
	assert.True(t, s.Contains(17))
	assert.False(t, s.Contains(16))
	assert.False(t, s.Contains(18))
	assert.Equal(t, 1, s.Len())
}

func TestArrayGear_DistanceMapMissingIsInfinityAndAutoExtends(t *testing.T) {
	g := gear.NewArrayGear[int, int, int64, struct{}](0, math.MaxInt64, false)
	d := g.DistanceMap(nil)
	assert.Equal(t, int64(math.MaxInt64), d.Get(42, g.Infinity()))
	assert.False(t, d.HasKey(42))
	d.Set(42, 5)
	assert.True(t, d.HasKey(42))
	assert.Equal(t, int64(5), d.Get(42, g.Infinity()))
}

func TestArrayGear_PredecessorMapAutoExtends(t *testing.T) {
	g := gear.NewArrayGear[int, int, int64, struct{}](0, math.MaxInt64, false)
	p := g.PredecessorMap(nil)
	_, ok := p.Get(9)
	assert.False(t, ok)
	p.Set(9, 3)
	v, ok := p.Get(9)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestGear_ReportOverflow(t *testing.T) {
	g := gear.NewHashGear[string, string, int64, struct{}](0, 100)
	err := g.ReportOverflow(100)
	assert.ErrorIs(t, err, weight.ErrOverflow)
}
