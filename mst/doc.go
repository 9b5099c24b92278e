// See types.go for Option/NextVertices/NextLabeledVertices and mst.go for
// the Search engine.
//
// Usage:
//
//	s := mst.NewFromVertices[string, string](
//	    gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64),
//	    func(v string) string { return v },
//	    func(v string) []mst.WeightedSuccessor[string, int64] { return edgesOf[v] },
//	)
//	if err := s.StartFrom([]string{"A"}, mst.WithBuildPaths[string]()); err != nil {
//	    // handle ErrUsage
//	}
//	var total int64
//	for range s.All() {
//	    total += s.Weight
//	}
//	if err := s.Err(); err != nil {
//	    // ErrCalculationLimit
//	}
package mst
