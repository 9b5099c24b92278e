// Package bfs — see types.go for Option/NextVertices/NextLabeledVertices,
// bfs.go for Search/StartFrom/Next/All, and filter.go for GoForDepthRange.
//
// Usage:
//
//	s := bfs.NewFromVertices[string, string](
//	    gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64),
//	    func(v string) string { return v },
//	    func(v string, depth int) []string { return adjacency[v] },
//	)
//	if err := s.StartFrom([]string{"start"}, bfs.WithBuildPaths[string]()); err != nil {
//	    // handle ErrUsage
//	}
//	for v := range s.All() {
//	    _ = v // s.Depth, s.Paths readable here
//	}
//	if err := s.Err(); err != nil {
//	    // ErrCalculationLimit
//	}
package bfs
