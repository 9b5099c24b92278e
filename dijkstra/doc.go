// Package dijkstra — see types.go for Option/NextVertices/NextLabeledVertices,
// dijkstra.go for the core Search engine, astar.go for AStar, and filter.go
// for GoForDistanceRange.
//
// Usage:
//
//	s := dijkstra.NewFromVertices[string, string](
//	    gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64),
//	    func(v string) string { return v },
//	    func(v string, distance int64) []dijkstra.WeightedSuccessor[string, int64] {
//	        return edgesOf[v]
//	    },
//	)
//	if err := s.StartFrom([]string{"start"}, dijkstra.WithBuildPaths[string, int64]()); err != nil {
//	    // handle ErrUsage
//	}
//	for v := range s.All() {
//	    _ = v // s.Distance, s.Paths readable here
//	}
//	if err := s.Err(); err != nil {
//	    // ErrCalculationLimit or weight overflow
//	}
package dijkstra
