// See types.go for Option, bfs.go for BFS, and dijkstra.go for Dijkstra.
//
// Usage:
//
//	s := bidirectional.NewBFS[string, string, int64, struct{}](
//	    gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64),
//	    func(v string) string { return v },
//	    func(v string, depth int) []string { return forwardEdgesOf[v] },
//	    func(v string, depth int) []string { return backwardEdgesOf[v] },
//	)
//	if err := s.StartFrom([]string{"start"}, []string{"goal"}); err != nil {
//	    // handle ErrUsage
//	}
//	length, ok, err := s.Find(false)
//	if err != nil {
//	    // traversal.ErrNoPath, ErrCalculationLimit, ...
//	}
//	path, _ := s.Path()
package bidirectional
