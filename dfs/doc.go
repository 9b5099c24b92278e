// See types.go for Mode/Event/Option, dfs.go for the core Search engine,
// topological.go for TopologicalSort, and ntd.go for NeighborsThenDepth.
//
// Usage:
//
//	s := dfs.NewFromVertices[string, string](
//	    gear.NewHashGear[string, string, int64, struct{}](0, math.MaxInt64),
//	    func(v string) string { return v },
//	    func(v string, depth int) []string { return adjacency[v] },
//	)
//	if err := s.StartFrom([]string{"start"}, dfs.WithReport[string](
//	    dfs.EventEnteringStart|dfs.EventEnteringSuccessor|dfs.EventBackEdge,
//	)); err != nil {
//	    // handle ErrUsage
//	}
//	for v := range s.All() {
//	    if s.Event == dfs.EventBackEdge {
//	        // cycle detected through v
//	    }
//	}
package dfs
