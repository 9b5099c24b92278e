// Package paths — see paths.go for the Store contract, hash_store.go for
// the general predecessor-chain implementation, and dummy_store.go for the
// placeholder, whose iteration methods always fail, used when a run disables
// path building.
//
// Complexity:
//
//   - Contains/AppendEdge/SetStart: O(1) (one map/array access via the
//     owning Gear's PredecessorMap/LabelMap).
//   - IterVerticesToStart / IterLabeledEdgesToStart: O(k) where k is the
//     path length, lazily, one predecessor hop per pull.
//   - IterVerticesFromStart / IterLabeledEdgesFromStart: same, but buffers
//     the whole chain before reversing (spec.md §4.2 explicitly allows this).
package paths
