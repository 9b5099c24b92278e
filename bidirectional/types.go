// Package bidirectional runs two single-direction searches — one from the
// start side, one from the goal side — and detects the instant they meet,
// which is almost always cheaper than searching the whole distance from one
// side alone.
package bidirectional

import "github.com/katalvlaran/nographs/traversal"

// ErrNotStarted is returned by Find when called before StartFrom.
var ErrNotStarted = traversal.ErrUsage

// Option configures a StartFrom call, shared by BFS and Dijkstra.
type Option[Vid comparable] func(*options[Vid])

type options[Vid comparable] struct {
	calculationLimit int
}

// WithCalculationLimit bounds the number of successor-function calls made
// by each side's underlying search; n<=0 means unlimited.
func WithCalculationLimit[Vid comparable](n int) Option[Vid] {
	return func(o *options[Vid]) { o.calculationLimit = n }
}
