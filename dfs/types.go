// Package dfs implements depth-first search (and Topological Sort, built on
// the same iterative stack, plus Neighbors-Then-Depth, a separate engine)
// over a lazily-enumerated, implicitly-defined graph.
//
// Three Modes select what "follow this edge" means:
//
//   - ModeDFSTree:  each vertex is visited once; only tree edges are
//     followed; the search maintains a permanent visited set.
//   - ModeAllPaths: every edge whose target is not currently on the trace
//     is followed, enumerating simple paths from a start vertex; no
//     permanent visited set is kept, so a vertex may be re-entered on a
//     different branch.
//   - ModeAllWalks: every edge is followed unconditionally; cycles are
//     allowed, neither a visited set nor a trace is maintained, and
//     back/forward/cross events cannot be reported; path building is not
//     allowed in this mode.
//
// Event reporting: callers request any subset of Event flags; Next only
// returns control for a transition whose Event is in that subset, otherwise
// it keeps advancing internally. Group flags (SomeNonTreeEdge,
// ForwardOrCrossEdge) cannot be combined with their member flags in the
// same request.
//
// Complexity:
//
//   - Time:   O(V + E) for ModeDFSTree (each vertex/edge visited a bounded
//     number of times); O(number of simple paths) for ModeAllPaths, which is
//     inherent to path enumeration; ModeAllWalks is unbounded when the graph
//     has a cycle and ends only through the calculation limit.
//   - Memory: O(depth) for the explicit stack, O(V) for Visited/OnTrace/Index
//     where maintained.
//
// Errors:
//
//	ErrUsage            - no start vertex, or a group/member event conflict.
//	ErrCalculationLimit - CalculationLimit exhausted mid-run.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/nographs/traversal"
)

// Mode selects which edges a DFS run follows and which bookkeeping it keeps.
type Mode int

const (
	ModeDFSTree Mode = iota
	ModeAllPaths
	ModeAllWalks
)

// Event is a bitmask of the moments a DFS run can report.
type Event uint16

const (
	EventEnteringStart Event = 1 << iota
	EventLeavingStart
	EventSkippingStart
	EventEnteringSuccessor
	EventLeavingSuccessor
	EventBackEdge
	EventForwardEdge
	EventCrossEdge
	// EventSomeNonTreeEdge is a group matching EventBackEdge|EventForwardEdge|EventCrossEdge.
	EventSomeNonTreeEdge
	// EventForwardOrCrossEdge is a group matching EventForwardEdge|EventCrossEdge.
	EventForwardOrCrossEdge
)

const nonTreeMembers = EventBackEdge | EventForwardEdge | EventCrossEdge
const forwardOrCrossMembers = EventForwardEdge | EventCrossEdge

func validateReport(report Event) error {
	if report&EventSomeNonTreeEdge != 0 && report&nonTreeMembers != 0 {
		return fmt.Errorf("%w: dfs: EventSomeNonTreeEdge cannot be combined with its member flags", traversal.ErrUsage)
	}
	if report&EventForwardOrCrossEdge != 0 && report&forwardOrCrossMembers != 0 {
		return fmt.Errorf("%w: dfs: EventForwardOrCrossEdge cannot be combined with its member flags", traversal.ErrUsage)
	}

	return nil
}

// NextVertices enumerates the unlabeled successors of v at the given depth.
type NextVertices[V any] func(v V, depth int) []V

// LabeledSuccessor pairs a reachable vertex with the edge label reaching it.
type LabeledSuccessor[V any, L any] struct {
	To    V
	Label L
}

// NextLabeledVertices enumerates the labeled successors of v.
type NextLabeledVertices[V any, L any] func(v V, depth int) []LabeledSuccessor[V, L]

// Option configures a StartFrom call.
type Option[Vid comparable] func(*options[Vid])

type options[Vid comparable] struct {
	mode             Mode
	report           Event
	buildPaths       bool
	calculationLimit int
	alreadyVisited   []Vid
	isTree           bool
}

func defaultOptions[Vid comparable]() options[Vid] {
	return options[Vid]{report: EventEnteringStart | EventEnteringSuccessor}
}

// WithMode selects ModeDFSTree (default), ModeAllPaths, or ModeAllWalks.
func WithMode[Vid comparable](m Mode) Option[Vid] {
	return func(o *options[Vid]) { o.mode = m }
}

// WithReport selects which Event flags cause Next to return to the caller.
func WithReport[Vid comparable](events Event) Option[Vid] {
	return func(o *options[Vid]) { o.report = events }
}

// WithBuildPaths enables predecessor recording and path iterators. Invalid
// in ModeAllWalks (spec.md §4.4: "path building is not allowed").
func WithBuildPaths[Vid comparable]() Option[Vid] {
	return func(o *options[Vid]) { o.buildPaths = true }
}

// WithCalculationLimit bounds the number of successor-function calls.
func WithCalculationLimit[Vid comparable](n int) Option[Vid] {
	return func(o *options[Vid]) { o.calculationLimit = n }
}

// WithAlreadyVisited preloads a visited set (ModeDFSTree only). The ids are
// copied into the run's Visited set; the caller's slice is not modified.
func WithAlreadyVisited[Vid comparable](ids []Vid) Option[Vid] {
	return func(o *options[Vid]) { o.alreadyVisited = ids }
}

// WithIsTree skips on-trace tracking and back/forward/cross-edge
// classification, assuming the caller's successor function already
// describes a tree (ModeDFSTree only; spec.md §4.6's Tree case). Invalid
// input (an actual cycle) is undefined behavior, not a detected error.
func WithIsTree[Vid comparable](b bool) Option[Vid] {
	return func(o *options[Vid]) { o.isTree = b }
}
