// Package weight defines the numeric constraint used as edge weight and
// distance throughout nographs, plus the overflow check that every strategy
// adding weights (dijkstra, astar, bidirectional Dijkstra) runs before
// trusting a sum.
//
// A Weight is any ordered, additive numeric type. Zero and Infinity are not
// fixed constants of the type: they are chosen per Gear instance (see the
// gear package), because different callers want different sentinels — an
// int64 gear might pick math.MaxInt64, a float64 gear might pick
// math.Inf(1).
//
// Errors:
//
//	ErrOverflow - a computed distance reached or crossed the gear's infinity.
package weight

import (
	"errors"
	"fmt"
)

// Weight is the type-set constraint for edge weights and distances.
// +, -, and < are native Go operators on any of these underlying types,
// so no operator-overload shim is needed.
type Weight interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ErrOverflow is returned when arithmetic reaches or exceeds a gear's
// infinity sentinel. The engine never relies on saturating arithmetic.
var ErrOverflow = errors.New("weight: distance reached or exceeded infinity")

// CheckOverflow fails with ErrOverflow if sum is not strictly less than inf.
// Callers wrap the returned error with their own context (offending vertex).
func CheckOverflow[W Weight](sum, inf W) error {
	if sum >= inf {
		return fmt.Errorf("%w: computed value %v, infinity %v", ErrOverflow, sum, inf)
	}

	return nil
}

// Add returns a+b together with an ErrOverflow check against inf.
// This is the single choke point every strategy routes a weight sum through.
func Add[W Weight](a, b, inf W) (W, error) {
	sum := a + b
	if err := CheckOverflow(sum, inf); err != nil {
		return sum, err
	}

	return sum, nil
}
