// Package simdops provides generic SIMD reductions for float32 and float64 types.
// This enables a single codebase to support both precision levels without duplication.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated reductions for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
type Ops[F Float] struct {
	// Min returns the smallest element. The slice must not be empty.
	Min func(a []F) F

	// Max returns the largest element. The slice must not be empty.
	Max func(a []F) F

	// Sum returns the sum of all elements. It is NaN when any element is
	// NaN, which makes it a single-pass NaN probe.
	Sum func(a []F) F
}

// Pre-instantiated operations for each float type.
// These are package-level variables to avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		Min: f32.Min,
		Max: f32.Max,
		Sum: f32.Sum,
	}
	ops64 = Ops[float64]{
		Min: f64.Min,
		Max: f64.Max,
		Sum: f64.Sum,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Reduction is the set of reductions available for an element type that
// is not statically known to be a float.
type Reduction[T any] struct {
	Min func([]T) T
	Max func([]T) T
	Sum func([]T) T
}

// Reducer returns the SIMD reductions over []T when T is exactly float32
// or float64. ok is false for every other element type, including named
// types whose underlying type is a float.
func Reducer[T any]() (r Reduction[T], ok bool) {
	var zero T
	switch any(zero).(type) {
	case float32:
		return reductionOf[T](For[float32]())
	case float64:
		return reductionOf[T](For[float64]())
	default:
		return Reduction[T]{}, false
	}
}

func reductionOf[T any, F Float](ops *Ops[F]) (Reduction[T], bool) {
	minFn, ok1 := any(ops.Min).(func([]T) T)
	maxFn, ok2 := any(ops.Max).(func([]T) T)
	sumFn, ok3 := any(ops.Sum).(func([]T) T)
	if !ok1 || !ok2 || !ok3 {
		return Reduction[T]{}, false
	}
	return Reduction[T]{Min: minFn, Max: maxFn, Sum: sumFn}, true
}
