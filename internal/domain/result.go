package domain

import "math/big"

// Result carries one calculation outcome. Factorial is the only operation
// producing an exact integer; everything else yields a float.
type Result struct {
	Float float64
	Int   *big.Int
}

// FloatResult wraps a floating-point value.
func FloatResult(v float64) Result {
	return Result{Float: v}
}

// IntResult wraps an exact integer value.
func IntResult(v *big.Int) Result {
	return Result{Int: v}
}

// IsInt reports whether the result is an exact integer.
func (r Result) IsInt() bool {
	return r.Int != nil
}
