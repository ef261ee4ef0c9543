// SPDX-License-Identifier: MIT
// Package matrix - dense vector helpers.
//
// All helpers allocate a fresh result and never alias their inputs, so
// engine iterates can be appended to a trace as is.
// Operands must have equal lengths; a mismatch is a programmer error and
// panics inside gonum/floats.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CloneVec returns an independent copy of v (nil stays nil).
func CloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Fill returns a vector of length n with every entry set to v.
func Fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Ones returns a vector of n ones.
func Ones(n int) []float64 { return Fill(n, 1) }

// Dot returns aᵀb.
func Dot(a, b []float64) float64 { return floats.Dot(a, b) }

// Norm2 returns the Euclidean norm ‖v‖₂ (0 for an empty vector).
func Norm2(v []float64) float64 { return floats.Norm(v, 2) }

// NormInf returns max |v_i| (0 for an empty vector).
func NormInf(v []float64) float64 { return floats.Norm(v, math.Inf(1)) }

// AddVec returns a + b.
func AddVec(a, b []float64) []float64 {
	return floats.AddTo(make([]float64, len(a)), a, b)
}

// SubVec returns a − b.
func SubVec(a, b []float64) []float64 {
	return floats.SubTo(make([]float64, len(a)), a, b)
}

// ScaleVec returns alpha·v.
func ScaleVec(alpha float64, v []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(v)), alpha, v)
}

// AddScaled returns y + alpha·x.
func AddScaled(y []float64, alpha float64, x []float64) []float64 {
	return floats.AddScaledTo(make([]float64, len(y)), y, alpha, x)
}

// Hadamard returns the element-wise product a∘b.
func Hadamard(a, b []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), a, b)
}

// ProjectNonNeg returns Π₊(v): every negative entry replaced by zero.
func ProjectNonNeg(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x > 0 {
			out[i] = x
		}
	}

	return out
}

// MaxStep returns the largest α ∈ [0, 1] with v + α·dv ≥ 0 component-wise,
// i.e. the classic ratio test min over dv_i < 0 of −v_i/dv_i, capped at 1.
// Components with dv_i ≥ 0 never limit the step.
func MaxStep(v, dv []float64) float64 {
	alpha := 1.0
	for i, d := range dv {
		if d < 0 {
			alpha = math.Min(alpha, -v[i]/d)
		}
	}

	return math.Max(alpha, 0)
}

// AllFinite reports whether every entry of v is finite.
func AllFinite(v []float64) bool {
	return !floats.HasNaN(v) && !hasInf(v)
}

// hasInf reports whether v contains ±Inf.
func hasInf(v []float64) bool {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return true
		}
	}

	return false
}
