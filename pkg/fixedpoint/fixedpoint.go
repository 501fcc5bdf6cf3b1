// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixedpoint implements unsigned 18-decimal fixed-point arithmetic on
// 256-bit integers. Arithmetic edge cases never fail: division by zero yields
// zero and overflow saturates to Max.
package fixedpoint

import "github.com/holiman/uint256"

// Decimals is the number of fractional digits carried by a fixed-point value.
const Decimals = 18

var (
	// Scale is 1.0 in fixed-point (10^18).
	Scale = uint256.NewInt(1_000_000_000_000_000_000)
	// Max is the largest representable value, returned on overflow.
	Max = new(uint256.Int).SetAllOne()

	// expCutoff bounds the exponential series input; above it Exp saturates.
	expCutoff = new(uint256.Int).Mul(uint256.NewInt(50), Scale)
	// expEpsilon is the term size below which the series stops early.
	expEpsilon = new(uint256.Int).Div(Scale, uint256.NewInt(1_000_000))
	// expUnbounded is returned for inputs past expCutoff.
	expUnbounded = new(uint256.Int).Rsh(Max, 1)
)

const expTerms = 14

// Zero returns a new zero value.
func Zero() *uint256.Int {
	return new(uint256.Int)
}

// One returns a new 1.0.
func One() *uint256.Int {
	return new(uint256.Int).Set(Scale)
}

// FromWhole returns n whole units in fixed-point.
func FromWhole(n uint64) *uint256.Int {
	return SatMul(uint256.NewInt(n), Scale)
}

// Mul returns a*b/Scale. Zero operands give zero and an overflowing product
// returns Max.
func Mul(a, b *uint256.Int) *uint256.Int {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	prod, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return new(uint256.Int).Set(Max)
	}
	return prod.Div(prod, Scale)
}

// Div returns a*Scale/b. A zero divisor gives zero. When a*Scale would
// overflow the quotient is computed as (a/b)*Scale instead, trading precision
// for range.
func Div(a, b *uint256.Int) *uint256.Int {
	if b.IsZero() {
		return Zero()
	}
	scaled, overflow := new(uint256.Int).MulOverflow(a, Scale)
	if overflow {
		q := new(uint256.Int).Div(a, b)
		return SatMul(q, Scale)
	}
	return scaled.Div(scaled, b)
}

// Exp approximates e^x for a fixed-point x with a truncated Taylor series of
// at most 14 terms. Inputs above 50.0 return Max/2.
func Exp(x *uint256.Int) *uint256.Int {
	if x.IsZero() {
		return One()
	}
	if x.Gt(expCutoff) {
		return new(uint256.Int).Set(expUnbounded)
	}

	result := One()
	term := One()
	for i := uint64(1); i <= expTerms; i++ {
		term = Mul(term, x)
		term.Div(term, uint256.NewInt(i))
		result = SatAdd(result, term)
		if term.Lt(expEpsilon) {
			break
		}
	}
	return result
}

// SatAdd returns a+b clamped to Max.
func SatAdd(a, b *uint256.Int) *uint256.Int {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return new(uint256.Int).Set(Max)
	}
	return sum
}

// SatSub returns a-b clamped to zero.
func SatSub(a, b *uint256.Int) *uint256.Int {
	diff, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return Zero()
	}
	return diff
}

// SatMul returns the plain integer product a*b clamped to Max.
func SatMul(a, b *uint256.Int) *uint256.Int {
	prod, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return new(uint256.Int).Set(Max)
	}
	return prod
}

// Min returns a copy of the smaller of a and b.
func Min(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Set(a)
	}
	return new(uint256.Int).Set(b)
}

// AbsDiff returns |a-b|.
func AbsDiff(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Sub(b, a)
	}
	return new(uint256.Int).Sub(a, b)
}
