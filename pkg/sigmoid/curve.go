// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sigmoid prices a bonding curve whose unit price follows a logistic
// function of the fraction of supply sold. All functions are pure over
// (supply, Params) and deterministic.
package sigmoid

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
)

// Direction selects whether an amount moves supply up (Buy) or down (Sell).
type Direction int

const (
	Buy Direction = iota
	Sell
)

func (d Direction) String() string {
	if d == Sell {
		return "sell"
	}
	return "buy"
}

// MaxIterations caps the bisection in Solve.
const MaxIterations = 100

// Tolerance is the accepted cost residual in Solve (0.001).
var Tolerance = new(uint256.Int).Div(fixedpoint.Scale, uint256.NewInt(1000))

// degenerateDenominator stands in for 1 + 1/e^x when the exponential is zero.
var degenerateDenominator = fixedpoint.SatMul(fixedpoint.Scale, uint256.NewInt(1000))

// Price returns the unit price at the given circulating supply. Supply is a
// plain token count: the fraction sold is supply*Scale/totalSupply, so a
// supply of 500000 against a fixed-point total of 1000000.0 is 0.5.
//
// Below the midpoint the curve is initial + range/(1 + e^(k*(m-s))); at or
// above it the equivalent initial + range/(1 + e^-(k*(s-m))) is evaluated as
// range/(1 + 1/e^(k*(s-m))) so no negative exponent is needed. A supply
// exactly at the midpoint takes the second branch.
func Price(supply *uint256.Int, p Params) *uint256.Int {
	if supply.IsZero() {
		return p.InitialPrice()
	}

	sold := fixedpoint.One()
	if !p.totalSupply.IsZero() {
		sold = fixedpoint.Div(fixedpoint.SatMul(supply, fixedpoint.Scale), &p.totalSupply)
	}
	priceRange := p.PriceRange()

	var denom *uint256.Int
	if sold.Lt(&p.midpoint) {
		d := new(uint256.Int).Sub(&p.midpoint, sold)
		e := fixedpoint.Exp(fixedpoint.Mul(&p.steepness, d))
		denom = fixedpoint.SatAdd(fixedpoint.Scale, e)
	} else {
		d := new(uint256.Int).Sub(sold, &p.midpoint)
		e := fixedpoint.Exp(fixedpoint.Mul(&p.steepness, d))
		if e.IsZero() {
			denom = new(uint256.Int).Set(degenerateDenominator)
		} else {
			denom = fixedpoint.SatAdd(fixedpoint.Scale, fixedpoint.Div(fixedpoint.Scale, e))
		}
	}
	return fixedpoint.SatAdd(&p.initialPrice, fixedpoint.Div(priceRange, denom))
}

// Cost estimates the monetary value of moving supply by amount from current,
// using the two-point trapezoid (p(current)+p(next))*amount/2. Large spans are
// not subdivided; callers wanting more precision split the amount.
func Cost(current, amount *uint256.Int, p Params, dir Direction) *uint256.Int {
	next := fixedpoint.SatAdd(current, amount)
	if dir == Sell {
		next = fixedpoint.SatSub(current, amount)
	}
	sum := fixedpoint.SatAdd(Price(current, p), Price(next, p))
	c := fixedpoint.Mul(sum, amount)
	return c.Rsh(c, 1)
}

// Solve inverts Cost: it returns the asset amount whose cost is within
// Tolerance of target, searching [0, current] when selling and
// [0, totalSupply-current] when buying. If the bisection does not converge in
// MaxIterations the lower bound of the final bracket is returned.
func Solve(current, target *uint256.Int, p Params, dir Direction) *uint256.Int {
	lo := fixedpoint.Zero()
	hi := fixedpoint.SatSub(&p.totalSupply, current)
	if dir == Sell {
		hi = new(uint256.Int).Set(current)
	}

	for i := 0; i < MaxIterations; i++ {
		if lo.Eq(hi) {
			return lo
		}
		mid := new(uint256.Int).Sub(hi, lo)
		mid.Rsh(mid, 1).Add(mid, lo)

		c := Cost(current, mid, p, dir)
		if !fixedpoint.AbsDiff(c, target).Gt(Tolerance) {
			return mid
		}
		if c.Lt(target) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
