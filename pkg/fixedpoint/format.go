// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	ErrNegative  = errors.New("fixed-point values are unsigned")
	ErrPrecision = errors.New("more than 18 fractional digits")
	ErrRange     = errors.New("value exceeds 256 bits")
)

// Parse converts decimal text such as "1.5" or "1000000" into a fixed-point
// value.
func Parse(s string) (*uint256.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%q: %w", s, ErrNegative)
	}
	if d.Exponent() < -Decimals {
		return nil, fmt.Errorf("%q: %w", s, ErrPrecision)
	}
	v, overflow := uint256.FromBig(d.Shift(Decimals).BigInt())
	if overflow {
		return nil, fmt.Errorf("%q: %w", s, ErrRange)
	}
	return v, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) *uint256.Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders a fixed-point value as decimal text without trailing zeros.
func Format(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v.ToBig(), -Decimals).String()
}

// FormatFixed renders v rounded to the given number of fractional digits.
func FormatFixed(v *uint256.Int, places int32) string {
	if v == nil {
		v = Zero()
	}
	return decimal.NewFromBigInt(v.ToBig(), -Decimals).StringFixed(places)
}
