// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sigmoid

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
)

const (
	wordSize = 32
	// EncodedSize is the length of a packed parameter block: five 32-byte
	// big-endian words.
	EncodedSize = 5 * wordSize
)

var (
	ErrInvalidParameters = errors.New("invalid curve parameters")

	DefaultMaxPriceFactor = fixedpoint.FromWhole(10)
	DefaultSteepness      = fixedpoint.FromWhole(10)
	DefaultMidpoint       = fixedpoint.MustParse("0.5")
)

// Params is the immutable parameter record of one curve. All fields are
// fixed-point. Use NewParams or DecodeParams to build one; fields are
// unexported so a record cannot change after creation.
type Params struct {
	initialPrice   uint256.Int
	maxPriceFactor uint256.Int
	steepness      uint256.Int
	midpoint       uint256.Int
	totalSupply    uint256.Int
}

// NewParams validates and builds a parameter record. initialPrice and
// totalSupply must be non-zero. A zero maxPriceFactor, steepness or midpoint
// is replaced by its default.
func NewParams(initialPrice, maxPriceFactor, steepness, midpoint, totalSupply *uint256.Int) (Params, error) {
	if initialPrice == nil || initialPrice.IsZero() {
		return Params{}, fmt.Errorf("%w: initial price must be non-zero", ErrInvalidParameters)
	}
	if totalSupply == nil || totalSupply.IsZero() {
		return Params{}, fmt.Errorf("%w: total supply must be non-zero", ErrInvalidParameters)
	}
	var p Params
	p.initialPrice.Set(initialPrice)
	p.totalSupply.Set(totalSupply)
	p.maxPriceFactor.Set(orDefault(maxPriceFactor, DefaultMaxPriceFactor))
	p.steepness.Set(orDefault(steepness, DefaultSteepness))
	p.midpoint.Set(orDefault(midpoint, DefaultMidpoint))
	return p, nil
}

func orDefault(v, def *uint256.Int) *uint256.Int {
	if v == nil || v.IsZero() {
		return def
	}
	return v
}

// DecodeParams builds a record from a packed block of five 32-byte big-endian
// words ordered initial price, max price factor, steepness, midpoint, total
// supply. Bytes past the fifth word are ignored.
func DecodeParams(b []byte) (Params, error) {
	if len(b) < EncodedSize {
		return Params{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidParameters, EncodedSize, len(b))
	}
	words := make([]*uint256.Int, 5)
	for i := range words {
		words[i] = new(uint256.Int).SetBytes32(b[i*wordSize : (i+1)*wordSize])
	}
	return NewParams(words[0], words[1], words[2], words[3], words[4])
}

// Encode packs the record into the five-word layout read by DecodeParams.
func (p Params) Encode() []byte {
	out := make([]byte, 0, EncodedSize)
	for _, w := range p.words() {
		b := w.Bytes32()
		out = append(out, b[:]...)
	}
	return out
}

func (p *Params) words() []*uint256.Int {
	return []*uint256.Int{&p.initialPrice, &p.maxPriceFactor, &p.steepness, &p.midpoint, &p.totalSupply}
}

// IsZero reports whether p is the zero record, which is never valid.
func (p Params) IsZero() bool {
	return p.initialPrice.IsZero()
}

func (p Params) InitialPrice() *uint256.Int   { return p.initialPrice.Clone() }
func (p Params) MaxPriceFactor() *uint256.Int { return p.maxPriceFactor.Clone() }
func (p Params) Steepness() *uint256.Int      { return p.steepness.Clone() }
func (p Params) Midpoint() *uint256.Int       { return p.midpoint.Clone() }
func (p Params) TotalSupply() *uint256.Int    { return p.totalSupply.Clone() }

// MaxPrice is the price ceiling, initial price times the max price factor.
func (p Params) MaxPrice() *uint256.Int {
	return fixedpoint.Mul(&p.initialPrice, &p.maxPriceFactor)
}

// PriceRange is the distance between ceiling and floor. It is zero when the
// max price factor is below 1.0.
func (p Params) PriceRange() *uint256.Int {
	return fixedpoint.SatSub(p.MaxPrice(), &p.initialPrice)
}

// String renders the record for logs.
func (p Params) String() string {
	return fmt.Sprintf("initial=%s factor=%s steepness=%s midpoint=%s supply=%s",
		fixedpoint.Format(&p.initialPrice),
		fixedpoint.Format(&p.maxPriceFactor),
		fixedpoint.Format(&p.steepness),
		fixedpoint.Format(&p.midpoint),
		fixedpoint.Format(&p.totalSupply),
	)
}
