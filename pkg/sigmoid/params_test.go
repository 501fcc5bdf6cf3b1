// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sigmoid

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/stretchr/testify/require"
)

func referenceParams(t *testing.T) Params {
	t.Helper()
	p, err := NewParams(
		fixedpoint.FromWhole(1),
		fixedpoint.FromWhole(10),
		fixedpoint.FromWhole(10),
		fixedpoint.MustParse("0.5"),
		fixedpoint.FromWhole(1_000_000),
	)
	require.NoError(t, err)
	return p
}

func TestNewParamsDefaults(t *testing.T) {
	require := require.New(t)

	p, err := NewParams(fixedpoint.FromWhole(1), nil, uint256.NewInt(0), nil, fixedpoint.FromWhole(1_000_000))
	require.NoError(err)
	require.Equal(referenceParams(t), p)
	require.Equal(DefaultMaxPriceFactor, p.MaxPriceFactor())
	require.Equal(DefaultSteepness, p.Steepness())
	require.Equal(fixedpoint.MustParse("0.5"), p.Midpoint())
}

func TestNewParamsRejectsZero(t *testing.T) {
	tests := []struct {
		name         string
		initialPrice *uint256.Int
		totalSupply  *uint256.Int
	}{
		{"zero initial price", uint256.NewInt(0), fixedpoint.FromWhole(1)},
		{"nil initial price", nil, fixedpoint.FromWhole(1)},
		{"zero total supply", fixedpoint.FromWhole(1), uint256.NewInt(0)},
		{"both zero", uint256.NewInt(0), uint256.NewInt(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParams(tt.initialPrice, nil, nil, nil, tt.totalSupply)
			require.ErrorIs(t, err, ErrInvalidParameters)
			require.True(t, p.IsZero())
		})
	}
}

func TestParamsAreCopied(t *testing.T) {
	require := require.New(t)

	price := fixedpoint.FromWhole(1)
	p, err := NewParams(price, nil, nil, nil, fixedpoint.FromWhole(100))
	require.NoError(err)

	price.SetUint64(7)
	require.Equal(fixedpoint.FromWhole(1), p.InitialPrice())

	got := p.InitialPrice()
	got.SetUint64(9)
	require.Equal(fixedpoint.FromWhole(1), p.InitialPrice())
}

func TestDecodeParams(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	raw := p.Encode()
	require.Len(raw, EncodedSize)

	decoded, err := DecodeParams(raw)
	require.NoError(err)
	require.Equal(p, decoded)

	// Trailing bytes are ignored.
	decoded, err = DecodeParams(append(raw, 0xff, 0xff))
	require.NoError(err)
	require.Equal(p, decoded)
}

func TestDecodeParamsDefaultsOptionalWords(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, EncodedSize)
	one := fixedpoint.FromWhole(1).Bytes32()
	supply := fixedpoint.FromWhole(1_000_000).Bytes32()
	copy(raw[0:32], one[:])
	copy(raw[128:160], supply[:])

	p, err := DecodeParams(raw)
	require.NoError(err)
	require.Equal(referenceParams(t), p)
}

func TestDecodeParamsErrors(t *testing.T) {
	require := require.New(t)

	_, err := DecodeParams(make([]byte, EncodedSize-1))
	require.ErrorIs(err, ErrInvalidParameters)

	_, err = DecodeParams(make([]byte, EncodedSize))
	require.ErrorIs(err, ErrInvalidParameters)
}

func TestPriceRange(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	require.Equal(fixedpoint.FromWhole(10), p.MaxPrice())
	require.Equal(fixedpoint.FromWhole(9), p.PriceRange())

	flat, err := NewParams(fixedpoint.FromWhole(2), fixedpoint.MustParse("0.5"), nil, nil, fixedpoint.FromWhole(10))
	require.NoError(err)
	require.True(flat.PriceRange().IsZero())
}
