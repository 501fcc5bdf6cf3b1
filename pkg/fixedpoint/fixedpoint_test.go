// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	require := require.New(t)

	require.True(Mul(Zero(), FromWhole(5)).IsZero())
	require.True(Mul(FromWhole(5), Zero()).IsZero())
	require.Equal(FromWhole(6), Mul(FromWhole(2), FromWhole(3)))
	require.Equal(MustParse("0.25"), Mul(MustParse("0.5"), MustParse("0.5")))
}

func TestMulSaturates(t *testing.T) {
	require := require.New(t)

	require.Equal(Max, Mul(Max, uint256.NewInt(2)))
	require.Equal(Max, Mul(uint256.NewInt(2), Max))
	// Max*1 does not overflow and is scaled down normally.
	require.Equal(new(uint256.Int).Div(Max, Scale), Mul(Max, uint256.NewInt(1)))
}

func TestDiv(t *testing.T) {
	require := require.New(t)

	require.True(Div(FromWhole(1), Zero()).IsZero())
	require.Equal(FromWhole(2), Div(FromWhole(6), FromWhole(3)))
	require.Equal(uint256.NewInt(333_333_333_333_333_333), Div(FromWhole(1), FromWhole(3)))
}

func TestDivOverflowFallback(t *testing.T) {
	require := require.New(t)

	two := FromWhole(2)
	want := new(uint256.Int).Div(Max, two)
	want.Mul(want, Scale)
	require.Equal(want, Div(Max, two))

	// (Max/1)*Scale overflows again and saturates.
	require.Equal(Max, Div(Max, uint256.NewInt(1)))
}

func TestExp(t *testing.T) {
	require := require.New(t)

	require.Equal(Scale, Exp(Zero()))
	require.Equal(new(uint256.Int).Rsh(Max, 1), Exp(FromWhole(51)))
	require.NotEqual(new(uint256.Int).Rsh(Max, 1), Exp(FromWhole(50)))

	e := Exp(One())
	want := uint256.NewInt(2_718_281_828_459_045_235)
	require.False(AbsDiff(e, want).Gt(uint256.NewInt(1_000_000_000_000)), "e^1 = %s", Format(e))

	e5 := Exp(FromWhole(5))
	require.Equal("148.4", FormatFixed(e5, 1))
}

func TestExpSeries(t *testing.T) {
	tests := []struct {
		name string
		x    *uint256.Int
		want string
	}{
		// all 14 terms, far short of e^20
		{"twenty", FromWhole(20), "50876499435262562246675922"},
		{"fifty", FromWhole(50), "9626973339598027781154592706768"},
		// stops after the 10th term
		{"one", One(), "2718281801146384475"},
		// 1 + 0.1 + 0.005 + 0.000166666666666666 + 0.000004166666666666 + 0.000000083333333333
		{"tenth", MustParse("0.1"), "1105170916666666665"},
		// the second term, 5e5 wei, is already under the cutoff
		{"micro", MustParse("0.000001"), "1000001000000500000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, uint256.MustFromDecimal(tt.want), Exp(tt.x))
		})
	}
}

func TestExpMonotone(t *testing.T) {
	require := require.New(t)

	step := MustParse("0.05")
	x := Zero()
	prev := Exp(x)
	for i := 0; i < 1000; i++ {
		x = SatAdd(x, step)
		cur := Exp(x)
		require.False(cur.Lt(prev), "exp decreased at x=%s", Format(x))
		prev = cur
	}
}

func TestSaturatingHelpers(t *testing.T) {
	require := require.New(t)

	require.Equal(Max, SatAdd(Max, uint256.NewInt(1)))
	require.True(SatSub(uint256.NewInt(1), uint256.NewInt(2)).IsZero())
	require.Equal(Max, SatMul(Max, uint256.NewInt(3)))
	require.Equal(uint256.NewInt(3), Min(uint256.NewInt(3), uint256.NewInt(4)))
	require.Equal(uint256.NewInt(1), AbsDiff(uint256.NewInt(3), uint256.NewInt(4)))
	require.Equal(uint256.NewInt(1), AbsDiff(uint256.NewInt(4), uint256.NewInt(3)))
}

func TestParseFormat(t *testing.T) {
	require := require.New(t)

	v, err := Parse("1.5")
	require.NoError(err)
	require.Equal(uint256.NewInt(1_500_000_000_000_000_000), v)
	require.Equal("1.5", Format(v))
	require.Equal("1000000", Format(FromWhole(1_000_000)))
	require.Equal("0.000000000000000001", Format(uint256.NewInt(1)))
	require.Equal("2.50", FormatFixed(MustParse("2.5"), 2))

	_, err = Parse("-1")
	require.ErrorIs(err, ErrNegative)
	_, err = Parse("0.0000000000000000001")
	require.ErrorIs(err, ErrPrecision)
	_, err = Parse("1e80")
	require.ErrorIs(err, ErrRange)
	_, err = Parse("one")
	require.Error(err)
}
