// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sigmoid

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/stretchr/testify/require"
)

func TestPriceFloor(t *testing.T) {
	p := referenceParams(t)
	require.Equal(t, fixedpoint.FromWhole(1), Price(fixedpoint.Zero(), p))
}

func TestPriceAtMidpoint(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	require.Equal(fixedpoint.MustParse("5.5"), Price(uint256.NewInt(500_000), p))
	require.True(Price(uint256.NewInt(499_999), p).Lt(fixedpoint.MustParse("5.5")))
	require.True(Price(uint256.NewInt(500_001), p).Gt(fixedpoint.MustParse("5.5")))
}

func TestPriceOfScaledSupply(t *testing.T) {
	p := referenceParams(t)
	// A fixed-point supply reads as far past the total and sits at the ceiling.
	require.Equal(t, p.MaxPrice(), Price(fixedpoint.FromWhole(500_000), p))
}

func TestPriceMonotone(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	step := uint256.NewInt(997)
	total := uint256.NewInt(1_000_000)

	supply := fixedpoint.Zero()
	prev := Price(supply, p)
	for supply.Lt(total) {
		supply = fixedpoint.Min(fixedpoint.SatAdd(supply, step), total)
		cur := Price(supply, p)
		require.False(cur.Lt(prev), "price fell at supply %s", supply.Dec())
		prev = cur
	}

	// Walk across the inflection point one token at a time.
	s := uint256.NewInt(500_000 - 50)
	prev = Price(s, p)
	for i := 0; i < 100; i++ {
		s = fixedpoint.SatAdd(s, uint256.NewInt(1))
		cur := Price(s, p)
		require.False(cur.Lt(prev), "price fell at supply %s", s.Dec())
		prev = cur
	}
}

func TestPriceCeiling(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	top := Price(uint256.NewInt(1_000_000), p)
	require.False(top.Gt(p.MaxPrice()))

	// Within 1% of the price range below the ceiling.
	slack := new(uint256.Int).Div(p.PriceRange(), uint256.NewInt(100))
	require.True(top.Gt(fixedpoint.SatSub(p.MaxPrice(), slack)), "price at full supply %s", fixedpoint.Format(top))
}

func TestPriceSteepCurveSaturates(t *testing.T) {
	require := require.New(t)

	p, err := NewParams(fixedpoint.FromWhole(1), nil, fixedpoint.FromWhole(1000), nil, fixedpoint.FromWhole(1_000_000))
	require.NoError(err)

	require.Equal(p.MaxPrice(), Price(uint256.NewInt(1_000_000), p))
	require.Equal(p.InitialPrice(), Price(uint256.NewInt(1), p))
}

func TestCost(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	current := uint256.NewInt(500_000)
	amount := uint256.NewInt(10_000)

	start := Price(current, p)
	end := Price(fixedpoint.SatAdd(current, amount), p)
	want := fixedpoint.Mul(fixedpoint.SatAdd(start, end), amount)
	want.Rsh(want, 1)
	require.Equal(want, Cost(current, amount, p, Buy))

	require.True(Cost(current, fixedpoint.Zero(), p, Buy).IsZero())
	// Selling walks down the curve, so the same amount is worth less.
	require.True(Cost(current, amount, p, Sell).Lt(Cost(current, amount, p, Buy)))
}

func TestCostSellToZero(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	current := uint256.NewInt(250_000)

	c := Cost(current, current, p, Sell)
	want := fixedpoint.Mul(fixedpoint.SatAdd(Price(current, p), p.InitialPrice()), current)
	want.Rsh(want, 1)
	require.Equal(want, c)
	require.Equal(p.InitialPrice(), Price(fixedpoint.SatSub(current, current), p))

	// Overselling clamps at zero supply instead of wrapping.
	require.NotPanics(func() {
		Cost(current, fixedpoint.SatAdd(current, uint256.NewInt(1)), p, Sell)
	})
}

func TestSolveRoundTrip(t *testing.T) {
	p := referenceParams(t)

	// Every price is at least the initial 1.0, so cost grows at least one
	// unit per token and a cost residual within Tolerance bounds the amount
	// error by Tolerance as well.
	tests := []struct {
		name    string
		current uint64
		amount  *uint256.Int
		dir     Direction
	}{
		{"buy early", 100_000, uint256.NewInt(1_000), Buy},
		{"buy at midpoint", 500_000, uint256.NewInt(2_500), Buy},
		{"buy late", 900_000, uint256.NewInt(10_000), Buy},
		{"buy a large amount", 500_000, fixedpoint.FromWhole(2), Buy},
		{"sell after midpoint", 600_000, uint256.NewInt(5_000), Sell},
		{"sell early", 50_000, uint256.NewInt(100), Sell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			current := uint256.NewInt(tt.current)
			target := Cost(current, tt.amount, p, tt.dir)

			got := Solve(current, target, p, tt.dir)
			require.False(fixedpoint.AbsDiff(got, tt.amount).Gt(Tolerance),
				"solved %s, want %s", got.Dec(), tt.amount.Dec())
			require.False(fixedpoint.AbsDiff(Cost(current, got, p, tt.dir), target).Gt(Tolerance))
		})
	}
}

func TestSolveZeroTarget(t *testing.T) {
	p := referenceParams(t)
	got := Solve(uint256.NewInt(100_000), fixedpoint.Zero(), p, Buy)
	require.False(t, got.Gt(Tolerance))
}

func TestSolveBracketBounds(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	current := uint256.NewInt(100_000)
	remaining := fixedpoint.SatSub(p.TotalSupply(), current)

	// An unreachable target never converges and returns the lower bound of
	// the last bracket, one unit short of the bracket top.
	got := Solve(current, fixedpoint.Max, p, Buy)
	require.Equal(fixedpoint.SatSub(remaining, uint256.NewInt(1)), got)

	got = Solve(current, fixedpoint.Max, p, Sell)
	require.False(got.Gt(current))

	// No supply left to buy collapses the bracket immediately.
	require.True(Solve(p.TotalSupply(), fixedpoint.FromWhole(1), p, Buy).IsZero())
	// Nothing circulating collapses the sell bracket.
	require.True(Solve(fixedpoint.Zero(), fixedpoint.FromWhole(1), p, Sell).IsZero())
}

func TestDeterministic(t *testing.T) {
	require := require.New(t)

	p := referenceParams(t)
	current := uint256.NewInt(321_000)
	target := fixedpoint.FromWhole(12_345)
	require.Equal(Solve(current, target, p, Buy), Solve(current, target, p, Buy))
	require.Equal(Price(current, p), Price(current.Clone(), referenceParams(t)))
}
