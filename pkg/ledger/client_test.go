// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func poolResult() []interface{} {
	return []interface{}{
		common.HexToAddress("0xc3"),
		common.HexToAddress("0xa1"),
		big.NewInt(1234),
		new(big.Int).Mul(big.NewInt(725), big.NewInt(1e16)),
		true,
		[32]byte{31: 0x07},
	}
}

func TestPoolInfoFromResult(t *testing.T) {
	require := require.New(t)

	info, err := poolInfoFromResult(poolResult())
	require.NoError(err)
	require.Equal(common.HexToAddress("0xc3"), info.Token)
	require.Equal(common.HexToAddress("0xa1"), info.Creator)
	require.Equal(uint256.NewInt(1234), info.Collected)
	require.Equal(uint256.NewInt(7_250_000_000_000_000_000), info.LastPrice)
	require.True(info.Transitioned)
	require.Equal(common.HexToHash("0x07"), info.CurveStrategy)
}

func TestPoolInfoFromResultBadShape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]interface{}) []interface{}
		want   string
	}{
		{"short", func(r []interface{}) []interface{} { return r[:5] }, "expected 6 outputs, got 5"},
		{"token", func(r []interface{}) []interface{} { r[0] = "0xc3"; return r }, "output token has type string"},
		{"creator", func(r []interface{}) []interface{} { r[1] = nil; return r }, "output creator"},
		{"collected", func(r []interface{}) []interface{} { r[2] = uint64(1); return r }, "output wethCollected has type uint64"},
		{"last price", func(r []interface{}) []interface{} { r[3] = "7.25"; return r }, "output lastPrice"},
		{"transitioned", func(r []interface{}) []interface{} { r[4] = 1; return r }, "output isTransitioned has type int"},
		{"strategy", func(r []interface{}) []interface{} { r[5] = []byte{7}; return r }, "output bondingCurveStrategy has type []uint8"},
		{"negative", func(r []interface{}) []interface{} { r[2] = big.NewInt(-1); return r }, "wethCollected: negative value -1"},
		{"too wide", func(r []interface{}) []interface{} { r[3] = new(big.Int).Lsh(big.NewInt(1), 256); return r }, "lastPrice: value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := poolInfoFromResult(tt.mutate(poolResult()))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestUintFromResult(t *testing.T) {
	require := require.New(t)

	v, err := uintFromResult("totalSupply", []interface{}{big.NewInt(1_000_000)})
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000_000), v)

	_, err = uintFromResult("totalSupply", nil)
	require.ErrorContains(err, "totalSupply: empty result")

	_, err = uintFromResult("balanceOf", []interface{}{"1"})
	require.ErrorContains(err, "balanceOf: output is string, want uint256")
}
