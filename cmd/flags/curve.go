// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/spf13/cobra"
)

const (
	initialPriceFlag   = "initial-price"
	maxPriceFactorFlag = "max-price-factor"
	steepnessFlag      = "steepness"
	midpointFlag       = "midpoint"
	totalSupplyFlag    = "total-supply"
	paramsHexFlag      = "params-hex"
	amountFlag         = "amount"
)

// CurveParams collects curve parameters from decimal flags or a packed hex
// block.
type CurveParams struct {
	InitialPrice   string
	MaxPriceFactor string
	Steepness      string
	Midpoint       string
	TotalSupply    string
	ParamsHex      string
}

func AddCurveParamFlags(cmd *cobra.Command, p *CurveParams) {
	cmd.Flags().StringVar(&p.InitialPrice, initialPriceFlag, "", "price at zero supply")
	cmd.Flags().StringVar(&p.MaxPriceFactor, maxPriceFactorFlag, "", "ceiling as a multiple of the initial price (default 10)")
	cmd.Flags().StringVar(&p.Steepness, steepnessFlag, "", "sigmoid steepness (default 10)")
	cmd.Flags().StringVar(&p.Midpoint, midpointFlag, "", "inflection point as a fraction of total supply (default 0.5)")
	cmd.Flags().StringVar(&p.TotalSupply, totalSupplyFlag, "", "total token supply")
	cmd.Flags().StringVar(&p.ParamsHex, paramsHexFlag, "", "packed 160-byte parameter block in hex, instead of the flags above")
	cmd.MarkFlagsMutuallyExclusive(paramsHexFlag, initialPriceFlag)
	cmd.MarkFlagsMutuallyExclusive(paramsHexFlag, totalSupplyFlag)
}

// Encode returns the packed parameter block described by the flags.
func (p *CurveParams) Encode() ([]byte, error) {
	if p.ParamsHex != "" {
		raw, err := hexutil.Decode(ensure0x(p.ParamsHex))
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", paramsHexFlag, err)
		}
		return raw, nil
	}
	params, err := p.Params()
	if err != nil {
		return nil, err
	}
	return params.Encode(), nil
}

// Params validates the flags into a parameter record.
func (p *CurveParams) Params() (sigmoid.Params, error) {
	if p.ParamsHex != "" {
		raw, err := p.Encode()
		if err != nil {
			return sigmoid.Params{}, err
		}
		return sigmoid.DecodeParams(raw)
	}
	if p.InitialPrice == "" || p.TotalSupply == "" {
		return sigmoid.Params{}, fmt.Errorf("required flags: --%s, --%s (or --%s)", initialPriceFlag, totalSupplyFlag, paramsHexFlag)
	}
	values := make([]*uint256.Int, 5)
	for i, f := range []struct {
		name, value string
	}{
		{initialPriceFlag, p.InitialPrice},
		{maxPriceFactorFlag, p.MaxPriceFactor},
		{steepnessFlag, p.Steepness},
		{midpointFlag, p.Midpoint},
		{totalSupplyFlag, p.TotalSupply},
	} {
		v, err := ParseOptionalAmount(f.value)
		if err != nil {
			return sigmoid.Params{}, fmt.Errorf("--%s: %w", f.name, err)
		}
		values[i] = v
	}
	return sigmoid.NewParams(values[0], values[1], values[2], values[3], values[4])
}

func AddAmountFlag(cmd *cobra.Command, amount *string, usage string) {
	cmd.Flags().StringVar(amount, amountFlag, "", usage)
	_ = cmd.MarkFlagRequired(amountFlag)
}

// ParseUnits parses a trade amount: an integer count of base units, either
// tokens or the monetary asset.
func ParseUnits(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("amount is required")
	}
	v, err := uint256.FromDecimal(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: want an integer count of base units", s)
	}
	return v, nil
}

func ParseOptionalAmount(s string) (*uint256.Int, error) {
	if strings.TrimSpace(s) == "" {
		return fixedpoint.Zero(), nil
	}
	return fixedpoint.Parse(strings.TrimSpace(s))
}

// ParsePoolID accepts up to 32 bytes of hex, left-padded to a pool id.
func ParsePoolID(s string) (common.Hash, error) {
	b, err := hexutil.Decode(ensure0x(s))
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid pool id %q: %w", s, err)
	}
	if len(b) == 0 || len(b) > common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid pool id %q: want 1 to 32 bytes", s)
	}
	return common.BytesToHash(b), nil
}

func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

func ensure0x(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return "0x" + s
}
