// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poolcmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/cmd/flags"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/ledger"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/curve/pkg/store"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	simOwner   = common.HexToAddress("0x000000000000000000000000000000000000a11c")
	simManager = common.HexToAddress("0x000000000000000000000000000000000000b0b0")
	simToken   = common.HexToAddress("0x000000000000000000000000000000000000c0de")
	simPool    = common.HexToHash("0x01")
)

// SimStep is one settled purchase of a simulation.
type SimStep struct {
	Step      int
	SupplyIn  *uint256.Int
	Tokens    *uint256.Int
	Cost      *uint256.Int
	Price     *uint256.Int
	Collected *uint256.Int
}

// Simulate buys tokens base units per step against a fresh pool until steps
// purchases settle or the curve sells out. The pool state manager starts
// with the whole supply, total_supply/Scale tokens; the final step is cut
// to what remains.
func Simulate(ctx context.Context, p sigmoid.Params, tokens *uint256.Int, steps int, log *zap.Logger) ([]SimStep, error) {
	if tokens.IsZero() {
		return nil, fmt.Errorf("tokens per step: %w", curve.ErrInvalidAmount)
	}
	whole := new(uint256.Int).Div(p.TotalSupply(), fixedpoint.Scale)
	host := ledger.NewStatic()
	host.SetSupply(simToken, whole)
	host.SetBalance(simToken, simManager, whole)
	host.SetPool(simPool, curve.PoolInfo{Token: simToken, Creator: simOwner})

	s, err := curve.New(curve.Config{
		Store:    store.New(memdb.New()),
		Ledger:   host,
		Registry: host,
		Log:      log,
	}, simOwner, simManager)
	if err != nil {
		return nil, err
	}
	if _, err := s.Initialize(simOwner, simPool, p.Encode()); err != nil {
		return nil, err
	}

	var out []SimStep
	for i := 1; i <= steps; i++ {
		supply, err := s.Circulating(ctx, simToken)
		if err != nil {
			return nil, err
		}
		if !supply.Lt(whole) {
			break
		}
		amount := tokens
		if left := fixedpoint.SatSub(whole, supply); left.Lt(amount) {
			amount = left
		}
		q, err := s.MonetaryForExactTokens(ctx, simPool, amount)
		if err != nil {
			return nil, err
		}
		if err := host.ApplyBuy(simPool, simManager, q.Amount, amount); err != nil {
			return nil, err
		}
		info, err := host.PoolInfo(ctx, simPool)
		if err != nil {
			return nil, err
		}
		out = append(out, SimStep{
			Step:      i,
			SupplyIn:  supply,
			Tokens:    amount,
			Cost:      q.Amount,
			Price:     q.Price,
			Collected: info.Collected,
		})
	}
	return out, nil
}

func newSimulateCmd() *cobra.Command {
	var (
		params flags.CurveParams
		tokens string
		steps  int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Walk a fresh curve through a series of buys",
		Long: `Creates an in-memory pool with the given curve, where the pool state
manager initially holds the whole supply, and settles --steps purchases of
--amount tokens each, stopping early once the supply is sold. Nothing is read
from or written to the configured store.

Examples:
  curve simulate --initial-price 1 --total-supply 1000000 --amount 100000 --steps 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return errors.New("--steps must be at least 1")
			}
			p, err := params.Params()
			if err != nil {
				return err
			}
			in, err := flags.ParseUnits(tokens)
			if err != nil {
				return err
			}

			rows, err := Simulate(cmd.Context(), p, in, steps, app.Log.Named("simulate"))
			if err != nil {
				return err
			}
			table := ux.DefaultTable(ux.Logger, "Step", "Supply before", "Tokens out", "Cost", "Price after", "Reserve")
			table.SetAlignment(ux.ALIGN_RIGHT)
			for _, r := range rows {
				table.AppendCompat([]string{
					strconv.Itoa(r.Step),
					ux.FormatUnits(r.SupplyIn),
					ux.FormatUnits(r.Tokens),
					ux.FormatUnits(r.Cost),
					ux.FormatAmount(r.Price, constants.DefaultPlaces),
					ux.FormatUnits(r.Collected),
				})
			}
			if err := table.Render(); err != nil {
				return err
			}
			ux.Logger.Info("simulation settled %d of %d steps", len(rows), steps)
			if len(rows) < steps {
				ux.Logger.PrintLineSeparator()
				ux.Logger.PrintToUser("Curve sold out after %d steps", len(rows))
			}
			return nil
		},
	}
	flags.AddCurveParamFlags(cmd, &params)
	flags.AddAmountFlag(cmd, &tokens, "tokens bought per step, in base units")
	cmd.Flags().IntVar(&steps, "steps", 10, "number of purchases")
	return cmd
}
