// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poolcmd

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/cmd/flags"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"
)

type quoteFunc func(s *curve.Strategy, ctx context.Context, poolID common.Hash, amount *uint256.Int) (curve.Quote, error)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price trades against a pool's curve",
		Long: `Quotes trades against the curve of a pool. Quotes never change state.

Examples:
  curve quote buy 0x01 --amount 10
  curve quote sell 0x01 --amount 5000
  curve quote buy-exact 0x01 --amount 5000
  curve quote tokens-for 0x01 --amount 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newQuoteSubCmd(
		"buy", "Tokens received for a monetary amount",
		"Monetary in", "Tokens out",
		(*curve.Strategy).CalculateBuy,
	))
	cmd.AddCommand(newQuoteSubCmd(
		"sell", "Monetary amount paid out for tokens",
		"Tokens in", "Monetary out",
		(*curve.Strategy).CalculateSell,
	))
	cmd.AddCommand(newQuoteSubCmd(
		"buy-exact", "Monetary amount needed to buy an exact token amount",
		"Tokens out", "Monetary in",
		(*curve.Strategy).MonetaryForExactTokens,
	))
	cmd.AddCommand(newQuoteSubCmd(
		"tokens-for", "Tokens bought by spending an exact monetary amount",
		"Monetary in", "Tokens out",
		(*curve.Strategy).TokensForExactMonetary,
	))
	return cmd
}

func newQuoteSubCmd(use, short, inLabel, outLabel string, quote quoteFunc) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   use + " <pool-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := flags.ParsePoolID(args[0])
			if err != nil {
				return err
			}
			in, err := flags.ParseUnits(amount)
			if err != nil {
				return err
			}
			ctx, cancel := withTimeout()
			defer cancel()
			s, _, err := openStrategy(ctx)
			if err != nil {
				return err
			}

			q, err := quote(s, ctx, poolID, in)
			if err != nil {
				return err
			}
			table := ux.DefaultTable(ux.Logger, "Pool", inLabel, outLabel, "Price after")
			table.SetAlignment(ux.ALIGN_RIGHT)
			table.AppendCompat([]string{
				poolID.Hex(),
				ux.FormatUnits(in),
				ux.FormatUnits(q.Amount),
				ux.FormatAmount(q.Price, constants.DefaultPlaces),
			})
			if err := table.Render(); err != nil {
				return err
			}
			printEvents(cmd)
			return nil
		},
	}
	flags.AddAmountFlag(cmd, &amount, "amount in base units")
	return cmd
}
