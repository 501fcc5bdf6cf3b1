// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poolcmd

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/cmd/flags"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <pool-id>",
		Short: "Show the current spot price of a pool",
		Long: `Shows the spot price at the pool's circulating supply. A pool that has
transitioned off the curve reports its last recorded price.

Examples:
  curve price 0x01 --network lux --manager 0x...
  curve price 0x01 --pools-file pools.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			poolID, err := flags.ParsePoolID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := withTimeout()
			defer cancel()
			s, host, err := openStrategy(ctx)
			if err != nil {
				return err
			}

			price, err := s.CurrentPrice(ctx, poolID)
			if err != nil {
				return err
			}
			info, err := host.Registry.PoolInfo(ctx, poolID)
			if err != nil {
				return err
			}
			ux.Logger.PrintToUser("Pool:   %s", poolID.Hex())
			if info.Transitioned {
				ux.Logger.PrintToUser("Status: transitioned")
			} else {
				supply, err := s.Circulating(ctx, info.Token)
				if err != nil {
					return err
				}
				ux.Logger.PrintToUser("Supply: %s", ux.FormatUnits(supply))
			}
			ux.Logger.PrintToUser("Price:  %s", ux.FormatAmount(price, constants.DefaultPlaces))
			return nil
		},
	}
}

func newScheduleCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "schedule <pool-id>",
		Short: "Tabulate the price curve of a pool",
		Long: `Prints the price at evenly spaced fractions of total supply, from zero to
the full supply. Reads only the local store.

Examples:
  curve schedule 0x01
  curve schedule 0x01 --points 21`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if points < 2 {
				return fmt.Errorf("--points must be at least 2")
			}
			poolID, err := flags.ParsePoolID(args[0])
			if err != nil {
				return err
			}
			db, err := app.OpenStore()
			if err != nil {
				return err
			}
			p, err := db.GetParams(poolID)
			if err != nil {
				return fmt.Errorf("pool %s: %w", poolID.Hex(), err)
			}

			table := ux.DefaultTable(ux.Logger, "Sold", "Supply", "Price", "Of max")
			table.SetAlignment(ux.ALIGN_RIGHT)
			for _, row := range Schedule(p, points) {
				table.AppendCompat([]string{
					fixedpoint.FormatFixed(row.Fraction, 4),
					ux.FormatUnits(row.Supply),
					ux.FormatAmount(row.Price, constants.DefaultPlaces),
					fixedpoint.FormatFixed(fixedpoint.Div(row.Price, p.MaxPrice()), 4),
				})
			}
			return table.Render()
		},
	}
	cmd.Flags().IntVar(&points, "points", constants.SchedulePoints, "number of rows, including both ends")
	return cmd
}

// ScheduleRow is one sample of the price curve.
type ScheduleRow struct {
	Fraction *uint256.Int
	Supply   *uint256.Int
	Price    *uint256.Int
}

// Schedule samples the curve at points evenly spaced supplies. Supplies are
// token counts, total_supply/Scale at the full end.
func Schedule(p sigmoid.Params, points int) []ScheduleRow {
	total := p.TotalSupply()
	last := fixedpoint.FromWhole(uint64(points - 1))
	rows := make([]ScheduleRow, points)
	for i := range rows {
		fraction := fixedpoint.Div(fixedpoint.FromWhole(uint64(i)), last)
		supply := new(uint256.Int).Div(fixedpoint.Mul(total, fraction), fixedpoint.Scale)
		rows[i] = ScheduleRow{
			Fraction: fraction,
			Supply:   supply,
			Price:    sigmoid.Price(supply, p),
		}
	}
	return rows
}
