// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poolcmd

import (
	"github.com/luxfi/curve/cmd/flags"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var params flags.CurveParams

	cmd := &cobra.Command{
		Use:   "init <pool-id>",
		Short: "Register the curve parameters of a pool",
		Long: `Registers the sigmoid curve of a pool. Parameters are write-once: a pool
that already has a curve is refused. Only the strategy owner may initialize.

Examples:
  curve init 0x01 --initial-price 0.0001 --total-supply 1000000000
  curve init 0x01 --initial-price 1 --max-price-factor 20 --steepness 8 --midpoint 0.4 --total-supply 1000000
  curve init 0x01 --params-hex 0x...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := flags.ParsePoolID(args[0])
			if err != nil {
				return err
			}
			raw, err := params.Encode()
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout()
			defer cancel()
			s, _, err := openStrategy(ctx)
			if err != nil {
				return err
			}
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			p, err := s.Initialize(caller, poolID, raw)
			if err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Curve initialized for pool %s", poolID.Hex())
			printParams(p)
			printEvents(cmd)
			return nil
		},
	}
	flags.AddCurveParamFlags(cmd, &params)
	return cmd
}
