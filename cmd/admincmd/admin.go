// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admincmd

import (
	"context"

	"github.com/luxfi/curve/cmd/flags"
	"github.com/luxfi/curve/pkg/application"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.Curve

// NewCmds returns the strategy administration commands.
func NewCmds(injectedApp *application.Curve) []*cobra.Command {
	app = injectedApp
	return []*cobra.Command{
		newOwnerCmd(),
		newTransferOwnershipCmd(),
		newSetManagerCmd(),
	}
}

func openStrategy() (*curve.Strategy, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
	s, _, err := app.Strategy(ctx, app.Sink())
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return s, cancel, nil
}

func newOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner",
		Short: "Show the strategy owner and pool state manager",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, cancel, err := openStrategy()
			if err != nil {
				return err
			}
			defer cancel()

			table := ux.DefaultTable(ux.Logger, "Role", "Address")
			table.AppendCompat([]string{"Strategy", s.StrategyType() + "/" + s.Name()})
			table.AppendCompat([]string{"Owner", s.Owner().Hex()})
			table.AppendCompat([]string{"Pool state manager", s.PoolStateManager().Hex()})
			return table.Render()
		},
	}
}

func newTransferOwnershipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-ownership <address>",
		Short: "Hand the strategy to a new owner",
		Long: `Transfers ownership of the strategy. The acting address (--from, or the
configured owner) must be the current owner.

Examples:
  curve transfer-ownership 0x... --from 0x...`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			next, err := flags.ParseAddress(args[0])
			if err != nil {
				return err
			}
			caller, err := app.Caller()
			if err != nil {
				return err
			}
			s, cancel, err := openStrategy()
			if err != nil {
				return err
			}
			defer cancel()

			previous := s.Owner()
			if err := s.TransferOwnership(caller, next); err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Ownership transferred from %s to %s", previous.Hex(), next.Hex())
			return nil
		},
	}
}

func newSetManagerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-manager <address>",
		Short: "Replace the pool state manager",
		Long: `Sets the account whose token holdings are excluded from circulating
supply. Owner only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := flags.ParseAddress(args[0])
			if err != nil {
				return err
			}
			caller, err := app.Caller()
			if err != nil {
				return err
			}
			s, cancel, err := openStrategy()
			if err != nil {
				return err
			}
			defer cancel()

			if err := s.SetPoolStateManager(caller, manager); err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Pool state manager set to %s", manager.Hex())
			return nil
		},
	}
}
