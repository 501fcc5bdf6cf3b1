// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file, creating the file if needed.

Examples:
  curve config set network zoo
  curve config set manager 0x...
  curve config set store.type memdb`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := checkKey(key); err != nil {
				return err
			}
			if err := app.Conf.SetConfigValue(key, value, app.GetConfigPath()); err != nil {
				return err
			}
			ux.Logger.PrintToUser("Set %s = %s in %s", key, value, app.GetConfigPath())
			return nil
		},
	}
}
