// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/luxfi/curve/pkg/config"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings := app.Conf.Settings()
			table := ux.DefaultTable(ux.Logger, "Key", "Value")
			for _, k := range config.SortedKeys(settings) {
				table.AppendCompat([]string{k, settings[k]})
			}
			if p := app.Conf.GetConfigPath(); p != "" {
				ux.Logger.PrintToUser("Config file: %s", p)
			}
			return table.Render()
		},
	}
}
