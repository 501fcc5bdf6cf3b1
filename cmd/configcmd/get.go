// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"
	"slices"

	"github.com/luxfi/curve/pkg/config"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the effective value of a configuration key.

Examples:
  curve config get network
  curve config get store.path`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			key := args[0]
			if err := checkKey(key); err != nil {
				return err
			}
			ux.Logger.PrintToUser("%s = %s", key, app.Conf.GetConfigStringValue(key))
			return nil
		},
	}
}

func checkKey(key string) error {
	if !slices.Contains(config.Keys, key) {
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
