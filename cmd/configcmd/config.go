// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/luxfi/curve/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Curve

func NewCmd(injectedApp *application.Curve) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and modify curve CLI configuration",
		Long: `Read and modify the curve CLI configuration file.

Values resolve in order: flags, CURVE_* environment variables, the config
file, then defaults.`,
		Run: func(cmd *cobra.Command, _ []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
