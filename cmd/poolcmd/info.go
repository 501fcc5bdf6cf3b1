// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poolcmd

import (
	"fmt"

	"github.com/luxfi/curve/cmd/flags"
	"github.com/luxfi/curve/pkg/constants"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/curve/pkg/ux"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

type paramsView struct {
	Pool           string `yaml:"pool,omitempty"`
	InitialPrice   string `yaml:"initialPrice"`
	MaxPriceFactor string `yaml:"maxPriceFactor"`
	Steepness      string `yaml:"steepness"`
	Midpoint       string `yaml:"midpoint"`
	TotalSupply    string `yaml:"totalSupply"`
	MaxPrice       string `yaml:"maxPrice"`
	PriceRange     string `yaml:"priceRange"`
	Encoded        string `yaml:"encoded"`
}

func newParamsView(poolID common.Hash, p sigmoid.Params) paramsView {
	v := paramsView{
		InitialPrice:   fixedpoint.Format(p.InitialPrice()),
		MaxPriceFactor: fixedpoint.Format(p.MaxPriceFactor()),
		Steepness:      fixedpoint.Format(p.Steepness()),
		Midpoint:       fixedpoint.Format(p.Midpoint()),
		TotalSupply:    fixedpoint.Format(p.TotalSupply()),
		MaxPrice:       fixedpoint.Format(p.MaxPrice()),
		PriceRange:     fixedpoint.Format(p.PriceRange()),
		Encoded:        hexutil.Encode(p.Encode()),
	}
	if poolID != (common.Hash{}) {
		v.Pool = poolID.Hex()
	}
	return v
}

func printParams(p sigmoid.Params) {
	table := ux.DefaultTable(ux.Logger, "Parameter", "Value")
	table.SetAlignment(ux.ALIGN_LEFT)
	table.AppendCompat([]string{"Initial price", ux.FormatAmount(p.InitialPrice(), constants.DefaultPlaces)})
	table.AppendCompat([]string{"Max price factor", fixedpoint.Format(p.MaxPriceFactor())})
	table.AppendCompat([]string{"Steepness", fixedpoint.Format(p.Steepness())})
	table.AppendCompat([]string{"Midpoint", fixedpoint.Format(p.Midpoint())})
	table.AppendCompat([]string{"Total supply", ux.FormatAmount(p.TotalSupply(), 0)})
	table.AppendCompat([]string{"Max price", ux.FormatAmount(p.MaxPrice(), constants.DefaultPlaces)})
	table.AppendCompat([]string{"Price range", ux.FormatAmount(p.PriceRange(), constants.DefaultPlaces)})
	_ = table.Render()
}

func newInfoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info [pool-id]",
		Short: "Show stored curve parameters",
		Long: `Shows the stored parameters of a pool, or lists every initialized pool
when no pool id is given. Reads only the local store.

Examples:
  curve info
  curve info 0x01
  curve info 0x01 --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if output != outputTable && output != outputYAML {
				return fmt.Errorf("unsupported output %q: use %s or %s", output, outputTable, outputYAML)
			}
			db, err := app.OpenStore()
			if err != nil {
				return err
			}

			var views []paramsView
			if len(args) == 1 {
				poolID, err := flags.ParsePoolID(args[0])
				if err != nil {
					return err
				}
				p, err := db.GetParams(poolID)
				if err != nil {
					return fmt.Errorf("pool %s: %w", poolID.Hex(), err)
				}
				if output == outputTable {
					ux.Logger.PrintToUser("Pool %s", poolID.Hex())
					printParams(p)
					return nil
				}
				views = append(views, newParamsView(poolID, p))
			} else {
				ids, err := db.Pools()
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					ux.Logger.PrintToUser("No curves initialized")
					return nil
				}
				for _, id := range ids {
					p, err := db.GetParams(id)
					if err != nil {
						return fmt.Errorf("pool %s: %w", id.Hex(), err)
					}
					views = append(views, newParamsView(id, p))
				}
			}

			if output == outputYAML {
				out, err := yaml.Marshal(views)
				if err != nil {
					return err
				}
				ux.Logger.PrintToUser("%s", out)
				return nil
			}
			table := ux.DefaultTable(ux.Logger, "Pool", "Initial price", "Max price", "Midpoint", "Total supply")
			for _, v := range views {
				table.AppendCompat([]string{v.Pool, v.InitialPrice, v.MaxPrice, v.Midpoint, v.TotalSupply})
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or yaml")
	return cmd
}
