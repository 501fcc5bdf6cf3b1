// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import "github.com/luxfi/curve/cmd"

const (
	InitCmd     = cmd.InitCmd
	InfoCmd     = cmd.InfoCmd
	PriceCmd    = cmd.PriceCmd
	ScheduleCmd = cmd.ScheduleCmd
	QuoteCmd    = cmd.QuoteCmd
	SimulateCmd = cmd.SimulateCmd
	OwnerCmd    = cmd.OwnerCmd
	ConfigCmd   = cmd.ConfigCmd

	TransferOwnershipCmd = cmd.TransferOwnershipCmd
)
