// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	InitCmd     = "init"
	InfoCmd     = "info"
	PriceCmd    = "price"
	ScheduleCmd = "schedule"
	QuoteCmd    = "quote"
	SimulateCmd = "simulate"

	OwnerCmd             = "owner"
	TransferOwnershipCmd = "transfer-ownership"
	SetManagerCmd        = "set-manager"

	ConfigCmd = "config"
)
