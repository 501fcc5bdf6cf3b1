// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "github.com/luxfi/curve/pkg/ledger"

func ledgerNetworkNames() []string {
	return ledger.NetworkNames()
}
