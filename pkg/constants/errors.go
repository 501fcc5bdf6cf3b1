// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoEndpoint = errors.New("\n\nNo RPC endpoint configured. To resolve this:\n- Pass --network or --rpc.\n- Or set pools-file to quote against a static pool fixture.\n") //nolint:stylecheck
	ErrNoManager  = errors.New("no pool state manager configured: set --manager or manager in the config file")
	ErrNoCaller   = errors.New("no acting address: set --from or from in the config file")
)
