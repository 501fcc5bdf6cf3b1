// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

// InitPool registers the reference curve: initial price 1 over a supply of
// one million, with default factor, steepness and midpoint.
func InitPool(poolID string) (string, error) {
	return Run(InitCmd, poolID, "--initial-price", "1", "--total-supply", "1000000")
}

func Price(poolID string) (string, error) {
	return Run(PriceCmd, poolID)
}

func Quote(side, poolID, amount string, extra ...string) (string, error) {
	args := append([]string{QuoteCmd, side, poolID, "--amount", amount}, extra...)
	return Run(args...)
}
