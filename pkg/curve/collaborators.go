// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/geth/common"
)

// Store is the host-owned arena of curve parameters keyed by pool id, plus
// the strategy's admin addresses.
type Store interface {
	GetParams(poolID common.Hash) (sigmoid.Params, error)
	PutParams(poolID common.Hash, p sigmoid.Params) error
	HasParams(poolID common.Hash) (bool, error)

	GetAddress(name string) (common.Address, error)
	PutAddress(name string, addr common.Address) error
}

// TokenLedger answers ERC20-style supply and balance queries.
type TokenLedger interface {
	TotalSupply(ctx context.Context, token common.Address) (*uint256.Int, error)
	BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error)
}

// PoolRegistry resolves pool metadata kept by the pool state manager.
type PoolRegistry interface {
	PoolInfo(ctx context.Context, poolID common.Hash) (PoolInfo, error)
}

// PoolInfo is the registry's view of one pool.
type PoolInfo struct {
	Token         common.Address
	Creator       common.Address
	Collected     *uint256.Int
	LastPrice     *uint256.Int
	Transitioned  bool
	CurveStrategy common.Hash
}

// Quote is the result of a pricing operation: the computed amount and the
// unit price after the trade.
type Quote struct {
	Amount *uint256.Int
	Price  *uint256.Int
}
