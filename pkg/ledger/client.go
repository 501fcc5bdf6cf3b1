// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger supplies token supply, balances and pool state to the curve
// strategy, either from an EVM node or from a static YAML fixture.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/ethclient"
)

const (
	ERC20ABI = `[
		{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"type":"function"},
		{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"}
	]`

	PoolStateManagerABI = `[
		{"inputs":[{"internalType":"bytes32","name":"poolId","type":"bytes32"}],"name":"getPoolInfo","outputs":[{"internalType":"address","name":"token","type":"address"},{"internalType":"address","name":"creator","type":"address"},{"internalType":"uint256","name":"wethCollected","type":"uint256"},{"internalType":"uint256","name":"lastPrice","type":"uint256"},{"internalType":"bool","name":"isTransitioned","type":"bool"},{"internalType":"bytes32","name":"bondingCurveStrategy","type":"bytes32"}],"stateMutability":"view","type":"function"}
	]`
)

var (
	_ curve.TokenLedger  = (*Client)(nil)
	_ curve.PoolRegistry = (*Client)(nil)
)

// Client reads ERC20 state and pool info from an EVM node.
type Client struct {
	network  Network
	client   *ethclient.Client
	erc20ABI abi.ABI
	manager  *bind.BoundContract
}

// Dial connects to network.RPC, verifies the chain id and binds the pool
// state manager at manager.
func Dial(ctx context.Context, network Network, manager common.Address) (*Client, error) {
	client, err := ethclient.DialContext(ctx, network.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.RPC, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && chainID.Int64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", network.ChainID, chainID.Int64())
	}

	erc20ABI, err := abi.JSON(strings.NewReader(ERC20ABI))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to parse ERC20 ABI: %w", err)
	}
	managerABI, err := abi.JSON(strings.NewReader(PoolStateManagerABI))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to parse pool state manager ABI: %w", err)
	}

	return &Client{
		network:  network,
		client:   client,
		erc20ABI: erc20ABI,
		manager:  bind.NewBoundContract(manager, managerABI, client, client, client),
	}, nil
}

func (c *Client) Network() Network { return c.network }

func (c *Client) Close() { c.client.Close() }

func (c *Client) TotalSupply(ctx context.Context, token common.Address) (*uint256.Int, error) {
	contract := bind.NewBoundContract(token, c.erc20ABI, c.client, c.client, c.client)
	var result []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &result, "totalSupply"); err != nil {
		return nil, fmt.Errorf("totalSupply: %w", err)
	}
	return uintFromResult("totalSupply", result)
}

func (c *Client) BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error) {
	contract := bind.NewBoundContract(token, c.erc20ABI, c.client, c.client, c.client)
	var result []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &result, "balanceOf", account); err != nil {
		return nil, fmt.Errorf("balanceOf: %w", err)
	}
	return uintFromResult("balanceOf", result)
}

func (c *Client) PoolInfo(ctx context.Context, poolID common.Hash) (curve.PoolInfo, error) {
	var result []interface{}
	if err := c.manager.Call(&bind.CallOpts{Context: ctx}, &result, "getPoolInfo", poolID); err != nil {
		return curve.PoolInfo{}, fmt.Errorf("getPoolInfo: %w", err)
	}
	return poolInfoFromResult(result)
}

// uintFromResult reads the single uint256 output of method.
func uintFromResult(method string, result []interface{}) (*uint256.Int, error) {
	if len(result) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	b, ok := result[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: output is %T, want uint256", method, result[0])
	}
	v, err := toUint256(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return v, nil
}

// poolInfoFromResult converts the unpacked getPoolInfo outputs.
func poolInfoFromResult(result []interface{}) (curve.PoolInfo, error) {
	if len(result) < 6 {
		return curve.PoolInfo{}, fmt.Errorf("getPoolInfo: expected 6 outputs, got %d", len(result))
	}
	token, ok := result[0].(common.Address)
	if !ok {
		return curve.PoolInfo{}, outputTypeError("token", result[0])
	}
	creator, ok := result[1].(common.Address)
	if !ok {
		return curve.PoolInfo{}, outputTypeError("creator", result[1])
	}
	rawCollected, ok := result[2].(*big.Int)
	if !ok {
		return curve.PoolInfo{}, outputTypeError("wethCollected", result[2])
	}
	rawPrice, ok := result[3].(*big.Int)
	if !ok {
		return curve.PoolInfo{}, outputTypeError("lastPrice", result[3])
	}
	transitioned, ok := result[4].(bool)
	if !ok {
		return curve.PoolInfo{}, outputTypeError("isTransitioned", result[4])
	}
	strategy, ok := result[5].([32]byte)
	if !ok {
		return curve.PoolInfo{}, outputTypeError("bondingCurveStrategy", result[5])
	}

	collected, err := toUint256(rawCollected)
	if err != nil {
		return curve.PoolInfo{}, fmt.Errorf("getPoolInfo: wethCollected: %w", err)
	}
	lastPrice, err := toUint256(rawPrice)
	if err != nil {
		return curve.PoolInfo{}, fmt.Errorf("getPoolInfo: lastPrice: %w", err)
	}
	return curve.PoolInfo{
		Token:         token,
		Creator:       creator,
		Collected:     collected,
		LastPrice:     lastPrice,
		Transitioned:  transitioned,
		CurveStrategy: common.Hash(strategy),
	}, nil
}

func outputTypeError(name string, v interface{}) error {
	return fmt.Errorf("getPoolInfo: output %s has type %T", name, v)
}

func toUint256(b *big.Int) (*uint256.Int, error) {
	if b == nil {
		return new(uint256.Int), nil
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s", b)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("value %s exceeds 256 bits", b)
	}
	return v, nil
}
