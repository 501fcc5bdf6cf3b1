// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/geth/common"
	"gopkg.in/yaml.v3"
)

var (
	_ curve.TokenLedger  = (*Static)(nil)
	_ curve.PoolRegistry = (*Static)(nil)
)

// Fixture is the YAML layout read by ParseFixture. Supplies, balances and
// collected reserves are integer counts of base units. lastPrice is a decimal
// price.
type Fixture struct {
	Tokens []TokenFixture `yaml:"tokens"`
	Pools  []PoolFixture  `yaml:"pools"`
}

type TokenFixture struct {
	Address     string            `yaml:"address"`
	TotalSupply string            `yaml:"totalSupply"`
	Balances    map[string]string `yaml:"balances"`
}

type PoolFixture struct {
	ID           string `yaml:"id"`
	Token        string `yaml:"token"`
	Creator      string `yaml:"creator"`
	Collected    string `yaml:"collected"`
	LastPrice    string `yaml:"lastPrice"`
	Transitioned bool   `yaml:"transitioned"`
}

type token struct {
	supply   *uint256.Int
	balances map[common.Address]*uint256.Int
}

// Static is an in-memory ledger and registry. It is safe for concurrent use.
type Static struct {
	mu     sync.RWMutex
	tokens map[common.Address]*token
	pools  map[common.Hash]curve.PoolInfo
}

func NewStatic() *Static {
	return &Static{
		tokens: map[common.Address]*token{},
		pools:  map[common.Hash]curve.PoolInfo{},
	}
}

// LoadStatic reads a YAML fixture from path.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pools file: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Static, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	s := NewStatic()
	for i, t := range f.Tokens {
		if !common.IsHexAddress(t.Address) {
			return nil, fmt.Errorf("tokens[%d]: invalid address %q", i, t.Address)
		}
		addr := common.HexToAddress(t.Address)
		supply, err := parseUnits(t.TotalSupply)
		if err != nil {
			return nil, fmt.Errorf("tokens[%d].totalSupply: %w", i, err)
		}
		s.SetSupply(addr, supply)
		for holder, raw := range t.Balances {
			if !common.IsHexAddress(holder) {
				return nil, fmt.Errorf("tokens[%d]: invalid holder %q", i, holder)
			}
			bal, err := parseUnits(raw)
			if err != nil {
				return nil, fmt.Errorf("tokens[%d].balances[%s]: %w", i, holder, err)
			}
			s.SetBalance(addr, common.HexToAddress(holder), bal)
		}
	}
	for i, p := range f.Pools {
		id := common.HexToHash(p.ID)
		if p.ID == "" || id == (common.Hash{}) {
			return nil, fmt.Errorf("pools[%d]: missing id", i)
		}
		collected, err := parseUnits(p.Collected)
		if err != nil {
			return nil, fmt.Errorf("pools[%d].collected: %w", i, err)
		}
		lastPrice, err := parsePrice(p.LastPrice)
		if err != nil {
			return nil, fmt.Errorf("pools[%d].lastPrice: %w", i, err)
		}
		s.SetPool(id, curve.PoolInfo{
			Token:        common.HexToAddress(p.Token),
			Creator:      common.HexToAddress(p.Creator),
			Collected:    collected,
			LastPrice:    lastPrice,
			Transitioned: p.Transitioned,
		})
	}
	return s, nil
}

func parseUnits(s string) (*uint256.Int, error) {
	if s == "" {
		return fixedpoint.Zero(), nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid unit count %q: %w", s, err)
	}
	return v, nil
}

func parsePrice(s string) (*uint256.Int, error) {
	if s == "" {
		return fixedpoint.Zero(), nil
	}
	return fixedpoint.Parse(s)
}

func (s *Static) TotalSupply(_ context.Context, addr common.Address) (*uint256.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[addr]
	if !ok {
		return nil, fmt.Errorf("token %s: %w", addr.Hex(), curve.ErrNotFound)
	}
	return t.supply.Clone(), nil
}

func (s *Static) BalanceOf(_ context.Context, addr, account common.Address) (*uint256.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[addr]
	if !ok {
		return nil, fmt.Errorf("token %s: %w", addr.Hex(), curve.ErrNotFound)
	}
	if b, ok := t.balances[account]; ok {
		return b.Clone(), nil
	}
	return fixedpoint.Zero(), nil
}

func (s *Static) PoolInfo(_ context.Context, poolID common.Hash) (curve.PoolInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.pools[poolID]
	if !ok {
		return curve.PoolInfo{}, fmt.Errorf("pool %s: %w", poolID.Hex(), curve.ErrNotFound)
	}
	return clonePool(info), nil
}

// Pools lists every registered pool id.
func (s *Static) Pools() []common.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]common.Hash, 0, len(s.pools))
	for id := range s.pools {
		ids = append(ids, id)
	}
	return ids
}

func (s *Static) SetSupply(addr common.Address, supply *uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token(addr).supply = supply.Clone()
}

func (s *Static) SetBalance(addr, account common.Address, balance *uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token(addr).balances[account] = balance.Clone()
}

func (s *Static) SetPool(poolID common.Hash, info curve.PoolInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[poolID] = clonePool(info)
}

// ApplyBuy books a settled purchase: tokens leave the holder's reserve and
// the monetary amount joins the pool's collected balance.
func (s *Static) ApplyBuy(poolID common.Hash, holder common.Address, monetaryIn, tokensOut *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.pools[poolID]
	if !ok {
		return fmt.Errorf("pool %s: %w", poolID.Hex(), curve.ErrNotFound)
	}
	t := s.token(info.Token)
	t.balances[holder] = fixedpoint.SatSub(balance(t, holder), tokensOut)
	info.Collected = fixedpoint.SatAdd(orZero(info.Collected), monetaryIn)
	s.pools[poolID] = info
	return nil
}

// ApplySell is the inverse of ApplyBuy.
func (s *Static) ApplySell(poolID common.Hash, holder common.Address, tokensIn, monetaryOut *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.pools[poolID]
	if !ok {
		return fmt.Errorf("pool %s: %w", poolID.Hex(), curve.ErrNotFound)
	}
	t := s.token(info.Token)
	t.balances[holder] = fixedpoint.SatAdd(balance(t, holder), tokensIn)
	info.Collected = fixedpoint.SatSub(orZero(info.Collected), monetaryOut)
	s.pools[poolID] = info
	return nil
}

func (s *Static) token(addr common.Address) *token {
	t, ok := s.tokens[addr]
	if !ok {
		t = &token{supply: fixedpoint.Zero(), balances: map[common.Address]*uint256.Int{}}
		s.tokens[addr] = t
	}
	return t
}

func balance(t *token, holder common.Address) *uint256.Int {
	if b, ok := t.balances[holder]; ok {
		return b
	}
	return fixedpoint.Zero()
}

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return fixedpoint.Zero()
	}
	return v
}

func clonePool(info curve.PoolInfo) curve.PoolInfo {
	info.Collected = orZero(info.Collected).Clone()
	info.LastPrice = orZero(info.LastPrice).Clone()
	return info
}
