// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve hosts the sigmoid pricing core behind a pool-oriented
// strategy: it resolves parameters, circulating supply and pool state from
// its collaborators, prices trades and reports events.
package curve

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/events"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/geth/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StrategyType = "BondingCurve"
	StrategyName = "Sigmoid"

	OwnerKey   = "owner"
	ManagerKey = "pool-state-manager"
)

// Config wires a Strategy to its collaborators. Events and Log are optional.
type Config struct {
	Store    Store
	Ledger   TokenLedger
	Registry PoolRegistry
	Events   events.Sink
	Log      *zap.Logger
}

type Strategy struct {
	store    Store
	ledger   TokenLedger
	registry PoolRegistry
	events   events.Sink
	log      *zap.Logger

	mu      sync.RWMutex
	owner   common.Address
	manager common.Address
}

// New builds a Strategy. Admin addresses already persisted in the store win;
// otherwise owner and manager are recorded as the initial values.
func New(cfg Config, owner, manager common.Address) (*Strategy, error) {
	if cfg.Store == nil || cfg.Ledger == nil || cfg.Registry == nil {
		return nil, errors.New("curve: store, ledger and registry are required")
	}
	s := &Strategy{
		store:    cfg.Store,
		ledger:   cfg.Ledger,
		registry: cfg.Registry,
		events:   cfg.Events,
		log:      cfg.Log,
	}
	if s.events == nil {
		s.events = events.Discard
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	var err error
	if s.owner, err = s.loadAddress(OwnerKey, owner); err != nil {
		return nil, err
	}
	if s.owner == (common.Address{}) {
		return nil, fmt.Errorf("curve: owner: %w", ErrZeroAddress)
	}
	if s.manager, err = s.loadAddress(ManagerKey, manager); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Strategy) loadAddress(name string, fallback common.Address) (common.Address, error) {
	addr, err := s.store.GetAddress(name)
	switch {
	case err == nil:
		return addr, nil
	case errors.Is(err, ErrNotFound):
		if fallback == (common.Address{}) {
			return fallback, nil
		}
		if err := s.store.PutAddress(name, fallback); err != nil {
			return common.Address{}, fmt.Errorf("curve: storing %s: %w", name, err)
		}
		return fallback, nil
	default:
		return common.Address{}, fmt.Errorf("curve: loading %s: %w", name, err)
	}
}

func (*Strategy) StrategyType() string { return StrategyType }

func (*Strategy) Name() string { return StrategyName }

func (s *Strategy) Owner() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}

func (s *Strategy) PoolStateManager() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manager
}

// TransferOwnership hands the strategy to next. Only the current owner may
// call it and next must be non-zero.
func (s *Strategy) TransferOwnership(caller, next common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if caller != s.owner {
		return ErrUnauthorized
	}
	if next == (common.Address{}) {
		return fmt.Errorf("new owner: %w", ErrZeroAddress)
	}
	if err := s.store.PutAddress(OwnerKey, next); err != nil {
		return fmt.Errorf("storing owner: %w", err)
	}
	previous := s.owner
	s.owner = next
	s.events.Emit(events.OwnershipTransferred(previous, next))
	s.log.Info("ownership transferred",
		zap.Stringer("previous", previous),
		zap.Stringer("owner", next),
	)
	return nil
}

// SetPoolStateManager replaces the account whose token holdings are treated
// as reserve. Owner only.
func (s *Strategy) SetPoolStateManager(caller, manager common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if caller != s.owner {
		return ErrUnauthorized
	}
	if err := s.store.PutAddress(ManagerKey, manager); err != nil {
		return fmt.Errorf("storing pool state manager: %w", err)
	}
	s.manager = manager
	s.log.Info("pool state manager updated", zap.Stringer("manager", manager))
	return nil
}

// Initialize registers the curve of poolID from a packed parameter block.
// Parameters are write-once: a pool that already has them is refused.
func (s *Strategy) Initialize(caller common.Address, poolID common.Hash, raw []byte) (sigmoid.Params, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if caller != s.owner {
		return sigmoid.Params{}, ErrUnauthorized
	}
	params, err := sigmoid.DecodeParams(raw)
	if err != nil {
		return sigmoid.Params{}, err
	}
	exists, err := s.store.HasParams(poolID)
	if err != nil {
		return sigmoid.Params{}, fmt.Errorf("pool %s: %w", poolID.Hex(), err)
	}
	if exists {
		return sigmoid.Params{}, fmt.Errorf("pool %s: %w", poolID.Hex(), ErrCurveExists)
	}
	if err := s.store.PutParams(poolID, params); err != nil {
		return sigmoid.Params{}, fmt.Errorf("pool %s: storing params: %w", poolID.Hex(), err)
	}
	s.events.Emit(events.CurveInitialized(poolID, params.Encode()))
	s.log.Info("curve initialized",
		zap.String("pool", poolID.Hex()),
		zap.Stringer("params", params),
	)
	return params, nil
}

// Params returns the stored parameters of poolID.
func (s *Strategy) Params(poolID common.Hash) (sigmoid.Params, error) {
	p, err := s.store.GetParams(poolID)
	if errors.Is(err, ErrNotFound) {
		return sigmoid.Params{}, fmt.Errorf("pool %s: %w", poolID.Hex(), ErrInvalidCurveIdentifier)
	}
	if err != nil {
		return sigmoid.Params{}, fmt.Errorf("pool %s: %w", poolID.Hex(), err)
	}
	return p, nil
}

// CalculateBuy quotes the tokens received for monetaryIn and reports a
// TokensPurchased event.
func (s *Strategy) CalculateBuy(ctx context.Context, poolID common.Hash, monetaryIn *uint256.Int) (Quote, error) {
	st, err := s.prepare(ctx, poolID, monetaryIn)
	if err != nil {
		return Quote{}, err
	}
	q := QuoteBuy(st.supply, monetaryIn, st.params)
	s.events.Emit(events.TokensPurchased(poolID, monetaryIn, q.Amount, q.Price))
	s.log.Debug("buy quoted",
		zap.String("pool", poolID.Hex()),
		zap.String("in", fixedpoint.Format(monetaryIn)),
		zap.String("tokens", fixedpoint.Format(q.Amount)),
		zap.String("price", fixedpoint.Format(q.Price)),
	)
	return q, nil
}

// CalculateSell quotes the monetary payout for tokensIn and reports a
// TokensSold event. The payout must be covered by the pool's collected
// reserve.
func (s *Strategy) CalculateSell(ctx context.Context, poolID common.Hash, tokensIn *uint256.Int) (Quote, error) {
	st, err := s.prepare(ctx, poolID, tokensIn)
	if err != nil {
		return Quote{}, err
	}
	if tokensIn.Gt(st.supply) {
		return Quote{}, fmt.Errorf("selling %s of %s circulating: %w",
			fixedpoint.Format(tokensIn), fixedpoint.Format(st.supply), ErrInvalidAmount)
	}
	q := QuoteSell(st.supply, tokensIn, st.params)
	collected := st.info.Collected
	if collected == nil {
		collected = fixedpoint.Zero()
	}
	if q.Amount.Gt(collected) {
		return Quote{}, fmt.Errorf("payout %s exceeds reserve %s: %w",
			fixedpoint.Format(q.Amount), fixedpoint.Format(collected), ErrInsufficientLiquidity)
	}
	s.events.Emit(events.TokensSold(poolID, tokensIn, q.Amount, q.Price))
	s.log.Debug("sell quoted",
		zap.String("pool", poolID.Hex()),
		zap.String("tokens", fixedpoint.Format(tokensIn)),
		zap.String("out", fixedpoint.Format(q.Amount)),
		zap.String("price", fixedpoint.Format(q.Price)),
	)
	return q, nil
}

// MonetaryForExactTokens quotes the cost of buying exactly tokensOut.
func (s *Strategy) MonetaryForExactTokens(ctx context.Context, poolID common.Hash, tokensOut *uint256.Int) (Quote, error) {
	st, err := s.prepare(ctx, poolID, tokensOut)
	if err != nil {
		return Quote{}, err
	}
	return QuoteMonetaryForTokens(st.supply, tokensOut, st.params), nil
}

// TokensForExactMonetary quotes the tokens bought by spending exactly
// monetaryIn.
func (s *Strategy) TokensForExactMonetary(ctx context.Context, poolID common.Hash, monetaryIn *uint256.Int) (Quote, error) {
	st, err := s.prepare(ctx, poolID, monetaryIn)
	if err != nil {
		return Quote{}, err
	}
	return QuoteTokensForMonetary(st.supply, monetaryIn, st.params), nil
}

// CurrentPrice returns the spot price of poolID. A transitioned pool reports
// the last price recorded by the registry.
func (s *Strategy) CurrentPrice(ctx context.Context, poolID common.Hash) (*uint256.Int, error) {
	info, err := s.registry.PoolInfo(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("pool %s: %w", poolID.Hex(), err)
	}
	if info.Transitioned {
		if info.LastPrice == nil {
			return fixedpoint.Zero(), nil
		}
		return info.LastPrice.Clone(), nil
	}
	params, err := s.Params(poolID)
	if err != nil {
		return nil, err
	}
	supply, err := s.Circulating(ctx, info.Token)
	if err != nil {
		return nil, err
	}
	return QuotePrice(supply, params), nil
}

// Circulating is the token's total supply less the pool state manager's
// holdings.
func (s *Strategy) Circulating(ctx context.Context, token common.Address) (*uint256.Int, error) {
	manager := s.PoolStateManager()

	var total, held *uint256.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.ledger.TotalSupply(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		held, err = s.ledger.BalanceOf(gctx, token, manager)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("token %s supply: %w", token.Hex(), err)
	}
	return fixedpoint.SatSub(total, held), nil
}

type poolState struct {
	info   PoolInfo
	params sigmoid.Params
	supply *uint256.Int
}

// prepare runs the checks shared by every trade quote, in order: pool lookup,
// transition state, amount, parameters, then circulating supply.
func (s *Strategy) prepare(ctx context.Context, poolID common.Hash, amount *uint256.Int) (poolState, error) {
	info, err := s.registry.PoolInfo(ctx, poolID)
	if err != nil {
		return poolState{}, fmt.Errorf("pool %s: %w", poolID.Hex(), err)
	}
	if info.Transitioned {
		return poolState{}, fmt.Errorf("pool %s: %w", poolID.Hex(), ErrCurveTransitioned)
	}
	if amount == nil || amount.IsZero() {
		return poolState{}, fmt.Errorf("zero amount: %w", ErrInvalidAmount)
	}
	params, err := s.Params(poolID)
	if err != nil {
		return poolState{}, err
	}
	supply, err := s.Circulating(ctx, info.Token)
	if err != nil {
		return poolState{}, err
	}
	return poolState{info: info, params: params, supply: supply}, nil
}
