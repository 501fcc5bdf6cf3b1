// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"errors"

	"github.com/luxfi/curve/pkg/sigmoid"
)

var (
	ErrInvalidParameters      = sigmoid.ErrInvalidParameters
	ErrInvalidCurveIdentifier = errors.New("invalid curve identifier")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInsufficientLiquidity  = errors.New("insufficient liquidity")
	ErrCurveTransitioned      = errors.New("curve has transitioned")
	ErrCurveExists            = errors.New("curve already initialized")
	ErrUnauthorized           = errors.New("caller is not the owner")
	ErrZeroAddress            = errors.New("zero address")

	// ErrNotFound is returned by a Store that holds no value for a key.
	ErrNotFound = errors.New("not found")
)
