// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/sigmoid"
)

// The Quote* functions are the pure pricing rules behind Strategy. They take
// the circulating supply directly and perform no validation.

// QuoteBuy returns the tokens received for monetaryIn. The first purchase
// from an empty pool is priced flat at the initial price.
func QuoteBuy(supply, monetaryIn *uint256.Int, p sigmoid.Params) Quote {
	if supply.IsZero() {
		return Quote{
			Amount: fixedpoint.Div(monetaryIn, p.InitialPrice()),
			Price:  p.InitialPrice(),
		}
	}
	tokens := sigmoid.Solve(supply, monetaryIn, p, sigmoid.Buy)
	return Quote{
		Amount: tokens,
		Price:  sigmoid.Price(fixedpoint.SatAdd(supply, tokens), p),
	}
}

// QuoteSell returns the monetary amount paid out for tokensIn.
func QuoteSell(supply, tokensIn *uint256.Int, p sigmoid.Params) Quote {
	return Quote{
		Amount: sigmoid.Cost(supply, tokensIn, p, sigmoid.Sell),
		Price:  sigmoid.Price(fixedpoint.SatSub(supply, tokensIn), p),
	}
}

// QuoteMonetaryForTokens returns the monetary amount needed to buy exactly
// tokensOut.
func QuoteMonetaryForTokens(supply, tokensOut *uint256.Int, p sigmoid.Params) Quote {
	return Quote{
		Amount: sigmoid.Cost(supply, tokensOut, p, sigmoid.Buy),
		Price:  sigmoid.Price(fixedpoint.SatAdd(supply, tokensOut), p),
	}
}

// QuoteTokensForMonetary returns the tokens bought by spending exactly
// monetaryIn. Unlike QuoteBuy it has no first-buyer rule.
func QuoteTokensForMonetary(supply, monetaryIn *uint256.Int, p sigmoid.Params) Quote {
	tokens := sigmoid.Solve(supply, monetaryIn, p, sigmoid.Buy)
	return Quote{
		Amount: tokens,
		Price:  sigmoid.Price(fixedpoint.SatAdd(supply, tokens), p),
	}
}

// QuotePrice is the spot price at supply.
func QuotePrice(supply *uint256.Int, p sigmoid.Params) *uint256.Int {
	return sigmoid.Price(supply, p)
}
