// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

const (
	Owner    = "0x0000000000000000000000000000000000000101"
	Stranger = "0x0000000000000000000000000000000000000909"
	Manager  = "0x0000000000000000000000000000000000000202"
	Token    = "0x0000000000000000000000000000000000000303"
	Retired  = "0x0000000000000000000000000000000000000404"

	// half of the supply is circulating, so the reference curve sits at
	// its midpoint
	ActivePool = "0x1111"
	// transitioned off the curve at 7.25
	RetiredPool = "0x2222"
	UnknownPool = "0x3333"
)

const PoolsFixture = `
tokens:
  - address: "` + Token + `"
    totalSupply: "1000000"
    balances:
      "` + Manager + `": "500000"
  - address: "` + Retired + `"
    totalSupply: "1000000"
pools:
  - id: "` + ActivePool + `"
    token: "` + Token + `"
    creator: "` + Owner + `"
    collected: "100"
  - id: "` + RetiredPool + `"
    token: "` + Retired + `"
    creator: "` + Owner + `"
    collected: "250000"
    lastPrice: "7.25"
    transitioned: true
`
