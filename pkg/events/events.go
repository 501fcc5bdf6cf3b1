// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package events describes curve events in EVM log shape and the sinks that
// receive them.
package events

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"
)

// Topic 0 of each event. The three curve events use fixed identifiers that
// deployed indexers already key on; OwnershipTransferred is the Keccak-256 of
// its standard signature.
const OwnershipTransferredSig = "OwnershipTransferred(address,address)"

var (
	CurveInitializedTopic     = common.HexToHash("0x9bf7f4ad1d0f9fa8aa5c456913d72b51410f35a7c4cdf73494b7a81b530d7e40")
	TokensPurchasedTopic      = common.HexToHash("0xb5764e7b82dd8f301996d3718ce0a343f474c93793a6d383cb656f917869afcf")
	TokensSoldTopic           = common.HexToHash("0x6dfbffa41255d2610f46d28a68f7bbf0d3d06aba0c732c9adb02a91f1ba5b735")
	OwnershipTransferredTopic = crypto.Keccak256Hash([]byte(OwnershipTransferredSig))
)

// Event is a log record: indexed topics plus ABI-packed data words.
type Event struct {
	Name   string
	Topics []common.Hash
	Data   []byte
}

// Words splits Data into 32-byte big-endian integers.
func (e Event) Words() []*uint256.Int {
	words := make([]*uint256.Int, 0, len(e.Data)/32)
	for i := 0; i+32 <= len(e.Data); i += 32 {
		words = append(words, new(uint256.Int).SetBytes32(e.Data[i:i+32]))
	}
	return words
}

func pack(words ...*uint256.Int) []byte {
	data := make([]byte, 0, 32*len(words))
	for _, w := range words {
		b := w.Bytes32()
		data = append(data, b[:]...)
	}
	return data
}

// CurveInitialized is emitted once per pool with its five packed parameters.
func CurveInitialized(poolID common.Hash, encodedParams []byte) Event {
	data := make([]byte, len(encodedParams))
	copy(data, encodedParams)
	return Event{
		Name:   "CurveInitialized",
		Topics: []common.Hash{CurveInitializedTopic, poolID},
		Data:   data,
	}
}

// TokensPurchased records monetary in, tokens out and the resulting price.
func TokensPurchased(poolID common.Hash, monetaryIn, tokensOut, price *uint256.Int) Event {
	return Event{
		Name:   "TokensPurchased",
		Topics: []common.Hash{TokensPurchasedTopic, poolID},
		Data:   pack(monetaryIn, tokensOut, price),
	}
}

// TokensSold records tokens in, monetary out and the resulting price.
func TokensSold(poolID common.Hash, tokensIn, monetaryOut, price *uint256.Int) Event {
	return Event{
		Name:   "TokensSold",
		Topics: []common.Hash{TokensSoldTopic, poolID},
		Data:   pack(tokensIn, monetaryOut, price),
	}
}

// OwnershipTransferred carries both addresses as left-padded topics and no data.
func OwnershipTransferred(previous, next common.Address) Event {
	return Event{
		Name: "OwnershipTransferred",
		Topics: []common.Hash{
			OwnershipTransferredTopic,
			common.BytesToHash(previous.Bytes()),
			common.BytesToHash(next.Bytes()),
		},
	}
}
