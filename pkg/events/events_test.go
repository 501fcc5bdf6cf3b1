// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTopics(t *testing.T) {
	tests := []struct {
		name  string
		topic common.Hash
		want  string
	}{
		{"CurveInitialized", CurveInitializedTopic, "0x9bf7f4ad1d0f9fa8aa5c456913d72b51410f35a7c4cdf73494b7a81b530d7e40"},
		{"TokensPurchased", TokensPurchasedTopic, "0xb5764e7b82dd8f301996d3718ce0a343f474c93793a6d383cb656f917869afcf"},
		{"TokensSold", TokensSoldTopic, "0x6dfbffa41255d2610f46d28a68f7bbf0d3d06aba0c732c9adb02a91f1ba5b735"},
		{"OwnershipTransferred", OwnershipTransferredTopic, "0x8be0079c531659141344cd1fd0a4f28419497f9722a3daafe3b4186f6b6457e0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.topic.Hex())
		})
	}
}

func TestEventsCarryTheirTopic(t *testing.T) {
	require := require.New(t)

	pool := common.HexToHash("0x01")
	one := uint256.NewInt(1)
	require.Equal(CurveInitializedTopic, CurveInitialized(pool, nil).Topics[0])
	require.Equal(TokensPurchasedTopic, TokensPurchased(pool, one, one, one).Topics[0])
	require.Equal(TokensSoldTopic, TokensSold(pool, one, one, one).Topics[0])
	require.Equal(OwnershipTransferredTopic, OwnershipTransferred(common.Address{}, common.Address{}).Topics[0])
}

func TestTokensPurchased(t *testing.T) {
	require := require.New(t)

	pool := common.HexToHash("0x01")
	e := TokensPurchased(pool, uint256.NewInt(10), uint256.NewInt(20), uint256.NewInt(30))

	require.Equal("TokensPurchased", e.Name)
	require.Equal([]common.Hash{TokensPurchasedTopic, pool}, e.Topics)
	require.Len(e.Data, 96)
	require.Equal([]*uint256.Int{uint256.NewInt(10), uint256.NewInt(20), uint256.NewInt(30)}, e.Words())
}

func TestOwnershipTransferredTopics(t *testing.T) {
	require := require.New(t)

	prev := common.HexToAddress("0x1111111111111111111111111111111111111111")
	next := common.HexToAddress("0x2222222222222222222222222222222222222222")
	e := OwnershipTransferred(prev, next)

	require.Len(e.Topics, 3)
	require.Equal(prev, common.BytesToAddress(e.Topics[1].Bytes()))
	require.Equal(next, common.BytesToAddress(e.Topics[2].Bytes()))
	require.Empty(e.Data)
}

func TestTopicsAreDistinct(t *testing.T) {
	seen := map[common.Hash]bool{}
	for _, topic := range []common.Hash{CurveInitializedTopic, TokensPurchasedTopic, TokensSoldTopic, OwnershipTransferredTopic} {
		require.False(t, seen[topic])
		seen[topic] = true
	}
}

func TestRecorderAndMulti(t *testing.T) {
	require := require.New(t)

	var a, b Recorder
	sink := Multi{&a, &b, Discard}
	_, ok := a.Last()
	require.False(ok)

	sink.Emit(TokensSold(common.Hash{}, uint256.NewInt(1), uint256.NewInt(2), uint256.NewInt(3)))
	require.Len(a.Events(), 1)
	require.Len(b.Events(), 1)

	last, ok := b.Last()
	require.True(ok)
	require.Equal("TokensSold", last.Name)
}

func TestLogSink(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zap.InfoLevel)
	sink := NewLogSink(zap.New(core))
	sink.Emit(TokensSold(common.Hash{}, uint256.NewInt(1), uint256.NewInt(2), uint256.NewInt(3)))

	entries := logs.All()
	require.Len(entries, 1)
	fields := entries[0].ContextMap()
	require.Equal("TokensSold", fields["name"])
	require.Equal([]interface{}{"1", "2", "3"}, fields["data"])
}
