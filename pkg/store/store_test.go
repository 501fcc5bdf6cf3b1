// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"testing"

	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/fixedpoint"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func testParams(t *testing.T) sigmoid.Params {
	p, err := sigmoid.NewParams(
		fixedpoint.FromWhole(1),
		fixedpoint.FromWhole(10),
		fixedpoint.FromWhole(10),
		fixedpoint.MustParse("0.5"),
		fixedpoint.FromWhole(1_000_000),
	)
	require.NoError(t, err)
	return p
}

func TestParamsRoundTrip(t *testing.T) {
	require := require.New(t)

	s := New(memdb.New())
	pool := common.HexToHash("0x01")

	_, err := s.GetParams(pool)
	require.ErrorIs(err, curve.ErrNotFound)
	has, err := s.HasParams(pool)
	require.NoError(err)
	require.False(has)

	p := testParams(t)
	require.NoError(s.PutParams(pool, p))

	has, err = s.HasParams(pool)
	require.NoError(err)
	require.True(has)

	got, err := s.GetParams(pool)
	require.NoError(err)
	require.Equal(p.Encode(), got.Encode())
}

func TestAddresses(t *testing.T) {
	require := require.New(t)

	s := New(memdb.New())
	_, err := s.GetAddress(curve.OwnerKey)
	require.ErrorIs(err, curve.ErrNotFound)

	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	require.NoError(s.PutAddress(curve.OwnerKey, owner))
	got, err := s.GetAddress(curve.OwnerKey)
	require.NoError(err)
	require.Equal(owner, got)

	_, err = s.GetAddress(curve.ManagerKey)
	require.ErrorIs(err, curve.ErrNotFound)
}

func TestPools(t *testing.T) {
	require := require.New(t)

	s := New(memdb.New())
	require.NoError(s.PutAddress(curve.OwnerKey, common.HexToAddress("0x01")))

	ids, err := s.Pools()
	require.NoError(err)
	require.Empty(ids)

	a, b := common.HexToHash("0x0a"), common.HexToHash("0x0b")
	require.NoError(s.PutParams(a, testParams(t)))
	require.NoError(s.PutParams(b, testParams(t)))

	ids, err = s.Pools()
	require.NoError(err)
	require.ElementsMatch([]common.Hash{a, b}, ids)
}

func TestOpen(t *testing.T) {
	require := require.New(t)

	s, err := Open(MemoryType, "")
	require.NoError(err)
	require.NoError(s.Close())

	_, err = Open("leveldb", t.TempDir())
	require.ErrorContains(err, "unknown store type")

	s, err = Open(BadgerType, t.TempDir())
	require.NoError(err)
	pool := common.HexToHash("0x02")
	require.NoError(s.PutParams(pool, testParams(t)))
	has, err := s.HasParams(pool)
	require.NoError(err)
	require.True(has)
	require.NoError(s.Close())
}
