// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package store persists curve parameters and strategy admin addresses in a
// key-value database.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/curve/pkg/curve"
	"github.com/luxfi/curve/pkg/sigmoid"
	"github.com/luxfi/database"
	"github.com/luxfi/database/badgerdb"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
)

const (
	BadgerType = "badgerdb"
	MemoryType = "memdb"
)

var (
	paramsPrefix = []byte("params/")
	adminPrefix  = []byte("admin/")
)

var _ curve.Store = (*DBStore)(nil)

// DBStore implements curve.Store on top of a luxfi database.
type DBStore struct {
	db database.Database
}

func New(db database.Database) *DBStore {
	return &DBStore{db: db}
}

// Open returns a store of the given backend type. path is ignored for the
// in-memory backend.
func Open(kind, path string) (*DBStore, error) {
	switch strings.ToLower(kind) {
	case "", BadgerType:
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		db, err := badgerdb.New(path, nil, "", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
		}
		return New(db), nil
	case MemoryType:
		return New(memdb.New()), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", kind)
	}
}

func paramsKey(poolID common.Hash) []byte {
	return append(append([]byte{}, paramsPrefix...), poolID.Bytes()...)
}

func adminKey(name string) []byte {
	return append(append([]byte{}, adminPrefix...), name...)
}

func (s *DBStore) GetParams(poolID common.Hash) (sigmoid.Params, error) {
	b, err := s.get(paramsKey(poolID))
	if err != nil {
		return sigmoid.Params{}, err
	}
	return sigmoid.DecodeParams(b)
}

func (s *DBStore) PutParams(poolID common.Hash, p sigmoid.Params) error {
	return s.db.Put(paramsKey(poolID), p.Encode())
}

func (s *DBStore) HasParams(poolID common.Hash) (bool, error) {
	return s.db.Has(paramsKey(poolID))
}

func (s *DBStore) GetAddress(name string) (common.Address, error) {
	b, err := s.get(adminKey(name))
	if err != nil {
		return common.Address{}, err
	}
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("admin/%s: malformed address of %d bytes", name, len(b))
	}
	return common.BytesToAddress(b), nil
}

func (s *DBStore) PutAddress(name string, addr common.Address) error {
	return s.db.Put(adminKey(name), addr.Bytes())
}

// Pools lists every pool id with stored parameters.
func (s *DBStore) Pools() ([]common.Hash, error) {
	it := s.db.NewIteratorWithPrefix(paramsPrefix)
	defer it.Release()

	var ids []common.Hash
	for it.Next() {
		key := it.Key()
		if len(key) != len(paramsPrefix)+common.HashLength {
			continue
		}
		ids = append(ids, common.BytesToHash(key[len(paramsPrefix):]))
	}
	return ids, it.Error()
}

func (s *DBStore) Close() error {
	return s.db.Close()
}

func (s *DBStore) get(key []byte) ([]byte, error) {
	b, err := s.db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return nil, curve.ErrNotFound
	}
	return b, err
}
