// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Snapshot - a consistent read only view of the committed database,
// a reader holding one never blocks the writer
type Snapshot struct {
	snap *leveldb.Snapshot
}

// NewSnapshot - capture the latest committed state
func NewSnapshot() (*Snapshot, error) {
	db := currentDB()
	if nil == db {
		return nil, fault.DatabaseIsNotSet
	}
	snap, err := db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &Snapshot{snap: snap}, nil
}

// Release - must be called when the view is no longer needed
func (s *Snapshot) Release() {
	s.snap.Release()
}

// Get - read a value, nil if not found
func (s *Snapshot) Get(pool *PoolHandle, key []byte) []byte {
	value, err := s.snap.Get(pool.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("snapshot.Get", err)
	return value
}

// Has - check if a key exists
func (s *Snapshot) Has(pool *PoolHandle, key []byte) bool {
	found, err := s.snap.Has(pool.prefixKey(key), nil)
	logger.PanicIfError("snapshot.Has", err)
	return found
}

// GetN - leading big endian uint64 of a record
func (s *Snapshot) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return splitN(key, s.Get(pool, key))
}

// GetNB - leading big endian uint64 and the rest of a record
func (s *Snapshot) GetNB(pool *PoolHandle, key []byte) (uint64, []byte) {
	return splitNB(key, s.Get(pool, key))
}

// NewFetchCursor - cursor over a whole pool
func (s *Snapshot) NewFetchCursor(pool *PoolHandle) *FetchCursor {
	return newFetchCursor(pool, s.snap)
}

// committed - Getter over the latest committed state without
// holding a snapshot
type committed struct{}

// Committed - reads that always see the latest commit
var Committed Getter = committed{}

func (committed) Get(pool *PoolHandle, key []byte) []byte { return pool.Get(key) }
func (committed) Has(pool *PoolHandle, key []byte) bool   { return pool.Has(key) }
func (committed) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}
func (committed) GetNB(pool *PoolHandle, key []byte) (uint64, []byte) {
	return pool.GetNB(key)
}
