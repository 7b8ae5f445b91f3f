// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - one prefix range of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Getter - point reads, satisfied by the pools themselves, snapshots
// and the write transaction
type Getter interface {
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	GetN(*PoolHandle, []byte) (uint64, bool)
	GetNB(*PoolHandle, []byte) (uint64, []byte)
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

func (p *PoolHandle) fullRange() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

func currentDB() *leveldb.DB {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.database
}

// Get - read a committed value for a given key
func (p *PoolHandle) Get(key []byte) []byte {
	db := currentDB()
	if nil == db {
		return nil
	}
	value, err := db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	db := currentDB()
	if nil == db {
		return false
	}
	value, err := db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return splitN(key, p.Get(key))
}

// GetNB - read a record and decode first 8 bytes as big endian uint64
// and return the rest of the record as byte slice
//
// second parameter is nil if record was not found
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte) {
	return splitNB(key, p.Get(key))
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	db := currentDB()
	if nil == db {
		return Element{}, false
	}

	maxRange := p.fullRange()
	iter := db.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {
		result = copyElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}

// NewFetchCursor - initialise a cursor over the committed pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	db := currentDB()
	if nil == db {
		return newFetchCursor(p, nil)
	}
	return newFetchCursor(p, db)
}

func splitN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func splitNB(key []byte, buffer []byte) (uint64, []byte) {
	if nil == buffer {
		return 0, nil
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetNB truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), buffer[8:]
}

// the iterator contents are only valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}

// JoinKey - build a composite key of the form a ++ 0x00 ++ b, the
// text parts never contain a NUL
func JoinKey(a []byte, b []byte) []byte {
	key := make([]byte, 0, len(a)+1+len(b))
	key = append(key, a...)
	key = append(key, 0x00)
	return append(key, b...)
}

// SplitKey - undo JoinKey
func SplitKey(key []byte) ([]byte, []byte, bool) {
	for i, c := range key {
		if 0x00 == c {
			return key[:i], key[i+1:], true
		}
	}
	return nil, nil, false
}

// EncodeN - big endian uint64
func EncodeN(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// DecodeN - big endian uint64, zero if the buffer is not 8 bytes
func DecodeN(buffer []byte) uint64 {
	if 8 != len(buffer) {
		return 0
	}
	return binary.BigEndian.Uint64(buffer)
}
