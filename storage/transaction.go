// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - the single write batch across all pools, reads see
// the pending writes
type Transaction interface {
	Getter
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	PutNB(*PoolHandle, []byte, uint64, []byte)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}

	t.inUse = true
	return nil
}

func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	k := pool.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	t.Put(pool, key, EncodeN(value))
}

func (t *transaction) PutNB(pool *PoolHandle, key []byte, n uint64, value []byte) {
	data := make([]byte, 8+len(value))
	copy(data, EncodeN(n))
	copy(data[8:], value)
	t.Put(pool, key, data)
}

func (t *transaction) Delete(pool *PoolHandle, key []byte) {
	k := pool.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(pool *PoolHandle, key []byte) []byte {
	k := pool.prefixKey(key)
	value, op, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	value, err := t.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) Has(pool *PoolHandle, key []byte) bool {
	k := pool.prefixKey(key)
	_, op, found := t.cache.Get(string(k))
	if found {
		return dbPut == op
	}
	found, err := t.db.Has(k, nil)
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return splitN(key, t.Get(pool, key))
}

func (t *transaction) GetNB(pool *PoolHandle, key []byte) (uint64, []byte) {
	return splitNB(key, t.Get(pool, key))
}

// Commit - write the whole batch atomically and release the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard every pending write
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
