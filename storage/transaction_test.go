// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/storage"
)

func TestTransactionReadsPendingWrites(t *testing.T) {
	defer clearTestData(t)
	pool := storage.Pool.TestData

	populate(t, makeElements([]stringElement{{"old", "committed"}}))

	trx := mustBegin(t)
	trx.Put(pool, []byte("new"), []byte("pending"))
	trx.Delete(pool, []byte("old"))

	assert.Equal(t, []byte("pending"), trx.Get(pool, []byte("new")), "pending put visible in transaction")
	assert.True(t, trx.Has(pool, []byte("new")))
	assert.Nil(t, trx.Get(pool, []byte("old")), "pending delete visible in transaction")
	assert.False(t, trx.Has(pool, []byte("old")))

	assert.Nil(t, pool.Get([]byte("new")), "pending put not committed")
	assert.Equal(t, []byte("committed"), pool.Get([]byte("old")), "pending delete not committed")

	assert.Nil(t, trx.Commit())

	assert.Equal(t, []byte("pending"), pool.Get([]byte("new")))
	assert.False(t, pool.Has([]byte("old")))
}

func TestTransactionAbort(t *testing.T) {
	defer clearTestData(t)
	pool := storage.Pool.TestData

	trx := mustBegin(t)
	trx.Put(pool, []byte("discard"), []byte("me"))
	trx.Abort()

	assert.False(t, trx.InUse())
	assert.False(t, pool.Has([]byte("discard")))

	trx = mustBegin(t)
	assert.False(t, trx.Has(pool, []byte("discard")), "abort clears the overlay")
	trx.Abort()
}

func TestTransactionSingleWriter(t *testing.T) {
	trx := mustBegin(t)
	defer trx.Abort()

	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err)
}

func TestTransactionAcrossPools(t *testing.T) {
	defer clearTestData(t)

	trx := mustBegin(t)
	trx.PutN(storage.Pool.TestData, []byte("n"), 42)
	trx.PutNB(storage.Pool.TestData, []byte("nb"), 7, []byte("rest"))

	n, found := trx.GetN(storage.Pool.TestData, []byte("n"))
	assert.True(t, found)
	assert.Equal(t, uint64(42), n)
	assert.Nil(t, trx.Commit())

	n, found = storage.Pool.TestData.GetN([]byte("n"))
	assert.True(t, found)
	assert.Equal(t, uint64(42), n)

	n, rest := storage.Pool.TestData.GetNB([]byte("nb"))
	assert.Equal(t, uint64(7), n)
	assert.Equal(t, []byte("rest"), rest)

	_, found = storage.Pool.TestData.GetN([]byte("absent"))
	assert.False(t, found)
}

func TestCommitWithoutBegin(t *testing.T) {
	trx := mustBegin(t)
	assert.Nil(t, trx.Commit())
	assert.Equal(t, fault.TransactionNotInUse, trx.Commit())
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRecords(t *testing.T) {
	defer clearTestData(t)
	pool := storage.Pool.TestData

	trx := mustBegin(t)
	err := storage.PutRecord(trx, pool, []byte("rec"), sample{Name: "a", Count: 3})
	assert.Nil(t, err)
	trx.Put(pool, []byte("bad"), []byte("{not json"))
	assert.Nil(t, trx.Commit())

	var s sample
	found, err := storage.GetRecord(storage.Committed, pool, []byte("rec"), &s)
	assert.True(t, found)
	assert.Nil(t, err)
	assert.Equal(t, sample{Name: "a", Count: 3}, s)

	found, err = storage.GetRecord(storage.Committed, pool, []byte("none"), &s)
	assert.False(t, found)
	assert.Nil(t, err)

	_, err = storage.GetRecord(storage.Committed, pool, []byte("bad"), &s)
	assert.True(t, fault.IsErrInconsistency(err))
}
