// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txlog is the append-only, hash addressed sequence of
// accepted transactions
package txlog

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Entry - one accepted transaction
//
// the timestamp is the evaluation time used when the transaction was
// accepted, replay uses it in place of the clock
type Entry struct {
	Sequence  uint64                     `json:"-"`
	Hash      merkle.Digest              `json:"-"`
	Timestamp time.Time                  `json:"timestamp"`
	Envelope  transactionrecord.Envelope `json:"envelope"`
}

// Has - check if a transaction is already in the log
func Has(g storage.Getter, hash merkle.Digest) bool {
	return g.Has(storage.Pool.Transactions, hash[:])
}

// Get - fetch a log entry by transaction hash
func Get(g storage.Getter, hash merkle.Digest) (Entry, error) {
	sequence, data := g.GetNB(storage.Pool.Transactions, hash[:])
	if nil == data {
		return Entry{}, fault.Detailf(fault.TransactionNotFound, "%s", hash)
	}
	entry := Entry{}
	err := json.Unmarshal(data, &entry)
	if nil != err {
		return Entry{}, fault.Detailf(fault.CorruptRecord, "log: %s: %s", hash, err)
	}
	entry.Sequence = sequence
	entry.Hash = hash
	return entry, nil
}

// Count - number of committed entries
func Count() uint64 {
	last, found := storage.Pool.Sequence.LastElement()
	if !found {
		return 0
	}
	return storage.DecodeN(last.Key)
}

// Append - add an envelope to the log inside the write transaction
//
// the caller is the single writer so the committed tail is the tail
func Append(trx storage.Transaction, envelope *transactionrecord.Envelope, now time.Time) (Entry, error) {
	hash := envelope.Hash()
	if Has(trx, hash) {
		return Entry{}, fault.Detailf(fault.DuplicateTransaction, "%s", hash)
	}

	entry := Entry{
		Sequence:  Count() + 1,
		Hash:      hash,
		Timestamp: now.UTC(),
		Envelope:  *envelope,
	}
	data, err := json.Marshal(entry)
	if nil != err {
		return Entry{}, err
	}

	trx.PutNB(storage.Pool.Transactions, hash[:], entry.Sequence, data)
	trx.Put(storage.Pool.Sequence, storage.EncodeN(entry.Sequence), hash[:])
	return entry, nil
}

// Replay - visit every entry from a sequence number on, in log order
func Replay(from uint64, f func(Entry) error) error {
	cursor := storage.Pool.Sequence.NewFetchCursor().Seek(storage.EncodeN(from))
	return cursor.Map(func(key []byte, value []byte) error {
		hash := merkle.Digest{}
		if err := merkle.DigestFromBytes(&hash, value); nil != err {
			return fault.Detailf(fault.CorruptRecord, "sequence: %x", key)
		}
		entry, err := Get(storage.Committed, hash)
		if nil != err {
			return err
		}
		return f(entry)
	})
}
