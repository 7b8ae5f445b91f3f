// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lot is the auction and private sale lifecycle for bundles
// of objects
//
// Only new, rejected, verified, executed and closed are stored.
// completed and undefined are derived at read time from the closing
// time and the object histories.
package lot

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Status - alias to keep call sites short
type Status = transactionrecord.LotStatus

// ObjectHead - the last change of an object when the lot opened
type ObjectHead struct {
	Object object.Identity `json:"object"`
	Head   merkle.Digest   `json:"head"`
}

// Lot - the stored lot record
type Lot struct {
	TxHash     merkle.Digest              `json:"tx_hash"`
	Seller     member.Identity            `json:"seller"`
	Offer      transactionrecord.LotOffer `json:"lot"`
	Conditions ownership.Conditions       `json:"conditions"`
	Price      currency.Cost              `json:"price"`
	Status     Status                     `json:"status"`
	Bids       []merkle.Digest            `json:"bids"`
	Heads      []ObjectHead               `json:"heads"`
	Checks     ownership.Checks           `json:"checks"`
	Contract   merkle.Digest              `json:"contract_tx_hash"`
}

// Bid - one sealed bid
type Bid struct {
	TxHash    merkle.Digest   `json:"tx_hash"`
	Lot       merkle.Digest   `json:"lot_tx_hash"`
	Requestor member.Identity `json:"requestor"`
	Value     currency.Cost   `json:"value"`
	Published bool            `json:"published"`
}

// Sale - the outcome of an execution or acquisition, handed to the
// contract engine
type Sale struct {
	Lot        merkle.Digest
	Seller     member.Identity
	Buyer      member.Identity
	Price      currency.Cost
	Conditions ownership.Conditions
}

// allowed moves between effective states
var transitions = map[Status][]Status{
	transactionrecord.LotNew:       {transactionrecord.LotRejected, transactionrecord.LotVerified, transactionrecord.LotClosed},
	transactionrecord.LotVerified:  {transactionrecord.LotExecuted, transactionrecord.LotClosed},
	transactionrecord.LotCompleted: {transactionrecord.LotExecuted, transactionrecord.LotClosed},
	transactionrecord.LotExecuted:  {transactionrecord.LotClosed},
	transactionrecord.LotUndefined: {transactionrecord.LotClosed},
	transactionrecord.LotRejected:  {},
	transactionrecord.LotClosed:    {},
}

// CanMove - check the transition table
func CanMove(from Status, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal - no further transitions
func IsTerminal(s Status) bool {
	return 0 == len(transitions[s])
}

// Get - the stored lot record
func Get(g storage.Getter, hash merkle.Digest) (Lot, error) {
	l := Lot{}
	found, err := storage.GetRecord(g, storage.Pool.Lots, hash[:], &l)
	if nil != err {
		return Lot{}, err
	}
	if !found {
		return Lot{}, fault.Detailf(fault.LotNotFound, "%s", hash)
	}
	return l, nil
}

// GetBid - a stored bid
func GetBid(g storage.Getter, hash merkle.Digest) (Bid, error) {
	b := Bid{}
	found, err := storage.GetRecord(g, storage.Pool.Bids, hash[:], &b)
	if nil != err {
		return Bid{}, err
	}
	if !found {
		return Bid{}, fault.Detailf(fault.TransactionNotFound, "bid: %s", hash)
	}
	return b, nil
}

// Bids - all bids of a lot in submission order
func Bids(g storage.Getter, l Lot) ([]Bid, error) {
	bids := make([]Bid, 0, len(l.Bids))
	for _, h := range l.Bids {
		b, err := GetBid(g, h)
		if nil != err {
			return nil, fault.Detailf(fault.CorruptRecord, "lot: %s  bid: %s", l.TxHash, h)
		}
		bids = append(bids, b)
	}
	return bids, nil
}

// EffectiveStatus - the status as seen at a given time
//
// an object change since opening makes a live lot undefined and an
// executed lot closed, a verified lot past its closing time is
// completed
func EffectiveStatus(g storage.Getter, l Lot, now time.Time) (Status, error) {
	switch l.Status {
	case transactionrecord.LotClosed, transactionrecord.LotRejected:
		return l.Status, nil
	}

	changed, err := objectsChanged(g, l)
	if nil != err {
		return l.Status, err
	}
	if changed {
		if transactionrecord.LotExecuted == l.Status {
			return transactionrecord.LotClosed, nil
		}
		return transactionrecord.LotUndefined, nil
	}

	if transactionrecord.LotVerified == l.Status && !now.Before(l.Offer.ClosingTime) {
		return transactionrecord.LotCompleted, nil
	}
	return l.Status, nil
}

func objectsChanged(g storage.Getter, l Lot) (bool, error) {
	for _, h := range l.Heads {
		o, err := registry.Get(g, h.Object)
		if fault.IsErrNotFound(err) {
			return true, nil
		}
		if nil != err {
			return false, err
		}
		if o.Head() != h.Head {
			return true, nil
		}
	}
	return false, nil
}

func put(trx storage.Transaction, l Lot) error {
	return storage.PutRecord(trx, storage.Pool.Lots, l.TxHash[:], l)
}

func memberKey(m member.Identity, hash merkle.Digest) []byte {
	return storage.JoinKey([]byte(m.String()), hash[:])
}
