// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lot

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Open - create a lot in new
//
// the seller must hold enough rights on every object and the heads of
// the objects are remembered to detect later changes
func Open(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.OpenLot) error {
	checks, err := r.Conditions.Evaluate(registry.Rights(trx), r.Requestor, member.Identity{})
	if nil != err {
		return err
	}

	heads := make([]ObjectHead, 0, len(r.Conditions.Objects))
	for _, id := range r.Conditions.ObjectIdentities() {
		o, err := registry.Get(trx, id)
		if nil != err {
			return err
		}
		heads = append(heads, ObjectHead{Object: id, Head: o.Head()})
	}

	l := Lot{
		TxHash:     hash,
		Seller:     r.Requestor,
		Offer:      r.Lot,
		Conditions: r.Conditions,
		Price:      r.Lot.Price,
		Status:     transactionrecord.LotNew,
		Bids:       []merkle.Digest{},
		Heads:      heads,
		Checks:     ownership.NewChecks(checks),
	}
	if err := put(trx, l); nil != err {
		return err
	}
	trx.Put(storage.Pool.MemberLots, memberKey(l.Seller, hash), []byte{})
	return nil
}

// EditStatus - verification outcome, only a new lot can be edited
func EditStatus(trx storage.Transaction, r *transactionrecord.EditLotStatus, now time.Time) error {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return err
	}
	if transactionrecord.LotNew != status || !CanMove(status, r.Status) {
		return fault.Detailf(fault.WrongLotState, "lot: %s  status: %s", r.Lot, status)
	}
	l.Status = r.Status
	return put(trx, l)
}

// AddBid - append a sealed bid
func AddBid(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.AddBid, now time.Time) error {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return err
	}
	if r.Requestor == l.Seller {
		return fault.BidderIsLotOwner
	}

	switch l.Offer.SaleType {
	case transactionrecord.Auction:
		if transactionrecord.LotVerified != status {
			return fault.Detailf(fault.LotCannotAcceptBids, "lot: %s  status: %s", r.Lot, status)
		}
		if r.Value <= l.Price {
			return fault.Detailf(fault.BidNotAboveCurrentPrice, "bid: %s  price: %s", r.Value, l.Price)
		}
	default:
		if transactionrecord.LotNew != status && transactionrecord.LotVerified != status {
			return fault.Detailf(fault.LotCannotAcceptBids, "lot: %s  status: %s", r.Lot, status)
		}
	}
	if !now.Before(l.Offer.ClosingTime) {
		return fault.Detailf(fault.LotCannotAcceptBids, "lot: %s  closed at: %s", r.Lot, l.Offer.ClosingTime.Format(time.RFC3339))
	}

	if err := ownership.FirstError([]ownership.Check{l.Conditions.CheckBuyer(r.Requestor)}); nil != err {
		return err
	}

	b := Bid{
		TxHash:    hash,
		Lot:       r.Lot,
		Requestor: r.Requestor,
		Value:     r.Value,
	}
	if err := storage.PutRecord(trx, storage.Pool.Bids, hash[:], b); nil != err {
		return err
	}
	l.Bids = append(l.Bids, hash)
	if err := put(trx, l); nil != err {
		return err
	}
	trx.Put(storage.Pool.MemberLots, memberKey(r.Requestor, r.Lot), []byte{})
	return nil
}

// PublishBids - reveal bid values
//
// each value marks the earliest unpublished bid holding it, the lot
// price becomes the highest revealed value
func PublishBids(trx storage.Transaction, r *transactionrecord.PublishBids, now time.Time) error {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return err
	}
	if transactionrecord.Auction != l.Offer.SaleType {
		return fault.Detailf(fault.WrongLotState, "lot: %s  is not an auction", r.Lot)
	}
	if transactionrecord.LotVerified != status && transactionrecord.LotCompleted != status {
		return fault.Detailf(fault.WrongLotState, "lot: %s  status: %s", r.Lot, status)
	}

	bids, err := Bids(trx, l)
	if nil != err {
		return err
	}

	price := l.Price
	for _, v := range r.Values {
		if v <= l.Price {
			return fault.Detailf(fault.BidNotAboveCurrentPrice, "bid: %s  price: %s", v, l.Price)
		}
		i := unpublished(bids, v)
		if i < 0 {
			return fault.Detailf(fault.BidNotRecorded, "value: %s", v)
		}
		bids[i].Published = true
		if v > price {
			price = v
		}
	}

	for _, b := range bids {
		if !b.Published {
			continue
		}
		if err := storage.PutRecord(trx, storage.Pool.Bids, b.TxHash[:], b); nil != err {
			return err
		}
	}
	l.Price = price
	return put(trx, l)
}

func unpublished(bids []Bid, value currency.Cost) int {
	for i, b := range bids {
		if !b.Published && value == b.Value {
			return i
		}
	}
	return -1
}

// Execute - settle an auction on its highest published bid
func Execute(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.ExecuteLot, now time.Time) (Sale, error) {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return Sale{}, err
	}
	if transactionrecord.Auction != l.Offer.SaleType {
		return Sale{}, fault.Detailf(fault.LotCannotBeExecuted, "lot: %s  is not an auction", r.Lot)
	}
	if transactionrecord.LotVerified != status && transactionrecord.LotCompleted != status {
		return Sale{}, fault.Detailf(fault.LotCannotBeExecuted, "lot: %s  status: %s", r.Lot, status)
	}

	bids, err := Bids(trx, l)
	if nil != err {
		return Sale{}, err
	}
	winner := -1
	for i, b := range bids {
		if !b.Published {
			continue
		}
		// strictly greater keeps the earliest of equal bids
		if winner < 0 || b.Value > bids[winner].Value {
			winner = i
		}
	}
	if winner < 0 {
		return Sale{}, fault.Detailf(fault.NoPublishedBids, "lot: %s", r.Lot)
	}

	return settle(trx, l, hash, bids[winner])
}

// Acquire - buy a private sale lot at its fixed price
func Acquire(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.AcquireLot, now time.Time) (Sale, error) {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return Sale{}, err
	}
	if transactionrecord.PrivateSale != l.Offer.SaleType {
		return Sale{}, fault.Detailf(fault.LotNotPurchasable, "lot: %s  is an auction", r.Lot)
	}
	if transactionrecord.LotVerified != status || !now.Before(l.Offer.ClosingTime) {
		return Sale{}, fault.Detailf(fault.LotNotPurchasable, "lot: %s  status: %s", r.Lot, status)
	}
	if r.Requestor == l.Seller {
		return Sale{}, fault.BidderIsLotOwner
	}
	if err := ownership.FirstError([]ownership.Check{l.Conditions.CheckBuyer(r.Requestor)}); nil != err {
		return Sale{}, err
	}

	trx.Put(storage.Pool.MemberLots, memberKey(r.Requestor, r.Lot), []byte{})
	return settle(trx, l, hash, Bid{Requestor: r.Requestor, Value: l.Price})
}

func settle(trx storage.Transaction, l Lot, contract merkle.Digest, winner Bid) (Sale, error) {
	l.Status = transactionrecord.LotExecuted
	l.Price = winner.Value
	l.Contract = contract
	if err := put(trx, l); nil != err {
		return Sale{}, err
	}
	return Sale{
		Lot:        l.TxHash,
		Seller:     l.Seller,
		Buyer:      winner.Requestor,
		Price:      winner.Value,
		Conditions: l.Conditions,
	}, nil
}

// Close - withdraw a lot, seller only
func Close(trx storage.Transaction, r *transactionrecord.CloseLot, now time.Time) error {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return err
	}
	if r.Requestor != l.Seller {
		return fault.NotALotOwner
	}
	if !CanMove(status, transactionrecord.LotClosed) {
		return fault.Detailf(fault.LotCannotBeClosed, "lot: %s  status: %s", r.Lot, status)
	}
	l.Status = transactionrecord.LotClosed
	return put(trx, l)
}

// CloseSold - close the lot behind an approved contract
func CloseSold(trx storage.Transaction, hash merkle.Digest) error {
	l, err := Get(trx, hash)
	if nil != err {
		return err
	}
	if transactionrecord.LotExecuted != l.Status {
		return nil
	}
	l.Status = transactionrecord.LotClosed
	return put(trx, l)
}

// Extend - move the closing time later while the lot is still open
func Extend(trx storage.Transaction, r *transactionrecord.ExtendLotPeriod, now time.Time) error {
	l, status, err := load(trx, r.Lot, now)
	if nil != err {
		return err
	}
	if r.Requestor != l.Seller {
		return fault.NotALotOwner
	}
	if transactionrecord.LotNew != status && transactionrecord.LotVerified != status {
		return fault.Detailf(fault.LotCannotBeExtended, "lot: %s  status: %s", r.Lot, status)
	}
	if !r.NewExpiration.After(l.Offer.ClosingTime) {
		return fault.Detailf(fault.ExpirationNotAfterClosing, "%s <= %s", r.NewExpiration.Format(time.RFC3339), l.Offer.ClosingTime.Format(time.RFC3339))
	}
	l.Offer.ClosingTime = r.NewExpiration
	return put(trx, l)
}

func load(g storage.Getter, hash merkle.Digest, now time.Time) (Lot, Status, error) {
	l, err := Get(g, hash)
	if nil != err {
		return Lot{}, 0, err
	}
	status, err := EffectiveStatus(g, l, now)
	if nil != err {
		return Lot{}, 0, err
	}
	return l, status, nil
}
