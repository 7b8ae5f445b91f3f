// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lot

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/storage"
)

// View - a lot as reported to clients, status is the effective one
type View struct {
	Lot
	Status Status `json:"status"`
	Bids   []Bid  `json:"bids"`
}

// Describe - the client view of a lot at a given time
//
// unpublished bid values are only shown to their bidder and the
// seller
func Describe(g storage.Getter, hash merkle.Digest, viewer member.Identity, now time.Time) (View, error) {
	l, status, err := load(g, hash, now)
	if nil != err {
		return View{}, err
	}
	bids, err := Bids(g, l)
	if nil != err {
		return View{}, err
	}
	for i, b := range bids {
		if !b.Published && viewer != b.Requestor && viewer != l.Seller {
			bids[i].Value = 0
		}
	}
	return View{Lot: l, Status: status, Bids: bids}, nil
}

// ByMember - hashes of the lots a member sells or bids on
func ByMember(snap *storage.Snapshot, m member.Identity) ([]merkle.Digest, error) {
	cursor := snap.NewFetchCursor(storage.Pool.MemberLots).Prefix(storage.JoinKey([]byte(m.String()), nil))
	hashes := []merkle.Digest{}
	err := cursor.Map(func(key []byte, value []byte) error {
		_, h, ok := storage.SplitKey(key)
		d := merkle.Digest{}
		if !ok || nil != merkle.DigestFromBytes(&d, h) {
			return fault.Detailf(fault.CorruptRecord, "member lot index: %x", key)
		}
		hashes = append(hashes, d)
		return nil
	})
	return hashes, err
}

// List - up to count lots starting after a hash, zero starts at the
// beginning
//
// each lot carries its effective status at the given time
func List(snap *storage.Snapshot, start merkle.Digest, count int, now time.Time) ([]Lot, merkle.Digest, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}
	cursor := snap.NewFetchCursor(storage.Pool.Lots)
	if !start.IsZero() {
		cursor.Seek(append(start[:], 0x00))
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}
	lots := make([]Lot, 0, len(elements))
	next := start
	for _, e := range elements {
		l, status, err := load(snap, digestOf(e.Key), now)
		if nil != err {
			return nil, start, err
		}
		l.Status = status
		lots = append(lots, l)
		next = l.TxHash
	}
	return lots, next, nil
}

func digestOf(key []byte) merkle.Digest {
	d := merkle.Digest{}
	_ = merkle.DigestFromBytes(&d, key)
	return d
}
