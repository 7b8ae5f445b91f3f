// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Request - an object request waiting for the data source
type Request struct {
	Kind   transactionrecord.TagType `json:"kind"`
	TxHash merkle.Digest             `json:"tx_hash"`
}

// AddRequest - index an AddObjectRequest or AddObjectGroupRequest
// under its requestor, no derived entity changes
func AddRequest(trx storage.Transaction, hash merkle.Digest, requestor member.Identity, kind transactionrecord.TagType) {
	key := storage.JoinKey([]byte(requestor.String()), hash[:])
	trx.Put(storage.Pool.ObjectRequests, key, []byte{byte(kind)})
}

// Requests - a member's object requests
func Requests(snap *storage.Snapshot, requestor member.Identity) ([]Request, error) {
	cursor := snap.NewFetchCursor(storage.Pool.ObjectRequests).Prefix(storage.JoinKey([]byte(requestor.String()), nil))
	requests := []Request{}
	err := cursor.Map(func(key []byte, value []byte) error {
		_, h, ok := storage.SplitKey(key)
		r := Request{}
		if !ok || 1 != len(value) || nil != merkle.DigestFromBytes(&r.TxHash, h) {
			return fault.Detailf(fault.CorruptRecord, "request index: %x", key)
		}
		r.Kind = transactionrecord.TagType(value[0])
		requests = append(requests, r)
		return nil
	})
	return requests, err
}
