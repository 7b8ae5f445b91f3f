// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Participant - a registered network member
type Participant struct {
	Member    member.Identity   `json:"member"`
	NodeName  string            `json:"node_name"`
	PublicKey account.PublicKey `json:"public_key"`
	TxHash    merkle.Digest     `json:"tx_hash"`
}

// AddParticipant - register a member, identities are immutable once
// registered
func AddParticipant(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.AddParticipant) error {
	key := []byte(r.Member.String())
	if trx.Has(storage.Pool.Participants, key) {
		return fault.Detailf(fault.ParticipantAlreadyRegistered, "%s", r.Member)
	}
	p := Participant{
		Member:    r.Member,
		NodeName:  r.NodeName,
		PublicKey: r.PublicKey,
		TxHash:    hash,
	}
	return storage.PutRecord(trx, storage.Pool.Participants, key, p)
}

// GetParticipant - look up a registered member
func GetParticipant(g storage.Getter, m member.Identity) (Participant, bool, error) {
	p := Participant{}
	found, err := storage.GetRecord(g, storage.Pool.Participants, []byte(m.String()), &p)
	return p, found, err
}

// PublicKey - the signing key of a registered member
func PublicKey(g storage.Getter, m member.Identity) (account.PublicKey, error) {
	p, found, err := GetParticipant(g, m)
	if nil != err {
		return account.PublicKey{}, err
	}
	if !found {
		return account.PublicKey{}, fault.Detailf(fault.UnknownRequestor, "%s", m)
	}
	return p.PublicKey, nil
}
