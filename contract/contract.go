// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract is the negotiation of a rights transfer between a
// buyer and a seller
//
// a contract is keyed by the transaction that created it: a
// PurchaseOffer, or the ExecuteLot or AcquireLot that sold a lot
package contract

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/storage"
)

// Status - contract lifecycle state
type Status uint8

// contract states
const (
	New                Status = 0
	Draft              Status = 1
	Confirmed          Status = 2
	Signed             Status = 3
	Registering        Status = 4
	AwaitingUserAction Status = 5
	Approved           Status = 6
	Refused            Status = 7
	Rejected           Status = 8
)

var statusNames = map[Status]string{
	New:                "new",
	Draft:              "draft",
	Confirmed:          "confirmed",
	Signed:             "signed",
	Registering:        "registering",
	AwaitingUserAction: "awaiting_user_action",
	Approved:           "approved",
	Refused:            "refused",
	Rejected:           "rejected",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - statuses travel as names
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fault.Detailf(fault.WrongContractState, "status: %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText - convert a name to a status
func (s *Status) UnmarshalText(text []byte) error {
	for code, name := range statusNames {
		if name == string(text) {
			*s = code
			return nil
		}
	}
	return fault.Detailf(fault.WrongContractState, "status: %q", text)
}

// the status only moves forward, refused and rejected absorb
var transitions = map[Status][]Status{
	New:                {Draft, Refused, Rejected},
	Draft:              {New, Confirmed, Refused},
	Confirmed:          {New, Signed, Refused},
	Signed:             {Registering},
	Registering:        {AwaitingUserAction, Approved, Rejected},
	AwaitingUserAction: {Approved, Rejected},
	Approved:           {},
	Refused:            {},
	Rejected:           {},
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

// IsPreSigned - still open to negotiation
func (s Status) IsPreSigned() bool {
	return New == s || Draft == s || Confirmed == s
}

// Parties - the flags kept once for each side
type Parties struct {
	Buyer  bool `json:"buyer"`
	Seller bool `json:"seller"`
}

// Both - both sides have acted
func (p Parties) Both() bool {
	return p.Buyer && p.Seller
}

// TaxInfo - evidence of a fee payment
type TaxInfo struct {
	Requestor   member.Identity `json:"requestor"`
	Number      string          `json:"number"`
	PaymentDate time.Time       `json:"payment_date"`
	Amount      currency.Cost   `json:"amount"`
}

// Contract - the stored contract record
type Contract struct {
	TxHash          merkle.Digest        `json:"tx_hash"`
	Lot             merkle.Digest        `json:"lot_tx_hash"`
	Buyer           member.Identity      `json:"buyer"`
	Seller          member.Identity      `json:"seller"`
	Price           currency.Cost        `json:"price"`
	Conditions      ownership.Conditions `json:"conditions"`
	Status          Status               `json:"status"`
	Deed            merkle.Digest        `json:"deed_tx_hash"`
	Application     merkle.Digest        `json:"application_tx_hash"`
	Documents       []merkle.Digest      `json:"doc_tx_hashes"`
	Files           []merkle.Digest      `json:"bound_doc_tx_hashes"`
	Confirmed       Parties              `json:"confirmed"`
	Signed          Parties              `json:"signed"`
	Checks          ownership.Checks     `json:"checks"`
	Taxes           []TaxInfo            `json:"taxes"`
	Notification    merkle.Digest        `json:"notification_tx_hash"`
	ReferenceNumber string               `json:"reference_number"`
	Reason          string               `json:"reason"`
}

// IsParty - buyer or seller
func (c Contract) IsParty(m member.Identity) bool {
	return m == c.Buyer || m == c.Seller
}

// counterparty of a party
func (c Contract) other(m member.Identity) member.Identity {
	if m == c.Buyer {
		return c.Seller
	}
	return c.Buyer
}

// Get - the stored contract
func Get(g storage.Getter, hash merkle.Digest) (Contract, error) {
	c := Contract{}
	found, err := storage.GetRecord(g, storage.Pool.Contracts, hash[:], &c)
	if nil != err {
		return Contract{}, err
	}
	if !found {
		return Contract{}, fault.Detailf(fault.ContractNotFound, "%s", hash)
	}
	return c, nil
}

// ByMember - hashes of the contracts a member is party to
func ByMember(snap *storage.Snapshot, m member.Identity) ([]merkle.Digest, error) {
	cursor := snap.NewFetchCursor(storage.Pool.MemberContracts).Prefix(storage.JoinKey([]byte(m.String()), nil))
	hashes := []merkle.Digest{}
	err := cursor.Map(func(key []byte, value []byte) error {
		_, h, ok := storage.SplitKey(key)
		d := merkle.Digest{}
		if !ok || nil != merkle.DigestFromBytes(&d, h) {
			return fault.Detailf(fault.CorruptRecord, "member contract index: %x", key)
		}
		hashes = append(hashes, d)
		return nil
	})
	return hashes, err
}

// PaymentContract - the contract a payment number was recorded on
func PaymentContract(g storage.Getter, number string) (merkle.Digest, bool) {
	d := merkle.Digest{}
	v := g.Get(storage.Pool.Payments, []byte(number))
	if nil == v || nil != merkle.DigestFromBytes(&d, v) {
		return merkle.Digest{}, false
	}
	return d, true
}

func put(trx storage.Transaction, c Contract) error {
	return storage.PutRecord(trx, storage.Pool.Contracts, c.TxHash[:], c)
}

func memberKey(m member.Identity, hash merkle.Digest) []byte {
	return storage.JoinKey([]byte(m.String()), hash[:])
}
