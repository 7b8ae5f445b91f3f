// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
)

// Signature - one signer's signature over the packed record
type Signature struct {
	Signer member.Identity   `json:"signer"`
	Value  account.Signature `json:"value"`
}

// Envelope - a packed record as submitted
type Envelope struct {
	Origin     Origin      `json:"origin"`
	Packed     Packed      `json:"packed"`
	Signatures []Signature `json:"signatures"`
}

// NewEnvelope - pack a record for submission on its own interface
func NewEnvelope(t Transaction) (*Envelope, error) {
	packed, err := t.Pack()
	if nil != err {
		return nil, err
	}
	return &Envelope{
		Origin: t.Tag().Origin(),
		Packed: packed,
	}, nil
}

// Sign - append a signature over the packed record
func (e *Envelope) Sign(signer member.Identity, key account.PrivateKey) {
	e.Signatures = append(e.Signatures, Signature{
		Signer: signer,
		Value:  key.Sign(e.Packed),
	})
}

// SignatureBy - the first signature claimed by a member
func (e *Envelope) SignatureBy(signer member.Identity) (account.Signature, bool) {
	for _, s := range e.Signatures {
		if s.Signer == signer {
			return s.Value, true
		}
	}
	return nil, false
}

// Hash - the transaction identifier
func (e *Envelope) Hash() merkle.Digest {
	return e.Packed.Hash()
}

// Hash - the transaction identifier is the SHA3-256 of the packed record
func (record Packed) Hash() merkle.Digest {
	return merkle.NewDigest(record)
}

// MarshalText - packed records travel as hex
func (record Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert hex to a packed record
func (record *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return fault.Detailf(fault.NotATransactionPack, "not hex")
	}
	*record = b[:n]
	return nil
}

// MarshalText - origins travel as names
func (o Origin) MarshalText() ([]byte, error) {
	switch o {
	case Public, Private:
		return []byte(o.String()), nil
	default:
		return nil, fault.InvalidInterface
	}
}

// UnmarshalText - convert a name to an origin
func (o *Origin) UnmarshalText(s []byte) error {
	switch string(s) {
	case "public":
		*o = Public
	case "private":
		*o = Private
	default:
		return fault.Detailf(fault.InvalidInterface, "%q", s)
	}
	return nil
}
