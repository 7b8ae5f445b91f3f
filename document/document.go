// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package document indexes attached files by their attaching
// transaction, the bytes themselves are held off ledger
package document

import (
	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Sign - a verified signature over the document content
type Sign struct {
	Signer    member.Identity   `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Document - one attached file
type Document struct {
	TxHash     merkle.Digest                `json:"tx_hash"`
	Owner      member.Identity              `json:"owner"`
	Attachment transactionrecord.Attachment `json:"attachment"`
	Members    []member.Identity            `json:"members,omitempty"`
	Contract   merkle.Digest                `json:"contract_tx_hash"`
	Signatures []Sign                       `json:"signatures,omitempty"`
	Deleted    bool                         `json:"deleted"`
}

// VisibleTo - the owner and the members it was shared with
func (d Document) VisibleTo(m member.Identity) bool {
	if d.Owner == m {
		return true
	}
	for _, v := range d.Members {
		if v == m {
			return true
		}
	}
	return false
}

// SignedBy - the signature of a member if present
func (d Document) SignedBy(m member.Identity) (account.Signature, bool) {
	for _, s := range d.Signatures {
		if s.Signer == m {
			return s.Signature, true
		}
	}
	return nil, false
}

// Attach - index a new document, contract is zero for a free
// standing file
func Attach(trx storage.Transaction, hash merkle.Digest, owner member.Identity, attachment transactionrecord.Attachment, members []member.Identity, contract merkle.Digest) error {
	if trx.Has(storage.Pool.Documents, hash[:]) {
		return fault.Detailf(fault.DuplicateTransaction, "document: %s", hash)
	}
	d := Document{
		TxHash:     hash,
		Owner:      owner,
		Attachment: attachment,
		Members:    members,
		Contract:   contract,
	}
	return put(trx, d)
}

// Get - a live document, tombstoned documents are not found
func Get(g storage.Getter, hash merkle.Digest) (Document, error) {
	d, err := Lookup(g, hash)
	if nil != err {
		return Document{}, err
	}
	if d.Deleted {
		return Document{}, fault.Detailf(fault.DocumentNotFound, "deleted: %s", hash)
	}
	return d, nil
}

// Lookup - a document including tombstones
func Lookup(g storage.Getter, hash merkle.Digest) (Document, error) {
	d := Document{}
	found, err := storage.GetRecord(g, storage.Pool.Documents, hash[:], &d)
	if nil != err {
		return Document{}, err
	}
	if !found {
		return Document{}, fault.Detailf(fault.DocumentNotFound, "%s", hash)
	}
	return d, nil
}

// AddSignature - verify a member's signature over the document
// content and record it
//
// repeating a signature for the same (document, signer) changes
// nothing and still reports success
func AddSignature(trx storage.Transaction, verifier account.Verifier, key account.PublicKey, hash merkle.Digest, signer member.Identity, signature account.Signature) error {
	d, err := Get(trx, hash)
	if nil != err {
		return err
	}
	if !d.VisibleTo(signer) {
		return fault.Detailf(fault.DocumentNotFound, "%s not shared with %s", hash, signer)
	}
	if _, ok := d.SignedBy(signer); ok {
		return nil
	}
	if !verifier.Verify(key, d.Attachment.Hash[:], signature) {
		return fault.Detailf(fault.InvalidSignature, "document: %s  signer: %s", hash, signer)
	}
	d.Signatures = append(d.Signatures, Sign{Signer: signer, Signature: signature})
	return put(trx, d)
}

// DeleteGroup - tombstone a set of the requestor's own free standing
// documents, all or nothing
func DeleteGroup(trx storage.Transaction, requestor member.Identity, hashes []merkle.Digest) error {
	docs := make([]Document, 0, len(hashes))
	seen := make(map[merkle.Digest]struct{}, len(hashes))
	for _, h := range hashes {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}

		d, err := Get(trx, h)
		if nil != err {
			return err
		}
		if d.Owner != requestor || !d.Contract.IsZero() {
			return fault.Detailf(fault.NotTheDocumentOwner, "%s", h)
		}
		docs = append(docs, d)
	}
	for _, d := range docs {
		if err := tombstone(trx, d); nil != err {
			return err
		}
	}
	return nil
}

// Delete - tombstone a single document
func Delete(trx storage.Transaction, hash merkle.Digest) error {
	d, err := Get(trx, hash)
	if nil != err {
		return err
	}
	return tombstone(trx, d)
}

func tombstone(trx storage.Transaction, d Document) error {
	d.Deleted = true
	d.Signatures = nil
	return put(trx, d)
}

func put(trx storage.Transaction, d Document) error {
	return storage.PutRecord(trx, storage.Pool.Documents, d.TxHash[:], d)
}
