// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

var (
	owner, _    = member.Parse("ogrn::1027700132195")
	reader, _   = member.Parse("ogrn::5027700132191")
	stranger, _ = member.Parse("ogrn::1047700043500")
)

func txHash(s string) merkle.Digest {
	return merkle.NewDigest([]byte(s))
}

func attach(t *testing.T, name string, contract merkle.Digest) merkle.Digest {
	hash := txHash(name)
	err := apply(t, func(trx storage.Transaction) error {
		return document.Attach(trx, hash, owner, transactionrecord.Attachment{
			Name:     name + ".pdf",
			FileType: transactionrecord.OtherAttachment,
			Hash:     txHash("content " + name),
		}, []member.Identity{reader}, contract)
	})
	if nil != err {
		t.Fatalf("attach error: %s", err)
	}
	return hash
}

func TestAttach(t *testing.T) {
	hash := attach(t, "charter", merkle.Digest{})
	d, err := document.Get(storage.Committed, hash)
	assert.Nil(t, err, "get")
	assert.Equal(t, owner, d.Owner, "owner")
	assert.True(t, d.VisibleTo(owner), "owner sees")
	assert.True(t, d.VisibleTo(reader), "member sees")
	assert.False(t, d.VisibleTo(stranger), "stranger does not")

	err = apply(t, func(trx storage.Transaction) error {
		return document.Attach(trx, hash, owner, d.Attachment, nil, merkle.Digest{})
	})
	assert.Equal(t, fault.KindDuplicateOrConflictingBid, fault.KindOf(err), "attach twice")
}

func TestAddSignature(t *testing.T) {
	hash := attach(t, "statement", merkle.Digest{})
	key, err := account.NewPrivateKey(bytes.NewReader(bytes.Repeat([]byte{5}, 32)))
	assert.Nil(t, err, "key")
	content := txHash("content statement")
	verifier := account.ED25519Verifier{}

	sign := func(who member.Identity, s account.Signature) error {
		return apply(t, func(trx storage.Transaction) error {
			return document.AddSignature(trx, verifier, key.PublicKey(), hash, who, s)
		})
	}

	err = sign(reader, key.Sign([]byte("something else")))
	assert.Equal(t, fault.KindSignatureVerificationFailed, fault.KindOf(err), "wrong payload")

	err = sign(stranger, key.Sign(content[:]))
	assert.True(t, fault.IsErrNotFound(err), "not shared: %v", err)

	assert.Nil(t, sign(reader, key.Sign(content[:])), "sign")
	assert.Nil(t, sign(reader, account.Signature{1}), "repeat is idempotent")

	d, err := document.Get(storage.Committed, hash)
	assert.Nil(t, err, "get")
	assert.Equal(t, 1, len(d.Signatures), "one signature per signer")
	s, ok := d.SignedBy(reader)
	assert.True(t, ok, "signed")
	assert.Equal(t, key.Sign(content[:]), s, "stored signature")
}

func TestDeleteGroup(t *testing.T) {
	a := attach(t, "letter a", merkle.Digest{})
	b := attach(t, "letter b", merkle.Digest{})
	bound := attach(t, "contract letter", txHash("some contract"))

	del := func(who member.Identity, hashes ...merkle.Digest) error {
		return apply(t, func(trx storage.Transaction) error {
			return document.DeleteGroup(trx, who, hashes)
		})
	}

	assert.Equal(t, fault.KindAuthorizationDenied, fault.KindOf(del(reader, a)), "not owner")
	assert.Equal(t, fault.KindAuthorizationDenied, fault.KindOf(del(owner, a, bound)), "contract document")

	_, err := document.Get(storage.Committed, a)
	assert.Nil(t, err, "all or nothing")

	assert.Nil(t, del(owner, a, b, a), "delete group")
	for _, h := range []merkle.Digest{a, b} {
		_, err := document.Get(storage.Committed, h)
		assert.True(t, fault.IsErrNotFound(err), "tombstoned")
		d, err := document.Lookup(storage.Committed, h)
		assert.Nil(t, err, "lookup keeps tombstone")
		assert.True(t, d.Deleted, "deleted flag")
	}

	assert.True(t, fault.IsErrNotFound(del(owner, a)), "delete twice")
}

func TestDeleteGroupWithContractDocumentChangesNothing(t *testing.T) {
	free := attach(t, "memo", merkle.Digest{})
	bound := attach(t, "contract memo", txHash("another contract"))

	before := map[merkle.Digest]document.Document{}
	for _, h := range []merkle.Digest{free, bound} {
		d, err := document.Lookup(storage.Committed, h)
		assert.Nil(t, err, "lookup")
		before[h] = d
	}

	groups := [][]merkle.Digest{
		{free, bound},
		{bound, free},
	}
	for i, hashes := range groups {
		err := apply(t, func(trx storage.Transaction) error {
			return document.DeleteGroup(trx, owner, hashes)
		})
		assert.Equal(t, fault.KindAuthorizationDenied, fault.KindOf(err), "%d: rejected", i)

		for _, h := range []merkle.Digest{free, bound} {
			d, err := document.Get(storage.Committed, h)
			assert.Nil(t, err, "%d: still live", i)
			assert.False(t, d.Deleted, "%d: not deleted", i)
			assert.Equal(t, before[h], d, "%d: unchanged", i)
		}
	}
}
