// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

var (
	owner, _    = member.Parse("ogrn::1027700132195")
	licensee, _ = member.Parse("ogrn::5027700132191")
	stranger, _ = member.Parse("ogrn::1047700043500")

	start = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
)

func txHash(s string) merkle.Digest {
	return merkle.NewDigest([]byte(s))
}

func register(t *testing.T, id object.Identity, entries []ownership.Ownership, unstructured []ownership.Unstructured) error {
	return apply(t, func(trx storage.Transaction) error {
		return registry.Register(trx, txHash("add "+id.String()), &transactionrecord.AddObject{
			Owner:        owner,
			Object:       id,
			Ownership:    entries,
			Unstructured: unstructured,
		})
	})
}

func TestParticipant(t *testing.T) {
	key, err := account.NewPrivateKey(bytes.NewReader(bytes.Repeat([]byte{3}, 32)))
	assert.Nil(t, err, "key")

	r := &transactionrecord.AddParticipant{Member: owner, NodeName: "node-a", PublicKey: key.PublicKey()}
	assert.Nil(t, apply(t, func(trx storage.Transaction) error {
		return registry.AddParticipant(trx, txHash("participant"), r)
	}))

	err = apply(t, func(trx storage.Transaction) error {
		return registry.AddParticipant(trx, txHash("participant again"), r)
	})
	assert.True(t, fault.IsErrExists(err), "identities are immutable: %v", err)

	p, found, err := registry.GetParticipant(storage.Committed, owner)
	assert.Nil(t, err, "get")
	assert.True(t, found, "found")
	assert.Equal(t, "node-a", p.NodeName, "node name")

	pk, err := registry.PublicKey(storage.Committed, owner)
	assert.Nil(t, err, "public key")
	assert.Equal(t, key.PublicKey().String(), pk.String(), "key")

	_, err = registry.PublicKey(storage.Committed, stranger)
	assert.Equal(t, fault.KindAuthorizationDenied, fault.KindOf(err), "unknown member")
}

func TestRegisterAndAmend(t *testing.T) {
	id := object.Identity{Class: object.Invention, RegNumber: "100001"}
	entries := []ownership.Ownership{{Rightholder: owner, Distribution: ownership.DistributionAble, StartingTime: start}}
	assert.Nil(t, register(t, id, entries, nil), "register")
	assert.True(t, fault.IsErrExists(register(t, id, entries, nil)), "register twice")

	o, err := registry.Get(storage.Committed, id)
	assert.Nil(t, err, "get")
	assert.Equal(t, txHash("add "+id.String()), o.Head(), "head")

	amended := append(entries, ownership.Ownership{Rightholder: licensee, ContractType: ownership.ContractLicense, Distribution: ownership.DistributionWithWrittenPermission, StartingTime: start})
	assert.Nil(t, apply(t, func(trx storage.Transaction) error {
		return registry.Amend(trx, txHash("amend "+id.String()), &transactionrecord.UpdateObject{
			Owner:     licensee,
			Object:    id,
			Ownership: amended,
		})
	}), "amend")

	history, err := registry.History(storage.Committed, id)
	assert.Nil(t, err, "history")
	assert.Equal(t, []merkle.Digest{txHash("add " + id.String()), txHash("amend " + id.String())}, history, "history grows")

	current, err := registry.CurrentOwnership(storage.Committed, id)
	assert.Nil(t, err, "ownership")
	if assert.Equal(t, 2, len(current), "entries") {
		assert.Equal(t, ownership.DistributionAble, current[0].Distribution, "owner distribution")
		assert.Equal(t, ownership.DistributionWithWrittenPermission, current[1].Distribution, "licensee distribution")
	}

	snap, err := storage.NewSnapshot()
	assert.Nil(t, err, "snapshot")
	defer snap.Release()
	held, err := registry.ObjectsByOwner(snap, licensee)
	assert.Nil(t, err, "by owner")
	assert.Contains(t, held, id, "moved to new owner")
	held, err = registry.ObjectsByOwner(snap, owner)
	assert.Nil(t, err, "by owner")
	assert.NotContains(t, held, id, "removed from old owner")

	err = apply(t, func(trx storage.Transaction) error {
		return registry.Amend(trx, txHash("amend missing"), &transactionrecord.UpdateObject{
			Owner:  owner,
			Object: object.Identity{Class: object.Invention, RegNumber: "999999"},
		})
	})
	assert.True(t, fault.IsErrNotFound(err), "amend unknown: %v", err)
}

func TestRights(t *testing.T) {
	structured := object.Identity{Class: object.Invention, RegNumber: "200001"}
	assert.Nil(t, register(t, structured, []ownership.Ownership{{Rightholder: owner, Exclusive: true, Distribution: ownership.DistributionUnable, StartingTime: start}}, nil))

	unstructured := object.Identity{Class: object.Invention, RegNumber: "200002"}
	assert.Nil(t, register(t, unstructured, nil, []ownership.Unstructured{{Data: "scan", Rightholder: &licensee}}))

	source := registry.Rights(storage.Committed)
	items := []struct {
		holder     member.Identity
		id         object.Identity
		structured bool
		owner      bool
	}{
		{owner, structured, true, true},
		{stranger, structured, true, false},
		{owner, unstructured, false, false},
		{licensee, unstructured, false, false},
		{stranger, unstructured, true, false},
	}
	for i, item := range items {
		rights, isStructured, err := source.Rights(item.holder, item.id)
		assert.Nil(t, err, "%d: rights", i)
		assert.Equal(t, item.structured, isStructured, "%d: structured", i)
		assert.Equal(t, item.owner, rights.IsOwner(), "%d: owner", i)
	}

	_, _, err := source.Rights(owner, object.Identity{Class: object.Invention, RegNumber: "200003"})
	assert.True(t, fault.IsErrNotFound(err), "unknown object")
}

func TestRequests(t *testing.T) {
	assert.Nil(t, apply(t, func(trx storage.Transaction) error {
		registry.AddRequest(trx, txHash("request 1"), stranger, transactionrecord.AddObjectRequestTag)
		registry.AddRequest(trx, txHash("request 2"), stranger, transactionrecord.AddObjectGroupRequestTag)
		return nil
	}))

	snap, err := storage.NewSnapshot()
	assert.Nil(t, err, "snapshot")
	defer snap.Release()
	requests, err := registry.Requests(snap, stranger)
	assert.Nil(t, err, "requests")
	assert.Equal(t, 2, len(requests), "count")
	kinds := map[transactionrecord.TagType]bool{}
	for _, r := range requests {
		kinds[r.Kind] = true
	}
	assert.True(t, kinds[transactionrecord.AddObjectRequestTag], "object request")
	assert.True(t, kinds[transactionrecord.AddObjectGroupRequestTag], "group request")
}
