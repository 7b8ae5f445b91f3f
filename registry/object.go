// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Object - current ownership of an object and its audit history
type Object struct {
	Identity     object.Identity          `json:"object"`
	Owner        member.Identity          `json:"owner"`
	Data         string                   `json:"data"`
	Ownership    []ownership.Ownership    `json:"ownership"`
	Unstructured []ownership.Unstructured `json:"unstructured"`
	History      []merkle.Digest          `json:"history"`
}

// Head - the transaction that last changed the object
func (o Object) Head() merkle.Digest {
	if 0 == len(o.History) {
		return merkle.Digest{}
	}
	return o.History[len(o.History)-1]
}

func objectKey(id object.Identity) []byte {
	return []byte(id.String())
}

func ownerKey(owner member.Identity, id object.Identity) []byte {
	return storage.JoinKey([]byte(owner.String()), objectKey(id))
}

// Register - record a new object from the data source
func Register(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.AddObject) error {
	key := objectKey(r.Object)
	if trx.Has(storage.Pool.Objects, key) {
		return fault.Detailf(fault.ObjectAlreadyRegistered, "%s", r.Object)
	}
	o := Object{
		Identity:     r.Object,
		Owner:        r.Owner,
		Data:         r.Data,
		Ownership:    r.Ownership,
		Unstructured: r.Unstructured,
		History:      []merkle.Digest{hash},
	}
	trx.Put(storage.Pool.OwnerObjects, ownerKey(o.Owner, o.Identity), []byte{})
	return storage.PutRecord(trx, storage.Pool.Objects, key, o)
}

// Amend - replace the ownership of a registered object, the history
// only grows
func Amend(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.UpdateObject) error {
	o, err := Get(trx, r.Object)
	if nil != err {
		return err
	}
	if o.Owner != r.Owner {
		trx.Delete(storage.Pool.OwnerObjects, ownerKey(o.Owner, o.Identity))
		trx.Put(storage.Pool.OwnerObjects, ownerKey(r.Owner, o.Identity), []byte{})
	}
	o.Owner = r.Owner
	o.Data = r.Data
	o.Ownership = r.Ownership
	o.Unstructured = r.Unstructured
	o.History = append(o.History, hash)
	return storage.PutRecord(trx, storage.Pool.Objects, objectKey(o.Identity), o)
}

// Get - the current record of an object
func Get(g storage.Getter, id object.Identity) (Object, error) {
	o := Object{}
	found, err := storage.GetRecord(g, storage.Pool.Objects, objectKey(id), &o)
	if nil != err {
		return Object{}, err
	}
	if !found {
		return Object{}, fault.Detailf(fault.ObjectNotFound, "%s", id)
	}
	return o, nil
}

// CurrentOwnership - the ownership entries in force
func CurrentOwnership(g storage.Getter, id object.Identity) ([]ownership.Ownership, error) {
	o, err := Get(g, id)
	if nil != err {
		return nil, err
	}
	return o.Ownership, nil
}

// History - transaction hashes that changed an object, oldest first
func History(g storage.Getter, id object.Identity) ([]merkle.Digest, error) {
	o, err := Get(g, id)
	if nil != err {
		return nil, err
	}
	return o.History, nil
}

// ObjectsByOwner - identities of the objects a member owns
func ObjectsByOwner(snap *storage.Snapshot, owner member.Identity) ([]object.Identity, error) {
	cursor := snap.NewFetchCursor(storage.Pool.OwnerObjects).Prefix(storage.JoinKey([]byte(owner.String()), nil))
	ids := []object.Identity{}
	err := cursor.Map(func(key []byte, value []byte) error {
		_, text, ok := storage.SplitKey(key)
		if !ok {
			return fault.Detailf(fault.CorruptRecord, "owner index: %x", key)
		}
		id, err := object.Parse(string(text))
		if nil != err {
			return fault.Detailf(fault.CorruptRecord, "owner index: %q", text)
		}
		ids = append(ids, id)
		return nil
	})
	return ids, err
}

// rightsSource - ownership checks against the recorded entries
type rightsSource struct {
	g storage.Getter
}

// Rights - an ownership.RightsSource reading from the registry
func Rights(g storage.Getter) ownership.RightsSource {
	return rightsSource{g: g}
}

// objects known only through unstructured data are matched on the
// owner or the rightholder named in the data, the result cannot be
// judged further
func (s rightsSource) Rights(holder member.Identity, id object.Identity) (ownership.Rights, bool, error) {
	o, err := Get(s.g, id)
	if nil != err {
		return ownership.Rights{}, false, err
	}
	if rights, ok := ownership.RightsOf(o.Ownership, holder); ok {
		return rights, true, nil
	}
	if 0 == len(o.Ownership) && o.Owner == holder {
		return ownership.Rights{}, false, nil
	}
	for _, u := range o.Unstructured {
		if nil != u.Rightholder && *u.Rightholder == holder {
			return ownership.Rights{}, false, nil
		}
	}
	return ownership.Rights{}, true, nil
}
