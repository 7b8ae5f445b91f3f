// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/contract"
	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/txlog"
)

// queries read the latest commit and never take the writer lock

// Transaction - a log entry
func (r *reservoirData) Transaction(hash merkle.Digest) (txlog.Entry, error) {
	return txlog.Get(storage.Committed, hash)
}

// Participant - a registered member
func (r *reservoirData) Participant(m member.Identity) (registry.Participant, error) {
	p, found, err := registry.GetParticipant(storage.Committed, m)
	if nil != err {
		return registry.Participant{}, err
	}
	if !found {
		return registry.Participant{}, fault.Detailf(fault.UnknownRequestor, "%s", m)
	}
	return p, nil
}

// Object - current record of an object
func (r *reservoirData) Object(id object.Identity) (registry.Object, error) {
	return registry.Get(storage.Committed, id)
}

// ObjectsByOwner - objects currently held by a member
func (r *reservoirData) ObjectsByOwner(owner member.Identity) ([]object.Identity, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snap.Release()
	return registry.ObjectsByOwner(snap, owner)
}

// ObjectHistory - transactions that changed an object, oldest first
func (r *reservoirData) ObjectHistory(id object.Identity) ([]merkle.Digest, error) {
	return registry.History(storage.Committed, id)
}

// ObjectRequests - pending requests for the data source
func (r *reservoirData) ObjectRequests(requestor member.Identity) ([]registry.Request, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snap.Release()
	return registry.Requests(snap, requestor)
}

// Document - a live document visible to the viewer
func (r *reservoirData) Document(hash merkle.Digest, viewer member.Identity) (document.Document, error) {
	d, err := document.Get(storage.Committed, hash)
	if nil != err {
		return document.Document{}, err
	}
	if !d.VisibleTo(viewer) {
		return document.Document{}, fault.Detailf(fault.DocumentNotFound, "%s", hash)
	}
	return d, nil
}

// Lots - page through all lots in hash order
func (r *reservoirData) Lots(start merkle.Digest, count int) ([]lot.Lot, merkle.Digest, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, merkle.Digest{}, err
	}
	defer snap.Release()
	return lot.List(snap, start, count, r.now())
}

// MemberLots - lots a member sells or bid on
func (r *reservoirData) MemberLots(m member.Identity) ([]merkle.Digest, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snap.Release()
	return lot.ByMember(snap, m)
}

// Lot - a lot with its effective status and bids as the viewer may
// see them
func (r *reservoirData) Lot(hash merkle.Digest, viewer member.Identity) (lot.View, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return lot.View{}, err
	}
	defer snap.Release()
	return lot.Describe(snap, hash, viewer, r.now())
}

// Contract - the stored contract
func (r *reservoirData) Contract(hash merkle.Digest) (contract.Contract, error) {
	return contract.Get(storage.Committed, hash)
}

// MemberContracts - contracts a member is party to
func (r *reservoirData) MemberContracts(m member.Identity) ([]merkle.Digest, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return nil, err
	}
	defer snap.Release()
	return contract.ByMember(snap, m)
}

func (r *reservoirData) now() time.Time {
	return r.clock().UTC()
}
