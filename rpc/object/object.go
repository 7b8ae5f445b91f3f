// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitObject = 200
	rateBurstObject = 100
)

// Object - an RPC entry for registry queries
type Object struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Rsvr    reservoir.Reservoir
}

// Arguments - one object
type Arguments struct {
	Object object.Identity `json:"object"`
}

// MemberArguments - objects or requests belonging to a member
type MemberArguments struct {
	Member member.Identity `json:"member"`
}

// ByOwnerReply - objects held by the member
type ByOwnerReply struct {
	Objects []object.Identity `json:"objects"`
}

// HistoryReply - transactions that changed the object, oldest first
type HistoryReply struct {
	TxHashes []merkle.Digest `json:"tx_hashes"`
}

// RequestsReply - pending data source requests
type RequestsReply struct {
	Requests []registry.Request `json:"requests"`
}

func New(log *logger.L, rsvr reservoir.Reservoir) *Object {
	return &Object{
		Log:     log,
		Limiter: ratelimit.New(rateLimitObject, rateBurstObject),
		Rsvr:    rsvr,
	}
}

// Get - the current registry record of an object
func (o *Object) Get(arguments *Arguments, reply *registry.Object) error {
	if err := o.ready(); nil != err {
		return err
	}

	record, err := o.Rsvr.Object(arguments.Object)
	if nil != err {
		return err
	}
	*reply = record
	return nil
}

// ByOwner - objects currently held by a member
func (o *Object) ByOwner(arguments *MemberArguments, reply *ByOwnerReply) error {
	if err := o.ready(); nil != err {
		return err
	}

	objects, err := o.Rsvr.ObjectsByOwner(arguments.Member)
	if nil != err {
		return err
	}
	reply.Objects = objects
	return nil
}

// History - transactions that changed an object
func (o *Object) History(arguments *Arguments, reply *HistoryReply) error {
	if err := o.ready(); nil != err {
		return err
	}

	history, err := o.Rsvr.ObjectHistory(arguments.Object)
	if nil != err {
		return err
	}
	reply.TxHashes = history
	return nil
}

// Requests - pending object requests made by a member
func (o *Object) Requests(arguments *MemberArguments, reply *RequestsReply) error {
	if err := o.ready(); nil != err {
		return err
	}

	requests, err := o.Rsvr.ObjectRequests(arguments.Member)
	if nil != err {
		return err
	}
	reply.Requests = requests
	return nil
}

func (o *Object) ready() error {
	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}
	if nil == o.Rsvr {
		return fault.MissingReservoir
	}
	return nil
}
