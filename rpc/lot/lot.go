// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lot

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitLot = 200
	rateBurstLot = 100

	maximumLotCount = 100
)

// Lot - an RPC entry for the lot engine
type Lot struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Rsvr    reservoir.Reservoir
}

// ListArguments - page through lots starting at a hash
type ListArguments struct {
	Start merkle.Digest `json:"start"`
	Count int           `json:"count"`
}

// ListReply - one page and the start of the next, zero when done
type ListReply struct {
	Lots []lot.Lot     `json:"lots"`
	Next merkle.Digest `json:"next"`
}

// MemberArguments - lots a member sells or bid on
type MemberArguments struct {
	Member member.Identity `json:"member"`
}

// ByMemberReply - lot hashes
type ByMemberReply struct {
	Lots []merkle.Digest `json:"lots"`
}

// Arguments - one lot seen by a viewer
type Arguments struct {
	Lot    merkle.Digest   `json:"lot"`
	Viewer member.Identity `json:"viewer"`
}

func New(log *logger.L, rsvr reservoir.Reservoir) *Lot {
	return &Lot{
		Log:     log,
		Limiter: ratelimit.New(rateLimitLot, rateBurstLot),
		Rsvr:    rsvr,
	}
}

// List - a page of lots in hash order
func (l *Lot) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(l.Limiter, arguments.Count, maximumLotCount); nil != err {
		return err
	}

	if nil == l.Rsvr {
		return fault.MissingReservoir
	}

	lots, next, err := l.Rsvr.Lots(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Lots = lots
	reply.Next = next
	return nil
}

// ByMember - lots a member takes part in
func (l *Lot) ByMember(arguments *MemberArguments, reply *ByMemberReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == l.Rsvr {
		return fault.MissingReservoir
	}

	lots, err := l.Rsvr.MemberLots(arguments.Member)
	if nil != err {
		return err
	}
	reply.Lots = lots
	return nil
}

// Get - a lot with its effective status; bid values stay hidden
// until published unless the viewer is the seller or the bidder
func (l *Lot) Get(arguments *Arguments, reply *lot.View) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == l.Rsvr {
		return fault.MissingReservoir
	}

	view, err := l.Rsvr.Lot(arguments.Lot, arguments.Viewer)
	if nil != err {
		return err
	}
	*reply = view
	return nil
}
