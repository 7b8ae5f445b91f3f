// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/contract"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitContract = 200
	rateBurstContract = 100
)

// Contract - an RPC entry for the contract engine
type Contract struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Rsvr    reservoir.Reservoir
}

// Arguments - one contract
type Arguments struct {
	Contract merkle.Digest `json:"contract"`
}

// MemberArguments - contracts a member is party to
type MemberArguments struct {
	Member member.Identity `json:"member"`
}

// ByMemberReply - contract hashes
type ByMemberReply struct {
	Contracts []merkle.Digest `json:"contracts"`
}

func New(log *logger.L, rsvr reservoir.Reservoir) *Contract {
	return &Contract{
		Log:     log,
		Limiter: ratelimit.New(rateLimitContract, rateBurstContract),
		Rsvr:    rsvr,
	}
}

// Get - the stored contract
func (c *Contract) Get(arguments *Arguments, reply *contract.Contract) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == c.Rsvr {
		return fault.MissingReservoir
	}

	record, err := c.Rsvr.Contract(arguments.Contract)
	if nil != err {
		return err
	}
	*reply = record
	return nil
}

// ByMember - contracts where the member is buyer or seller
func (c *Contract) ByMember(arguments *MemberArguments, reply *ByMemberReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == c.Rsvr {
		return fault.MissingReservoir
	}

	contracts, err := c.Rsvr.MemberContracts(arguments.Member)
	if nil != err {
		return err
	}
	reply.Contracts = contracts
	return nil
}
