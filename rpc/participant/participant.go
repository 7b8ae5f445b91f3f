// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package participant

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitParticipant = 100
	rateBurstParticipant = 50
)

// Participant - an RPC entry for the participant registry
type Participant struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Rsvr    reservoir.Reservoir
}

// Arguments - one member
type Arguments struct {
	Member member.Identity `json:"member"`
}

func New(log *logger.L, rsvr reservoir.Reservoir) *Participant {
	return &Participant{
		Log:     log,
		Limiter: ratelimit.New(rateLimitParticipant, rateBurstParticipant),
		Rsvr:    rsvr,
	}
}

// Get - a registered participant and its public key
func (p *Participant) Get(arguments *Arguments, reply *registry.Participant) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if nil == p.Rsvr {
		return fault.MissingReservoir
	}

	participant, err := p.Rsvr.Participant(arguments.Member)
	if nil != err {
		return err
	}
	*reply = participant
	return nil
}
