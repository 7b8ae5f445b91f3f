// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/contract"
	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/ipledgerd/txlog"
	"github.com/bitmark-inc/logger"
)

// Configuration - validator options
type Configuration struct {
	// accept ApproveContract straight from registering
	ApproveFromRegistering bool

	// signature capability, ed25519 when nil
	Verifier account.Verifier

	// evaluation time for new submissions, time.Now when nil
	Clock func() time.Time
}

// Reservoir - the interface used by the RPC services
type Reservoir interface {
	Submit(*transactionrecord.Envelope, transactionrecord.Origin) (merkle.Digest, error)

	Transaction(merkle.Digest) (txlog.Entry, error)
	Participant(member.Identity) (registry.Participant, error)
	Object(object.Identity) (registry.Object, error)
	ObjectsByOwner(member.Identity) ([]object.Identity, error)
	ObjectHistory(object.Identity) ([]merkle.Digest, error)
	ObjectRequests(member.Identity) ([]registry.Request, error)
	Document(merkle.Digest, member.Identity) (document.Document, error)
	Lots(merkle.Digest, int) ([]lot.Lot, merkle.Digest, error)
	MemberLots(member.Identity) ([]merkle.Digest, error)
	Lot(merkle.Digest, member.Identity) (lot.View, error)
	Contract(merkle.Digest) (contract.Contract, error)
	MemberContracts(member.Identity) ([]merkle.Digest, error)
}

type reservoirData struct {
	sync.Mutex

	log *logger.L

	approveFromRegistering bool
	verifier               account.Verifier
	clock                  func() time.Time

	enabled bool
}

// global data
var globalData reservoirData

// Initialise - start the validator
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.enabled {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("reservoir")
	if nil == globalData.log {
		return fault.InvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	globalData.approveFromRegistering = configuration.ApproveFromRegistering

	globalData.verifier = configuration.Verifier
	if nil == globalData.verifier {
		globalData.verifier = account.ED25519Verifier{}
	}

	globalData.clock = configuration.Clock
	if nil == globalData.clock {
		globalData.clock = time.Now
	}

	globalData.enabled = true

	globalData.log.Infof("log entries: %d  approve from registering: %t", txlog.Count(), globalData.approveFromRegistering)
	return nil
}

// Finalise - stop accepting transactions
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.enabled = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Get - the running reservoir, nil before Initialise
func Get() Reservoir {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return nil
	}
	return &globalData
}
