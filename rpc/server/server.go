// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/ipledgerd/counter"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/contract"
	"github.com/bitmark-inc/ipledgerd/rpc/document"
	"github.com/bitmark-inc/ipledgerd/rpc/lot"
	"github.com/bitmark-inc/ipledgerd/rpc/node"
	"github.com/bitmark-inc/ipledgerd/rpc/object"
	"github.com/bitmark-inc/ipledgerd/rpc/participant"
	"github.com/bitmark-inc/ipledgerd/rpc/transaction"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// Options - what one interface's server is bound to
type Options struct {
	Version     string
	Origin      transactionrecord.Origin
	Fingerprint [32]byte
	Count       *counter.Counter
	LogCount    func() uint64
}

// Create - the RPC services for one interface
//
// submissions are tagged with the interface so the validator can
// reject records sent to the wrong one
func Create(log *logger.L, options Options, rsvr reservoir.Reservoir) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(transaction.New(log, options.Origin, rsvr))
	_ = server.Register(participant.New(log, rsvr))
	_ = server.Register(object.New(log, rsvr))
	_ = server.Register(lot.New(log, rsvr))
	_ = server.Register(contract.New(log, rsvr))
	_ = server.Register(document.New(log, rsvr))
	_ = server.Register(node.New(log, start, options.Version, options.Origin, options.Fingerprint, options.Count, options.LogCount))

	return server
}
