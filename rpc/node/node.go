// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/counter"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Origin      transactionrecord.Origin
	Fingerprint [32]byte
	LogCount    func() uint64
	counter     *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version      string                   `json:"version"`
	Uptime       string                   `json:"uptime"`
	Interface    transactionrecord.Origin `json:"interface"`
	Transactions uint64                   `json:"transactions"`
	RPCs         uint64                   `json:"rpcs"`
	Fingerprint  string                   `json:"fingerprint"`
}

func New(log *logger.L, start time.Time, version string, origin transactionrecord.Origin, fingerprint [32]byte, counter *counter.Counter, logCount func() uint64) *Node {
	return &Node{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		Origin:      origin,
		Fingerprint: fingerprint,
		LogCount:    logCount,
		counter:     counter,
	}
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.LogCount {
		return fault.DatabaseIsNotSet
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Interface = node.Origin
	reply.Transactions = node.LogCount()
	reply.RPCs = node.counter.Uint64()
	reply.Fingerprint = hex.EncodeToString(node.Fingerprint[:])
	return nil
}
