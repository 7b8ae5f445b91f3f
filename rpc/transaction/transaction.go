// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Transaction - an RPC entry for submitting and fetching transactions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Origin  transactionrecord.Origin
	Rsvr    reservoir.Reservoir
}

// SubmitArguments - one envelope to validate
type SubmitArguments struct {
	Envelope *transactionrecord.Envelope `json:"envelope"`
}

// SubmitReply - either the committed hash or the rejection
type SubmitReply struct {
	TxHash merkle.Digest `json:"tx_hash"`
	Kind   fault.Kind    `json:"kind,omitempty"`
	Errors []string      `json:"errors,omitempty"`
}

// Arguments - a transaction hash
type Arguments struct {
	TxHash merkle.Digest `json:"tx_hash"`
}

// GetReply - a committed log entry
type GetReply struct {
	Sequence  uint64                     `json:"sequence"`
	TxHash    merkle.Digest              `json:"tx_hash"`
	Timestamp time.Time                  `json:"timestamp"`
	Envelope  transactionrecord.Envelope `json:"envelope"`
	Type      transactionrecord.TagType  `json:"type"`
}

// New - create the service bound to the interface it is served on
func New(log *logger.L, origin transactionrecord.Origin, rsvr reservoir.Reservoir) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: ratelimit.New(rateLimitTransaction, rateBurstTransaction),
		Origin:  origin,
		Rsvr:    rsvr,
	}
}

// Submit - validate and commit one transaction
//
// a rejection is a normal reply carrying its kind and messages;
// only failures to process the call are returned as errors
func (t *Transaction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Rsvr {
		return fault.MissingReservoir
	}

	if nil == arguments || nil == arguments.Envelope {
		return fault.NotATransactionPack
	}

	hash, err := t.Rsvr.Submit(arguments.Envelope, t.Origin)
	if nil != err {
		kind := fault.KindOf(err)
		t.Log.Debugf("submit on: %s  rejected: %s  error: %s", t.Origin, kind, err)
		reply.Kind = kind
		reply.Errors = fault.Messages(err)
		return nil
	}

	reply.TxHash = hash
	return nil
}

// Get - fetch a committed transaction
func (t *Transaction) Get(arguments *Arguments, reply *GetReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Rsvr {
		return fault.MissingReservoir
	}

	entry, err := t.Rsvr.Transaction(arguments.TxHash)
	if nil != err {
		return err
	}

	reply.Sequence = entry.Sequence
	reply.TxHash = entry.Hash
	reply.Timestamp = entry.Timestamp
	reply.Envelope = entry.Envelope
	reply.Type = entry.Envelope.Packed.Type()
	return nil
}
