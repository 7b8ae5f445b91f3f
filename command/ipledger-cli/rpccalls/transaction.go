// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/rpc/transaction"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Submit - send one signed envelope; a rejection is in the reply
func (client *Client) Submit(envelope *transactionrecord.Envelope) (*transaction.SubmitReply, error) {
	var reply transaction.SubmitReply
	err := client.call("Transaction.Submit", "Submit", transaction.SubmitArguments{Envelope: envelope}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTransaction - fetch a log entry
func (client *Client) GetTransaction(txHash string) (*transaction.GetReply, error) {
	var hash merkle.Digest
	if err := hash.UnmarshalText([]byte(txHash)); nil != err {
		return nil, err
	}

	var reply transaction.GetReply
	err := client.call("Transaction.Get", "Transaction", transaction.Arguments{TxHash: hash}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
