// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/counter"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ipledgerd/rpc/node"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.Counter(3)
	start := time.Now().Add(-time.Minute)

	n := node.New(logger.New(fixtures.LogCategory), start, "v1.2.3", transactionrecord.Private, [32]byte{0xab, 0xcd}, &c, func() uint64 { return 42 })

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "v1.2.3", reply.Version, "wrong version")
	assert.Equal(t, transactionrecord.Private, reply.Interface, "wrong interface")
	assert.Equal(t, uint64(42), reply.Transactions, "wrong transaction count")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connection count")
	assert.Equal(t, "abcd"+strings.Repeat("0", 60), reply.Fingerprint, "wrong fingerprint")

	uptime, err := time.ParseDuration(reply.Uptime)
	assert.Nil(t, err, "wrong uptime format")
	assert.True(t, uptime >= time.Minute, "wrong uptime")
}

func TestNodeInfoWhenDatabaseNotSet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "v1", transactionrecord.Public, [32]byte{}, &c, nil)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}
