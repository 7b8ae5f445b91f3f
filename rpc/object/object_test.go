// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ipledgerd/rpc/mocks"
	rpcobject "github.com/bitmark-inc/ipledgerd/rpc/object"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

var (
	owner, _ = member.Parse("ogrn::1027700132195")
	id       = object.Identity{Class: object.Invention, RegNumber: "4550001"}
)

func TestObjectGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := rpcobject.New(logger.New(fixtures.LogCategory), r)

	record := registry.Object{
		Identity: id,
		Owner:    owner,
		History:  []merkle.Digest{{1}},
	}
	r.EXPECT().Object(id).Return(record, nil).Times(1)

	var reply registry.Object
	err := o.Get(&rpcobject.Arguments{Object: id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply, "wrong object")
}

func TestObjectGetWhenNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := rpcobject.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().Object(id).Return(registry.Object{}, fault.ObjectNotFound).Times(1)

	var reply registry.Object
	err := o.Get(&rpcobject.Arguments{Object: id}, &reply)
	assert.Equal(t, fault.ObjectNotFound, err, "wrong error")
}

func TestObjectByOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := rpcobject.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().ObjectsByOwner(owner).Return([]object.Identity{id}, nil).Times(1)

	var reply rpcobject.ByOwnerReply
	err := o.ByOwner(&rpcobject.MemberArguments{Member: owner}, &reply)
	assert.Nil(t, err, "wrong ByOwner")
	assert.Equal(t, []object.Identity{id}, reply.Objects, "wrong objects")
}

func TestObjectHistory(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := rpcobject.New(logger.New(fixtures.LogCategory), r)

	history := []merkle.Digest{{1}, {2}}
	r.EXPECT().ObjectHistory(id).Return(history, nil).Times(1)

	var reply rpcobject.HistoryReply
	err := o.History(&rpcobject.Arguments{Object: id}, &reply)
	assert.Nil(t, err, "wrong History")
	assert.Equal(t, history, reply.TxHashes, "wrong history")
}

func TestObjectRequests(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	o := rpcobject.New(logger.New(fixtures.LogCategory), r)

	requests := []registry.Request{
		{Kind: transactionrecord.AddObjectRequestTag, TxHash: merkle.Digest{3}},
	}
	r.EXPECT().ObjectRequests(owner).Return(requests, nil).Times(1)

	var reply rpcobject.RequestsReply
	err := o.Requests(&rpcobject.MemberArguments{Member: owner}, &reply)
	assert.Nil(t, err, "wrong Requests")
	assert.Equal(t, requests, reply.Requests, "wrong requests")
}

func TestObjectWhenReservoirEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	o := rpcobject.New(logger.New(fixtures.LogCategory), nil)

	err := o.Get(&rpcobject.Arguments{Object: id}, &registry.Object{})
	assert.Equal(t, fault.MissingReservoir, err, "wrong Get error")

	err = o.ByOwner(&rpcobject.MemberArguments{Member: owner}, &rpcobject.ByOwnerReply{})
	assert.Equal(t, fault.MissingReservoir, err, "wrong ByOwner error")
}
