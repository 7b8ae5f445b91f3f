// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lot_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/rpc/fixtures"
	rpclot "github.com/bitmark-inc/ipledgerd/rpc/lot"
	"github.com/bitmark-inc/ipledgerd/rpc/mocks"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

var (
	seller, _ = member.Parse("ogrn::1027700132195")
	bidder, _ = member.Parse("ogrn::5027700132191")
)

func TestLotList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	l := rpclot.New(logger.New(fixtures.LogCategory), r)

	lots := []lot.Lot{
		{TxHash: merkle.Digest{1}, Seller: seller, Price: 100},
		{TxHash: merkle.Digest{2}, Seller: seller, Price: 200},
	}
	next := merkle.Digest{3}
	r.EXPECT().Lots(merkle.Digest{}, 2).Return(lots, next, nil).Times(1)

	var reply rpclot.ListReply
	err := l.List(&rpclot.ListArguments{Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, lots, reply.Lots, "wrong lots")
	assert.Equal(t, next, reply.Next, "wrong next")
}

func TestLotListWhenCountInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	l := rpclot.New(logger.New(fixtures.LogCategory), r)

	for _, count := range []int{0, -5, 101} {
		var reply rpclot.ListReply
		err := l.List(&rpclot.ListArguments{Count: count}, &reply)
		assert.Equal(t, fault.InvalidCount, err, "count: %d", count)
	}
}

func TestLotByMember(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	l := rpclot.New(logger.New(fixtures.LogCategory), r)

	hashes := []merkle.Digest{{1}, {2}}
	r.EXPECT().MemberLots(bidder).Return(hashes, nil).Times(1)

	var reply rpclot.ByMemberReply
	err := l.ByMember(&rpclot.MemberArguments{Member: bidder}, &reply)
	assert.Nil(t, err, "wrong ByMember")
	assert.Equal(t, hashes, reply.Lots, "wrong lots")
}

func TestLotGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	l := rpclot.New(logger.New(fixtures.LogCategory), r)

	hash := merkle.Digest{1}
	view := lot.View{
		Lot:    lot.Lot{TxHash: hash, Seller: seller, Price: 100},
		Status: transactionrecord.LotVerified,
		Bids: []lot.Bid{
			{TxHash: merkle.Digest{9}, Lot: hash, Requestor: bidder, Value: 150},
		},
	}
	r.EXPECT().Lot(hash, bidder).Return(view, nil).Times(1)

	var reply lot.View
	err := l.Get(&rpclot.Arguments{Lot: hash, Viewer: bidder}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, view, reply, "wrong view")
}

func TestLotGetWhenNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)
	l := rpclot.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().Lot(merkle.Digest{4}, seller).Return(lot.View{}, fault.LotNotFound).Times(1)

	var reply lot.View
	err := l.Get(&rpclot.Arguments{Lot: merkle.Digest{4}, Viewer: seller}, &reply)
	assert.Equal(t, fault.LotNotFound, err, "wrong error")
}

func TestLotWhenReservoirEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l := rpclot.New(logger.New(fixtures.LogCategory), nil)

	err := l.List(&rpclot.ListArguments{Count: 1}, &rpclot.ListReply{})
	assert.Equal(t, fault.MissingReservoir, err, "wrong List error")

	err = l.Get(&rpclot.Arguments{}, &lot.View{})
	assert.Equal(t, fault.MissingReservoir, err, "wrong Get error")
}
