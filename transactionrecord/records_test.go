// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

var (
	seller, _ = member.Parse("ogrn::1027700132195")
	buyer, _  = member.Parse("ogrn::5027700132191")
	invention = object.Identity{Class: object.Invention, RegNumber: "2550000"}

	opening = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	closing = time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)

	lotHash      = merkle.NewDigest([]byte("lot"))
	contractHash = merkle.NewDigest([]byte("contract"))
	deedHash     = merkle.NewDigest([]byte("deed"))
	appHash      = merkle.NewDigest([]byte("application"))
)

func testKey(t *testing.T) account.PrivateKey {
	key, err := account.NewPrivateKey(bytes.NewReader(bytes.Repeat([]byte{7}, 32)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func conditions() ownership.Conditions {
	return ownership.Conditions{
		ContractType: ownership.ContractLicense,
		Objects: []ownership.ObjectOwnership{
			{
				Object:        invention,
				ContractTerm:  ownership.Term{Specification: ownership.SpecificationForever},
				CanDistribute: ownership.DistributionUnable,
			},
		},
		PaymentConditions: "on signing",
	}
}

func signedAttachment() transactionrecord.SignedAttachment {
	return transactionrecord.SignedAttachment{
		File: transactionrecord.Attachment{
			Name:     "notification.pdf",
			FileType: transactionrecord.OtherAttachment,
			Hash:     merkle.NewDigest([]byte("notification")),
		},
		Signer:    seller,
		Signature: account.Signature{1, 2, 3},
	}
}

func allChecks() []ownership.Check {
	return []ownership.Check{
		ownership.CheckBlacklist.Ok(),
		ownership.CheckSellerDataValid.Error(),
		ownership.CheckRegisteredChanges.Unknown(),
	}
}

// one valid example of every record type
func allRecords(t *testing.T) []transactionrecord.Transaction {
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	attachment := transactionrecord.Attachment{
		Name:     "deed.pdf",
		FileType: transactionrecord.DeedAttachment,
		Hash:     deedHash,
	}
	signed := signedAttachment()

	return []transactionrecord.Transaction{
		&transactionrecord.AddObjectRequest{Requestor: seller, Object: invention, Nonce: 1},
		&transactionrecord.AddObjectGroupRequest{Requestor: seller, Nonce: 2},
		&transactionrecord.AddObject{
			Owner:  seller,
			Object: invention,
			Data:   "{}",
			Ownership: []ownership.Ownership{
				{
					Rightholder:    seller,
					Distribution:   ownership.DistributionAble,
					StartingTime:   opening,
					ExpirationTime: &expiry,
				},
			},
			Nonce: 3,
		},
		&transactionrecord.UpdateObject{
			Owner:        seller,
			Object:       invention,
			Unstructured: []ownership.Unstructured{{Data: "scanned record"}},
			Nonce:        4,
		},
		&transactionrecord.AttachFile{Requestor: seller, Attachment: attachment, Members: []member.Identity{buyer}, Nonce: 5},
		&transactionrecord.DeleteFiles{Requestor: seller, Documents: []merkle.Digest{deedHash}, Nonce: 6},
		&transactionrecord.AddAttachmentSign{Requestor: seller, Document: deedHash, Signature: account.Signature{9, 9}, Nonce: 7},
		&transactionrecord.AddParticipant{Member: seller, NodeName: "node-1", PublicKey: testKey(t).PublicKey()},
		&transactionrecord.OpenLot{
			Requestor: seller,
			Lot: transactionrecord.LotOffer{
				Name:        "patent bundle",
				Price:       10000,
				SaleType:    transactionrecord.Auction,
				OpeningTime: opening,
				ClosingTime: closing,
			},
			Conditions: conditions(),
			Nonce:      8,
		},
		&transactionrecord.CloseLot{Requestor: seller, Lot: lotHash, Nonce: 9},
		&transactionrecord.EditLotStatus{Lot: lotHash, Status: transactionrecord.LotVerified, Nonce: 10},
		&transactionrecord.ExecuteLot{Lot: lotHash, Nonce: 11},
		&transactionrecord.AddBid{Requestor: buyer, Lot: lotHash, Value: 12000, Nonce: 12},
		&transactionrecord.PublishBids{Lot: lotHash, Values: []currency.Cost{12000, 13000}, Nonce: 13},
		&transactionrecord.AcquireLot{Requestor: buyer, Lot: lotHash, Nonce: 14},
		&transactionrecord.PurchaseOffer{Requestor: buyer, Rightholder: seller, Price: 500, Conditions: conditions(), Nonce: 15},
		&transactionrecord.DraftContract{Contract: contractHash, Deed: deedHash, Application: appHash, Nonce: 16},
		&transactionrecord.RefuseContract{Requestor: buyer, Contract: contractHash, Reason: "changed my mind", Nonce: 17},
		&transactionrecord.ConfirmContract{Requestor: buyer, Contract: contractHash, Deed: deedHash, Application: appHash, Documents: []merkle.Digest{deedHash, appHash}, Nonce: 18},
		&transactionrecord.AttachContractFile{Requestor: buyer, Contract: contractHash, Attachment: attachment, Nonce: 19},
		&transactionrecord.DeleteContractFiles{Requestor: buyer, Contract: contractHash, Documents: []merkle.Digest{deedHash}, Nonce: 20},
		&transactionrecord.ApproveContract{Contract: contractHash, Attachment: signed, Nonce: 21},
		&transactionrecord.RejectContract{Contract: contractHash, Reason: "incomplete", Attachment: &signed, Nonce: 22},
		&transactionrecord.UpdateContract{Contract: contractHash, Requestor: buyer, Price: 700, Conditions: conditions(), Nonce: 23},
		&transactionrecord.RegisterContract{Contract: contractHash, Nonce: 24},
		&transactionrecord.AwaitUserActionContract{Contract: contractHash, Nonce: 25},
		&transactionrecord.SignContract{Requestor: buyer, Contract: contractHash, DeedSignature: account.Signature{1}, ApplicationSignature: account.Signature{2}, Nonce: 26},
		&transactionrecord.SubmitChecks{Contract: contractHash, Checks: allChecks(), Nonce: 27},
		&transactionrecord.AddTaxInfo{Contract: contractHash, Requestor: buyer, Number: "PAY-1", PaymentDate: opening, Amount: 100, Nonce: 28},
		&transactionrecord.ContractReferenceNumber{Contract: contractHash, ReferenceNumber: "RU-2020-1", Nonce: 29},
		&transactionrecord.ExtendLotPeriod{Requestor: seller, Lot: lotHash, NewExpiration: closing.Add(time.Hour), Nonce: 30},
	}
}

func TestPackUnpack(t *testing.T) {
	records := allRecords(t)
	seen := map[transactionrecord.TagType]bool{}

	for i, record := range records {
		packed, err := record.Pack()
		if !assert.Nil(t, err, "%d: %s pack error", i, transactionrecord.RecordName(record)) {
			continue
		}
		assert.Equal(t, record.Tag(), packed.Type(), "%d: packed type", i)

		unpacked, err := packed.Unpack()
		assert.Nil(t, err, "%d: %s unpack error", i, transactionrecord.RecordName(record))
		assert.Equal(t, record, unpacked, "%d: %s round trip", i, transactionrecord.RecordName(record))

		_, isRequested := record.(transactionrecord.Requested)
		assert.Equal(t, transactionrecord.Public == record.Tag().Origin(), isRequested, "%d: requestor only on public records", i)

		seen[record.Tag()] = true
	}
	assert.Equal(t, 31, len(seen), "every record type covered")
}

func TestUnpackTruncated(t *testing.T) {
	for i, record := range allRecords(t) {
		packed, err := record.Pack()
		if !assert.Nil(t, err, "%d: pack", i) {
			continue
		}
		for _, n := range []int{1, len(packed) / 2, len(packed) - 1} {
			_, err := packed[:n].Unpack()
			assert.True(t, fault.IsErrMalformed(err), "%d: %s truncated to %d: %v", i, transactionrecord.RecordName(record), n, err)
		}
		_, err = append(packed, 0).Unpack()
		assert.True(t, fault.IsErrMalformed(err), "%d: trailing byte", i)
	}

	_, err := transactionrecord.Packed{}.Unpack()
	assert.Equal(t, fault.NotATransactionPack, err)
	_, err = transactionrecord.Packed{8}.Unpack()
	assert.True(t, fault.IsErrMalformed(err), "unknown tag")
}

func TestValidate(t *testing.T) {
	badLot := transactionrecord.LotOffer{
		Name:        "x",
		SaleType:    transactionrecord.Auction,
		OpeningTime: closing,
		ClosingTime: opening,
	}
	noPrice := transactionrecord.LotOffer{
		Name:        "x",
		SaleType:    transactionrecord.PrivateSale,
		OpeningTime: opening,
		ClosingTime: closing,
	}
	badName := transactionrecord.Attachment{Name: "a/b", Hash: deedHash}

	items := []struct {
		record transactionrecord.Transaction
		kind   fault.Kind
	}{
		{&transactionrecord.AddObjectRequest{Object: invention}, fault.KindMissingOrEmptyField},
		{&transactionrecord.AddObjectRequest{Requestor: member.Identity{Type: member.Ogrn, Number: "1"}, Object: invention}, fault.KindMalformedInput},
		{&transactionrecord.CloseLot{Requestor: seller}, fault.KindMissingOrEmptyField},
		{&transactionrecord.EditLotStatus{Lot: lotHash, Status: transactionrecord.LotExecuted}, fault.KindMalformedInput},
		{&transactionrecord.OpenLot{Requestor: seller, Lot: badLot, Conditions: conditions()}, fault.KindMalformedInput},
		{&transactionrecord.OpenLot{Requestor: seller, Lot: noPrice, Conditions: conditions()}, fault.KindMalformedInput},
		{&transactionrecord.OpenLot{Requestor: seller, Lot: transactionrecord.LotOffer{SaleType: transactionrecord.Auction, OpeningTime: opening, ClosingTime: closing}, Conditions: conditions()}, fault.KindMissingOrEmptyField},
		{&transactionrecord.AttachFile{Requestor: seller, Attachment: badName}, fault.KindMalformedInput},
		{&transactionrecord.PublishBids{Lot: lotHash}, fault.KindMissingOrEmptyField},
		{&transactionrecord.PurchaseOffer{Requestor: seller, Rightholder: seller, Price: 1, Conditions: conditions()}, fault.KindAuthorizationDenied},
		{&transactionrecord.SubmitChecks{Contract: contractHash, Checks: []ownership.Check{ownership.CheckCanSell.Ok()}}, fault.KindMalformedInput},
		{&transactionrecord.DeleteFiles{Requestor: seller}, fault.KindMissingOrEmptyField},
		{&transactionrecord.SignContract{Requestor: buyer, Contract: contractHash, DeedSignature: account.Signature{1}}, fault.KindMissingOrEmptyField},
	}

	for i, item := range items {
		_, err := item.record.Pack()
		assert.Equal(t, item.kind, fault.KindOf(err), "%d: %s: %v", i, transactionrecord.RecordName(item.record), err)
	}
}

func TestFileNames(t *testing.T) {
	assert.Nil(t, transactionrecord.ValidFileName("договор.pdf"))
	assert.NotNil(t, transactionrecord.ValidFileName(""))
	assert.NotNil(t, transactionrecord.ValidFileName("a:b"))
	assert.NotNil(t, transactionrecord.ValidFileName("a\x00b"))
	assert.NotNil(t, transactionrecord.ValidFileName(string(bytes.Repeat([]byte("x"), 257))))
}

func TestTagNames(t *testing.T) {
	tag, ok := transactionrecord.TagFromName("ExtendLotPeriod")
	assert.True(t, ok)
	assert.Equal(t, transactionrecord.ExtendLotPeriodTag, tag)
	assert.Equal(t, transactionrecord.Public, tag.Origin())
	assert.Equal(t, transactionrecord.Private, transactionrecord.SubmitChecksTag.Origin())
	assert.False(t, transactionrecord.TagType(8).IsValid())
}
