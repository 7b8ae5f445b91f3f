// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lot_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

var (
	seller, _   = member.Parse("ogrn::1027700132195")
	bidder, _   = member.Parse("ogrn::5027700132191")
	bidder2, _  = member.Parse("ogrn::1027739503703")
	outsider, _ = member.Parse("ogrn::1047700043500")

	opening = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	closing = time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)
	during  = time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	after   = time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
)

// Test main entrypoint
func TestMain(m *testing.M) {
	if err := setup(); nil != err {
		fmt.Fprintf(os.Stderr, "setup: %s\n", err)
		os.Exit(1)
	}
	result := m.Run()
	teardown()
	os.Exit(result)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup() error {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	_, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	return err
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// run one change in its own transaction, commit only on success
func apply(t *testing.T, f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	if err := f(trx); nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func mustApply(t *testing.T, f func(trx storage.Transaction) error) {
	if err := apply(t, f); nil != err {
		t.Fatalf("apply error: %s", err)
	}
}

// every test works on its own object so lots never share heads
var objectCounter = 2550000

func newObject(t *testing.T) object.Identity {
	objectCounter += 1
	id := object.Identity{Class: object.Invention, RegNumber: fmt.Sprintf("%d", objectCounter)}
	r := &transactionrecord.AddObject{
		Owner:  seller,
		Object: id,
		Ownership: []ownership.Ownership{
			{
				Rightholder:  seller,
				Distribution: ownership.DistributionAble,
				StartingTime: opening,
			},
		},
	}
	hash := merkle.NewDigest([]byte("add " + id.String()))
	mustApply(t, func(trx storage.Transaction) error {
		return registry.Register(trx, hash, r)
	})
	return id
}

func conditionsFor(id object.Identity) ownership.Conditions {
	return ownership.Conditions{
		ContractType: ownership.ContractLicense,
		Objects: []ownership.ObjectOwnership{
			{
				Object:        id,
				ContractTerm:  ownership.Term{Specification: ownership.SpecificationForever},
				CanDistribute: ownership.DistributionUnable,
			},
		},
	}
}

var lotCounter = 0

// open a lot on a fresh object
func openLot(t *testing.T, saleType transactionrecord.SaleType, price currency.Cost) (merkle.Digest, object.Identity) {
	lotCounter += 1
	id := newObject(t)
	r := &transactionrecord.OpenLot{
		Requestor: seller,
		Lot: transactionrecord.LotOffer{
			Name:        "bundle",
			Price:       price,
			SaleType:    saleType,
			OpeningTime: opening,
			ClosingTime: closing,
		},
		Conditions: conditionsFor(id),
		Nonce:      uint64(lotCounter),
	}
	hash := merkle.NewDigest([]byte(fmt.Sprintf("lot %d", lotCounter)))
	mustApply(t, func(trx storage.Transaction) error {
		return lot.Open(trx, hash, r)
	})
	return hash, id
}

func txHash(s string) merkle.Digest {
	return merkle.NewDigest([]byte(s))
}
