// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txlog_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/logger"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
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
