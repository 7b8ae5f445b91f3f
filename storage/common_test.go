// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

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

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
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

	// start logging
	_ = logger.Initialise(logging)

	mustReindex, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		return err
	}
	if mustReindex {
		return fmt.Errorf("new database must not need reindex")
	}
	return nil
}

// post test cleanup
func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

func mustBegin(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return trx
}

// write elements to the test pool in one commit
func populate(t *testing.T, elements []storage.Element) {
	trx := mustBegin(t)
	for _, e := range elements {
		trx.Put(storage.Pool.TestData, e.Key, e.Value)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// remove everything from the test pool
func clearTestData(t *testing.T) {
	trx := mustBegin(t)
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		trx.Delete(storage.Pool.TestData, key)
		return nil
	})
	if nil != err {
		t.Fatalf("map error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
