// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
//
// pools tagged log:"keep" survive a reindex, everything else is
// derived from them
type pools struct {
	Transactions    *PoolHandle `prefix:"T" log:"keep"`
	Sequence        *PoolHandle `prefix:"S" log:"keep"`
	Participants    *PoolHandle `prefix:"P"`
	Objects         *PoolHandle `prefix:"O"`
	OwnerObjects    *PoolHandle `prefix:"W"`
	ObjectRequests  *PoolHandle `prefix:"Q"`
	Documents       *PoolHandle `prefix:"F"`
	Lots            *PoolHandle `prefix:"L"`
	MemberLots      *PoolHandle `prefix:"M"`
	Bids            *PoolHandle `prefix:"B"`
	Contracts       *PoolHandle `prefix:"C"`
	MemberContracts *PoolHandle `prefix:"K"`
	Payments        *PoolHandle `prefix:"Y"`
	TestData        *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	database *leveldb.DB
	trx      *transaction
	derived  []*PoolHandle
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed, the returned flag
// is true when derived state was dropped and must be rebuilt from the
// log before ReindexDone is called
func Initialise(database string, readOnly bool) (bool, error) {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false
	mustReindex := false

	if nil != poolData.database {
		return mustReindex, fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return mustReindex, err
	}
	poolData.database = db

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return mustReindex, fault.Detailf(fault.IncompatibleDatabaseVersion, "%d > %d", version, currentDBVersion)
	}

	if readOnly && 0 != version && version != currentDBVersion {
		logger.Criticalf("database version: %d  current: %d", version, currentDBVersion)
		return mustReindex, fault.Detailf(fault.IncompatibleDatabaseVersion, "read only: %d", version)
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	poolData.derived = nil

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return mustReindex, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))

		if "keep" != fieldInfo.Tag.Get("log") {
			poolData.derived = append(poolData.derived, p)
		}
	}

	poolData.trx = newTransaction(db)

	switch {
	case readOnly:
	case 0 == version && isEmpty(db):
		// new database so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return mustReindex, err
		}
	case version < currentDBVersion:
		mustReindex = true
		logger.Criticalf("database version: %d < current version: %d  dropping derived state", version, currentDBVersion)
		err = dropDerived(db, poolData.derived)
		if nil != err {
			return mustReindex, err
		}
	}

	ok = true // prevent db close
	return mustReindex, nil
}

func dbClose() {
	if nil != poolData.database {
		poolData.database.Close()
		poolData.database = nil
	}
	poolData.trx = nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// ReindexDone - called at the end of reindex
func ReindexDone() error {
	poolData.Lock()
	defer poolData.Unlock()
	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}
	return putVersion(poolData.database, currentDBVersion)
}

// Reindex - drop all derived state and mark the database for
// rebuilding from the log
func Reindex() error {
	poolData.Lock()
	defer poolData.Unlock()
	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}
	err := poolData.database.Delete(versionKey, nil)
	if nil != err {
		return err
	}
	return dropDerived(poolData.database, poolData.derived)
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

func isEmpty(db *leveldb.DB) bool {
	iter := db.NewIterator(nil, nil)
	defer iter.Release()
	return !iter.First()
}

// delete every key of the derived pools in one batch
func dropDerived(db *leveldb.DB, derived []*PoolHandle) error {
	batch := new(leveldb.Batch)
	for _, p := range derived {
		iter := db.NewIterator(&ldb_util.Range{Start: []byte{p.prefix}, Limit: p.limit}, nil)
		for iter.Next() {
			key := make([]byte, len(iter.Key()))
			copy(key, iter.Key())
			batch.Delete(key)
		}
		iter.Release()
		if err := iter.Error(); nil != err {
			return err
		}
	}
	return db.Write(batch, nil)
}

// NewDBTransaction - start the single write transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.trx {
		return nil, fault.DatabaseIsNotSet
	}
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
