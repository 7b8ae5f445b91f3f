// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// GetRecord - decode a JSON record, false if the key is absent
func GetRecord(g Getter, pool *PoolHandle, key []byte, record interface{}) (bool, error) {
	buffer := g.Get(pool, key)
	if nil == buffer {
		return false, nil
	}
	err := json.Unmarshal(buffer, record)
	if nil != err {
		return true, fault.Detailf(fault.CorruptRecord, "%c %x: %s", pool.prefix, key, err)
	}
	return true, nil
}

// PutRecord - encode a record as JSON into the transaction
func PutRecord(trx Transaction, pool *PoolHandle, key []byte, record interface{}) error {
	buffer, err := json.Marshal(record)
	if nil != err {
		return err
	}
	trx.Put(pool, key, buffer)
	return nil
}
