// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the open transaction, so that reads
// inside the transaction see them before commit
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// entries never expire, Clear empties the cache at the end of each
// transaction
const cleanupInterval = 2 * time.Minute

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// Get - a deleted key is found with op dbDelete so the caller must
// not fall back to the database
func (c *dbCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}

	data := obj.(cacheData)
	return data.value, data.op, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
