// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	cache := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, _, found := cache.Get(key)
	assert.False(t, found, "key already exists")

	cache.Set(dbPut, key, expected)
	actual, op, found := cache.Get(key)
	assert.True(t, found)
	assert.Equal(t, dbPut, op)
	assert.Equal(t, expected, actual)
}

func TestCacheClear(t *testing.T) {
	cache := newCache()

	cache.Set(dbPut, "test", []byte{'a'})
	cache.Clear()

	_, _, found := cache.Get("test")
	assert.False(t, found, "clear did not empty the cache")
}

func TestCacheDelete(t *testing.T) {
	cache := newCache()

	cache.Set(dbPut, "test", []byte{'a'})
	cache.Set(dbDelete, "test", nil)

	_, op, found := cache.Get("test")
	assert.True(t, found, "delete must shadow the database")
	assert.Equal(t, dbDelete, op)
}
