// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// both the database and its snapshots
type iterable interface {
	NewIterator(*util.Range, *ldb_opt.ReadOptions) iterator.Iterator
}

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	source   iterable
	maxRange util.Range
}

func newFetchCursor(p *PoolHandle, source iterable) *FetchCursor {
	return &FetchCursor{
		pool:     p,
		source:   source,
		maxRange: p.fullRange(),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Prefix - restrict the cursor to keys starting with a sub-prefix
func (cursor *FetchCursor) Prefix(sub []byte) *FetchCursor {
	r := util.BytesPrefix(cursor.pool.prefixKey(sub))
	cursor.maxRange = *r
	return cursor
}

// Fetch - return some elements starting from the cursor position,
// repeated calls continue after the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	if nil == cursor.source {
		return nil, nil
	}

	iter := cursor.source.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// the smallest key after the last one returned
	if n > 0 {
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	if nil == cursor.source {
		return nil
	}

	iter := cursor.source.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {
		e := copyElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
