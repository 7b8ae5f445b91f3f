// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/util"
)

func TestVarint64(t *testing.T) {
	items := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range items {
		encoded := util.ToVarint64(item.value)
		assert.Equal(t, item.encoded, encoded, "%d: encode %x", i, item.value)

		value, n := util.FromVarint64(append(encoded, 0x55, 0xaa))
		assert.Equal(t, item.value, value, "%d: decode", i)
		assert.Equal(t, len(item.encoded), n, "%d: count", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	value, n := util.FromVarint64([]byte{0x80, 0x80})
	assert.Equal(t, uint64(0), value)
	assert.Equal(t, 0, n)

	value, n = util.FromVarint64(nil)
	assert.Equal(t, uint64(0), value)
	assert.Equal(t, 0, n)
}

func TestBase58(t *testing.T) {
	items := []struct {
		b []byte
		s string
	}{
		{[]byte{}, ""},
		{[]byte{0x00, 0x01}, "12"},
		{[]byte("hello"), "Cn8eVZg"},
	}
	for i, item := range items {
		assert.Equal(t, item.s, util.ToBase58(item.b), "%d: encode", i)
		assert.Equal(t, item.b, util.FromBase58(item.s), "%d: decode", i)
	}
	assert.Equal(t, []byte{}, util.FromBase58("0OIl"))
}
