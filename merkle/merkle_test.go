// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/merkle"
)

func TestRoot(t *testing.T) {
	a := merkle.NewDigest([]byte("a"))
	b := merkle.NewDigest([]byte("b"))
	c := merkle.NewDigest([]byte("c"))

	assert.Equal(t, merkle.Digest{}, merkle.Root(nil), "empty root")
	assert.Equal(t, a, merkle.Root([]merkle.Digest{a}), "single root")

	ab := merkle.NewDigest(append(a[:], b[:]...))
	assert.Equal(t, ab, merkle.Root([]merkle.Digest{a, b}), "pair root")

	cc := merkle.NewDigest(append(c[:], c[:]...))
	abc := merkle.NewDigest(append(ab[:], cc[:]...))
	assert.Equal(t, abc, merkle.Root([]merkle.Digest{a, b, c}), "odd root")

	assert.NotEqual(t, merkle.Root([]merkle.Digest{a, b}), merkle.Root([]merkle.Digest{b, a}), "order must matter")
}

func TestDigestText(t *testing.T) {
	d := merkle.NewDigest([]byte("transaction"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal")

	var r merkle.Digest
	err = json.Unmarshal(buffer, &r)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, d, r, "round trip")

	p, err := merkle.DigestFromHex(d.String())
	assert.Nil(t, err, "from hex")
	assert.Equal(t, d, p, "hex parse")

	_, err = merkle.DigestFromHex("abcd")
	assert.Equal(t, fault.InvalidDigest, err, "short digest")

	_, err = merkle.DigestFromHex("zz" + d.String()[2:])
	assert.Equal(t, fault.InvalidDigest, err, "bad hex")

	assert.True(t, merkle.Digest{}.IsZero())
	assert.False(t, d.IsZero())
}
