// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}
	assert.Equal(t, uint64(5), c1.Uint64(), "wrong count after increments")

	c1.Decrement()
	assert.Equal(t, uint64(4), c1.Uint64(), "wrong count after decrement")

	for i := 0; i < 4; i += 1 {
		c1.Decrement()
	}
	assert.True(t, c1.IsZero(), "counter did not return to zero")

	// twos complement -1
	c1.Decrement()
	assert.Equal(t, ^uint64(0), c1.Uint64(), "counter did not underflow")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first slot refused")
	assert.True(t, c.Acquire(2), "second slot refused")
	assert.False(t, c.Acquire(2), "third slot accepted")
	assert.Equal(t, uint64(2), c.Uint64(), "refused slot was kept")

	c.Decrement()
	assert.True(t, c.Acquire(2), "released slot refused")
}
