// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
)

func TestParseCost(t *testing.T) {
	items := []struct {
		text  string
		cost  currency.Cost
		valid bool
	}{
		{"0", 0, true},
		{"100", 10000, true},
		{"100.5", 10050, true},
		{"100.05", 10005, true},
		{"100,25", 10025, true},
		{"1.99", 199, true},
		{"100.", 0, false},
		{"100.123", 0, false},
		{".5", 0, false},
		{"-1", 0, false},
		{"1e5", 0, false},
		{"1e50", 0, false},
		{"12a34", 0, false},
		{"100 5", 0, false},
		{"", 0, false},
		{"184467440737095517", 0, false},
	}

	for i, item := range items {
		c, err := currency.ParseCost(item.text)
		if item.valid {
			assert.Nil(t, err, "%d: %q", i, item.text)
			assert.Equal(t, item.cost, c, "%d: %q", i, item.text)
		} else {
			assert.True(t, fault.IsErrMalformed(err), "%d: %q expected malformed, got: %v", i, item.text, err)
		}
	}
}

func TestCostString(t *testing.T) {
	assert.Equal(t, "0.00", currency.Cost(0).String())
	assert.Equal(t, "1.05", currency.Cost(105).String())
	assert.Equal(t, "100.50", currency.Cost(10050).String())
}
