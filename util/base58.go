// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode bytes with the bitcoin alphabet
func ToBase58(b []byte) string {
	return base58.Encode(b)
}

// FromBase58 - decode, returns empty on any error
func FromBase58(s string) []byte {
	b, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return b
}
