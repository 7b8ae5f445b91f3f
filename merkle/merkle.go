// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// Root - compute the merkle root of an ordered list of ids
//
// an odd entry at any level is paired with itself; the root of an
// empty list is the zero digest and a single id is its own root
func Root(ids []Digest) Digest {
	if 0 == len(ids) {
		return Digest{}
	}

	level := make([]Digest, len(ids))
	copy(level, ids)

	for len(level) > 1 {
		next := make([]Digest, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			j := i + 1
			if j == len(level) {
				j = i // compensate for odd number
			}
			b := make([]byte, 0, 2*DigestLength)
			b = append(b, level[i][:]...)
			b = append(b, level[j][:]...)
			next = append(next, NewDigest(b))
		}
		level = next
	}
	return level[0]
}
