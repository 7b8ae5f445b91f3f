// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, high bit set
// on all but the final byte; the ninth byte carries a full eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value&0x7f)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert the Varint64 at the start of buffer to a uint64
//
// also returns the number of bytes consumed; 0, 0 when truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer) && count < Varint64MaximumBytes; count += 1 {
		b := uint64(buffer[count])
		if Varint64MaximumBytes-1 == count {
			return result | b<<shift, count + 1
		}
		result |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0
}
