// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - SHA3-256 identifier for transactions, lots, contracts and
// documents
//
// the hex text form is used in both String and JSON so identifiers
// copied from a log line can be pasted into a query unchanged
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// IsZero - true for the unset digest
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - hex form for %s
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex form for %#v
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if DigestLength != hex.DecodedLen(len(s)) {
		return fault.InvalidDigest
	}
	buffer := make([]byte, DigestLength)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.InvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromHex - parse a hex string
func DigestFromHex(s string) (Digest, error) {
	d := Digest{}
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.InvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}
