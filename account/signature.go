// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Signature - raw signature bytes, hex in text form
type Signature []byte

func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to hex
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return fault.Detailf(fault.InvalidSignature, "not hex")
	}
	*signature = sig[:byteCount]
	return nil
}
