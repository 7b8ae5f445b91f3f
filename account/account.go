// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/util"
)

// supported key algorithms
const (
	ED25519 = 1
)

const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmShift = 4
)

// PublicKey - a participant's registered signing key
//
// text form is base58 of variant, key bytes and a four byte sha3
// checksum
type PublicKey struct {
	key ed25519.PublicKey
}

// PublicKeyFromBytes - wrap raw ed25519 key bytes
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if ed25519.PublicKeySize != len(b) {
		return PublicKey{}, fault.Detailf(fault.InvalidPublicKey, "length: %d", len(b))
	}
	key := make([]byte, ed25519.PublicKeySize)
	copy(key, b)
	return PublicKey{key: key}, nil
}

// PublicKeyFromBase58 - decode the text form
func PublicKeyFromBase58(s string) (PublicKey, error) {
	decoded := util.FromBase58(s)
	if 0 == len(decoded) {
		return PublicKey{}, fault.Detailf(fault.InvalidPublicKey, "not base58")
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded)
	if 0 == keyVariantLength || publicKeyCode != keyVariant&publicKeyCode {
		return PublicKey{}, fault.Detailf(fault.InvalidPublicKey, "not a public key")
	}
	if ED25519 != keyVariant>>algorithmShift {
		return PublicKey{}, fault.Detailf(fault.InvalidPublicKey, "algorithm: %d", keyVariant>>algorithmShift)
	}

	checksumStart := len(decoded) - checksumLength
	if checksumStart <= keyVariantLength {
		return PublicKey{}, fault.Detailf(fault.InvalidPublicKey, "too short")
	}
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return PublicKey{}, fault.Detailf(fault.InvalidPublicKey, "checksum mismatch")
	}
	return PublicKeyFromBytes(decoded[keyVariantLength:checksumStart])
}

// IsZero - no key set
func (p PublicKey) IsZero() bool {
	return 0 == len(p.key)
}

// Bytes - the raw ed25519 key
func (p PublicKey) Bytes() []byte {
	return p.key
}

func (p PublicKey) String() string {
	if p.IsZero() {
		return ""
	}
	buffer := append([]byte{byte(ED25519<<algorithmShift) | publicKeyCode}, p.key...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - keys travel in base58
func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - decode and check a base58 key, empty text is the
// zero key
func (p *PublicKey) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*p = PublicKey{}
		return nil
	}
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*p = k
	return nil
}

// CheckSignature - verify a signature over a message
func (p PublicKey) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) || p.IsZero() {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(p.key, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
