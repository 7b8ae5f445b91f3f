// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/util"
)

// PrivateKey - a participant's signing key, held only by clients
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a key pair from the given source, nil
// means the system random source
func NewPrivateKey(source io.Reader) (PrivateKey, error) {
	if nil == source {
		source = rand.Reader
	}
	_, key, err := ed25519.GenerateKey(source)
	if nil != err {
		return PrivateKey{}, err
	}
	return PrivateKey{key: key}, nil
}

// PrivateKeyFromBase58 - decode the text form
func PrivateKeyFromBase58(s string) (PrivateKey, error) {
	decoded := util.FromBase58(s)
	if 0 == len(decoded) {
		return PrivateKey{}, fault.Detailf(fault.InvalidPrivateKey, "not base58")
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded)
	if 0 == keyVariantLength || publicKeyCode == keyVariant&publicKeyCode {
		return PrivateKey{}, fault.Detailf(fault.InvalidPrivateKey, "not a private key")
	}
	if ED25519 != keyVariant>>algorithmShift {
		return PrivateKey{}, fault.Detailf(fault.InvalidPrivateKey, "algorithm: %d", keyVariant>>algorithmShift)
	}

	checksumStart := len(decoded) - checksumLength
	if checksumStart-keyVariantLength != ed25519.PrivateKeySize {
		return PrivateKey{}, fault.Detailf(fault.InvalidPrivateKey, "length")
	}
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return PrivateKey{}, fault.Detailf(fault.InvalidPrivateKey, "checksum mismatch")
	}
	key := make([]byte, ed25519.PrivateKeySize)
	copy(key, decoded[keyVariantLength:checksumStart])
	return PrivateKey{key: key}, nil
}

// PublicKey - the matching public key
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey{key: p.key.Public().(ed25519.PublicKey)}
}

// Sign - sign a message
func (p PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(p.key, message)
}

func (p PrivateKey) String() string {
	buffer := append([]byte{byte(ED25519 << algorithmShift)}, p.key...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - keys travel in base58
func (p PrivateKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - decode and check a base58 key
func (p *PrivateKey) UnmarshalText(s []byte) error {
	k, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*p = k
	return nil
}
