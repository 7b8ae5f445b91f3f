// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

// Verifier - the signature capability used by the validator
type Verifier interface {
	Verify(key PublicKey, payload []byte, signature Signature) bool
}

// ED25519Verifier - checks signatures with ed25519
type ED25519Verifier struct{}

// Verify - true only for a correct signature by the key
func (ED25519Verifier) Verify(key PublicKey, payload []byte, signature Signature) bool {
	return nil == key.CheckSignature(payload, signature)
}
