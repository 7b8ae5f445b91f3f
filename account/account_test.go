// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/fault"
)

// deterministic key source for repeatable tests
func testKey(t *testing.T, seed byte) account.PrivateKey {
	key, err := account.NewPrivateKey(bytes.NewReader(bytes.Repeat([]byte{seed}, 32)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func TestPublicKeyText(t *testing.T) {
	pub := testKey(t, 1).PublicKey()

	s := pub.String()
	decoded, err := account.PublicKeyFromBase58(s)
	assert.Nil(t, err, "decode")
	assert.Equal(t, pub.Bytes(), decoded.Bytes(), "round trip")

	buffer, err := json.Marshal(struct{ Key account.PublicKey }{pub})
	assert.Nil(t, err, "marshal")
	var back struct{ Key account.PublicKey }
	assert.Nil(t, json.Unmarshal(buffer, &back), "unmarshal")
	assert.Equal(t, pub.Bytes(), back.Key.Bytes(), "json round trip")

	// corrupt the checksum
	b := []byte(s)
	if 'a' == b[len(b)-1] {
		b[len(b)-1] = 'b'
	} else {
		b[len(b)-1] = 'a'
	}
	_, err = account.PublicKeyFromBase58(string(b))
	assert.True(t, fault.IsErrMalformed(err), "checksum: %v", err)

	_, err = account.PublicKeyFromBase58("0OIl")
	assert.True(t, fault.IsErrMalformed(err), "not base58")

	_, err = account.PublicKeyFromBase58(testKey(t, 1).String())
	assert.True(t, fault.IsErrMalformed(err), "private key is not a public key")
}

func TestZeroPublicKeyText(t *testing.T) {
	buffer, err := json.Marshal(struct{ Key account.PublicKey }{})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"Key":""}`, string(buffer), "empty text")

	back := struct{ Key account.PublicKey }{testKey(t, 1).PublicKey()}
	assert.Nil(t, json.Unmarshal(buffer, &back), "unmarshal")
	assert.True(t, back.Key.IsZero(), "zero key round trip")

	_, err = account.PublicKeyFromBase58("")
	assert.True(t, fault.IsErrMalformed(err), "empty base58 is still no key")
}

func TestPrivateKeyText(t *testing.T) {
	key := testKey(t, 2)
	decoded, err := account.PrivateKeyFromBase58(key.String())
	assert.Nil(t, err)
	assert.Equal(t, key.PublicKey().Bytes(), decoded.PublicKey().Bytes())

	_, err = account.PrivateKeyFromBase58(key.PublicKey().String())
	assert.True(t, fault.IsErrMalformed(err))
}

func TestSignatures(t *testing.T) {
	key := testKey(t, 3)
	otherKey := testKey(t, 4)
	message := []byte("packed transaction")

	signature := key.Sign(message)
	v := account.ED25519Verifier{}

	assert.True(t, v.Verify(key.PublicKey(), message, signature))
	assert.False(t, v.Verify(otherKey.PublicKey(), message, signature))
	assert.False(t, v.Verify(key.PublicKey(), []byte("other"), signature))
	assert.False(t, v.Verify(key.PublicKey(), message, signature[1:]))
	assert.False(t, v.Verify(account.PublicKey{}, message, signature))

	err := key.PublicKey().CheckSignature(message, account.Signature{1, 2, 3})
	assert.True(t, fault.IsErrSignature(err))
}

func TestSignatureText(t *testing.T) {
	var s account.Signature
	assert.Nil(t, s.UnmarshalText([]byte("0a0b")))
	assert.Equal(t, account.Signature{0x0a, 0x0b}, s)
	assert.Equal(t, "0a0b", s.String())
	assert.True(t, fault.IsErrSignature(s.UnmarshalText([]byte("xyz"))))
}
