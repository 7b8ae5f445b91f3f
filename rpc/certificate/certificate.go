// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"crypto/x509"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Get - build the server side TLS configuration for a listener from
// PEM text
//
// when clientCA is not empty every client must present a certificate
// signed by one of its authorities
func Get(log *logger.L, name, certificate, key, clientCA string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	if "" != clientCA {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(clientCA)) {
			log.Errorf("%s: no usable client CA certificates", name)
			return nil, fin, fault.InvalidCertificate
		}
		tlsConfiguration.ClientCAs = pool
		tlsConfiguration.ClientAuth = tls.RequireAndVerifyClientCert
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in ipledgerd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
