// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
)

const certificateLifetime = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if fileExists(certificateFileName) {
		return fmt.Errorf("certificate: %q already exists", certificateFileName)
	}

	if fileExists(privateKeyFileName) {
		return fmt.Errorf("private key: %q already exists", privateKeyFileName)
	}

	org := "ipledgerd self signed cert for: " + name
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
