// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/rpc"
	"github.com/bitmark-inc/ipledgerd/rpc/fixtures"
	"github.com/bitmark-inc/ipledgerd/rpc/listeners"
	"github.com/bitmark-inc/ipledgerd/rpc/mocks"
	"github.com/bitmark-inc/ipledgerd/rpc/participant"
)

// write a fresh certificate pair into the test directory
func certificateFiles(t *testing.T) (string, string) {
	cert, key, err := fixtures.Certificate()
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	certFile := filepath.Join("testing", "rpc.crt")
	keyFile := filepath.Join("testing", "rpc.key")
	if err := ioutil.WriteFile(certFile, []byte(cert), 0600); nil != err {
		t.Fatalf("write certificate error: %s", err)
	}
	if err := ioutil.WriteFile(keyFile, []byte(key), 0600); nil != err {
		t.Fatalf("write key error: %s", err)
	}
	return certFile, keyFile
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReservoir(ctl)

	certFile, keyFile := certificateFiles(t)
	listen := fmt.Sprintf("127.0.0.1:%d", 30000+rand.Intn(30000))

	configuration := rpc.Configuration{
		Public: listeners.RPCConfiguration{
			MaximumConnections: 10,
			Listen:             []string{listen},
			Certificate:        certFile,
			PrivateKey:         keyFile,
		},
	}

	err := rpc.Initialise(&configuration, "1.0", r)
	assert.Nil(t, err, "wrong Initialise")

	m, _ := member.Parse("ogrn::1027700132195")
	r.EXPECT().Participant(m).Return(registry.Participant{Member: m, NodeName: "n"}, nil).Times(1)

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.Nil(t, err, "wrong dial")
	client := jsonrpc.NewClient(conn)

	var reply registry.Participant
	err = client.Call("Participant.Get", &participant.Arguments{Member: m}, &reply)
	assert.Nil(t, err, "wrong Participant.Get")
	assert.Equal(t, "n", reply.NodeName, "wrong node name")
	assert.True(t, reply.PublicKey.IsZero(), "wrong public key")
	client.Close()

	err = rpc.Initialise(&configuration, "1.0", r)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")

	_, err = tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.NotNil(t, err, "listener still open after Finalise")
}

func TestInitialiseWhenReservoirMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := rpc.Initialise(&rpc.Configuration{}, "1.0", nil)
	assert.Equal(t, fault.MissingReservoir, err, "wrong error")
}

func TestInitialiseWhenCertificateMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	configuration := rpc.Configuration{
		Private: listeners.RPCConfiguration{
			MaximumConnections: 10,
			Listen:             []string{"127.0.0.1:1234"},
			Certificate:        filepath.Join("testing", "missing.crt"),
			PrivateKey:         filepath.Join("testing", "missing.key"),
		},
	}

	err := rpc.Initialise(&configuration, "1.0", mocks.NewMockReservoir(ctl))
	assert.NotNil(t, err, "wrong Initialise")

	err = rpc.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "wrong Finalise")
}
