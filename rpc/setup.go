// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/ipledgerd/counter"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/certificate"
	"github.com/bitmark-inc/ipledgerd/rpc/listeners"
	"github.com/bitmark-inc/ipledgerd/rpc/server"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/ipledgerd/txlog"
	"github.com/bitmark-inc/logger"
)

const (
	publicName  = "public_rpc"
	privateName = "private_rpc"
)

// Configuration - both RPC interfaces; an interface with no listen
// addresses is disabled
type Configuration struct {
	Public  listeners.RPCConfiguration `gluamapper:"public" json:"public"`
	Private listeners.RPCConfiguration `gluamapper:"private" json:"private"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection counts
var (
	connectionCountPublic  counter.Counter
	connectionCountPrivate counter.Counter
)

// Initialise - start listening on both interfaces
func Initialise(configuration *Configuration, version string, rsvr reservoir.Reservoir) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if nil == rsvr {
		log.Critical("reservoir is not running")
		return fault.MissingReservoir
	}

	interfaces := []struct {
		name          string
		origin        transactionrecord.Origin
		configuration *listeners.RPCConfiguration
		count         *counter.Counter
	}{
		{publicName, transactionrecord.Public, &configuration.Public, &connectionCountPublic},
		{privateName, transactionrecord.Private, &configuration.Private, &connectionCountPrivate},
	}

	for _, i := range interfaces {
		if 0 == len(i.configuration.Listen) {
			log.Infof("disable: %s", i.name)
			continue
		}
		if transactionrecord.Private == i.origin && "" == i.configuration.ClientCA {
			log.Warnf("%s: no client CA, any TLS client may administer the registry", i.name)
		}

		l, err := start(log, i.name, i.origin, i.configuration, i.count, version, rsvr)
		if nil != err {
			stopAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func start(log *logger.L, name string, origin transactionrecord.Origin, configuration *listeners.RPCConfiguration, count *counter.Counter, version string, rsvr reservoir.Reservoir) (listeners.Listener, error) {

	cert, err := ioutil.ReadFile(configuration.Certificate)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, configuration.Certificate, err)
		return nil, err
	}
	key, err := ioutil.ReadFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, configuration.PrivateKey, err)
		return nil, err
	}
	clientCA := []byte{}
	if "" != configuration.ClientCA {
		clientCA, err = ioutil.ReadFile(configuration.ClientCA)
		if nil != err {
			log.Errorf("%s client CA: %q  error: %s", name, configuration.ClientCA, err)
			return nil, err
		}
	}

	tlsConfig, fingerprint, err := certificate.Get(log, name, string(cert), string(key), string(clientCA))
	if nil != err {
		return nil, err
	}

	options := server.Options{
		Version:     version,
		Origin:      origin,
		Fingerprint: fingerprint,
		Count:       count,
		LogCount:    txlog.Count,
	}

	l, err := listeners.NewRPC(
		name,
		configuration,
		log,
		count,
		server.Create(log, options, rsvr),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return nil, err
	}

	if err := l.Serve(); nil != err {
		return nil, err
	}
	return l, nil
}

func stopAll() {
	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Errorf("close listener error: %s", err)
		}
	}
	globalData.listeners = nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
