// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/ipledgerd/counter"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// RPCConfiguration - configuration file data for one RPC interface
//
// certificate, private key and client CA are file names; an empty
// client CA accepts clients without certificates
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	ClientCA           string   `gluamapper:"client_ca" json:"client_ca"`
}

type endpoint struct {
	network string
	address string
}

type rpcListener struct {
	sync.Mutex

	name           string
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	endpoints      []endpoint
	listeners      []net.Listener
}

// NewRPC - validate the configuration of one interface
func NewRPC(
	name string,
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", name, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", name)
		return nil, fault.MissingParameters
	}

	endpoints, err := parseListenAddress(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen: %q  error: %s", name, configuration.Listen, err)
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", name, certificateFingerprint)

	return &rpcListener{
		name:           name,
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		endpoints:      endpoints,
	}, nil
}

// Serve - start accepting on every address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, e := range r.endpoints {
		r.log.Infof("starting %s server: %s", r.name, e.address)
		l, err := tls.Listen(e.network, e.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("%s listen error: %s", r.name, err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.doServeRPC(l)
	}
	return nil
}

// Close - stop accepting; open connections finish on their own
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()
	return r.closeAll()
}

func (r *rpcListener) closeAll() error {
	var first error
	for _, l := range r.listeners {
		if err := l.Close(); nil != err && nil == first {
			first = err
		}
	}
	r.listeners = nil
	return first
}

func (r *rpcListener) doServeRPC(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("%s accept terminated: %s", r.name, err)
			return
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("%s connection limit: %d reached, dropping: %s", r.name, r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
}

// "*:PORT" listens on tcp4 and tcp6, "[v6]:PORT" on tcp6, anything
// else on tcp4
func parseListenAddress(addrs []string) ([]endpoint, error) {
	parsed := make([]endpoint, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			return nil, fault.InvalidIpAddress
		}

		e := endpoint{
			network: "tcp4",
			address: listen,
		}
		switch {
		case "*" == host:
			host = "::"
			e.network = "tcp"
			e.address = net.JoinHostPort(host, port)
		case strings.HasPrefix(listen, "["):
			e.network = "tcp6"
		}

		if ip := net.ParseIP(host); nil == ip {
			return nil, fault.InvalidIpAddress
		}
		parsed[i] = e
	}

	return parsed, nil
}
