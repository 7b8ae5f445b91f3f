// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Options - how to reach an ipledgerd interface
type Options struct {
	Connect     string
	CA          string // verify the server against this CA file, otherwise skip verification
	Certificate string // client certificate file for the private interface
	PrivateKey  string
	Verbose     bool
	Handle      io.Writer // if verbose is set output items here
}

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer
}

// NewClient - create a RPC connection to an ipledgerd
func NewClient(options Options) (*Client, error) {

	tlsConfig, err := clientTLS(options)
	if nil != err {
		return nil, err
	}

	conn, err := tls.Dial("tcp", options.Connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: options.Verbose,
		handle:  options.Handle,
	}
	return r, nil
}

// Close - shutdown the ipledgerd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func clientTLS(options Options) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != options.CA {
		pem, err := ioutil.ReadFile(options.CA)
		if nil != err {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fault.InvalidCertificate
		}
		tlsConfig.InsecureSkipVerify = false
		tlsConfig.RootCAs = pool
		if host, _, err := net.SplitHostPort(options.Connect); nil == err {
			tlsConfig.ServerName = host
		}
	}

	if "" != options.Certificate || "" != options.PrivateKey {
		certificate, err := tls.LoadX509KeyPair(options.Certificate, options.PrivateKey)
		if nil != err {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{certificate}
	}
	return tlsConfig, nil
}
