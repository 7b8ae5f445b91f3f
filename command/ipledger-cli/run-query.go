// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ipledgerd/command/ipledger-cli/rpccalls"
)

// connect, make one call and print its reply
func query(c *cli.Context, want int, f func(client *rpccalls.Client, args []string) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if len(args) < want {
		return ErrMissingArgument
	}
	if len(args) > want {
		return ErrTooManyArguments
	}

	client, err := rpccalls.NewClient(m.options)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := f(client, args)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransaction(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.GetTransaction(args[0])
	})
}

func runParticipant(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.GetParticipant(args[0])
	})
}

func runObject(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.GetObject(args[0])
	})
}

func runObjects(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.ObjectsByOwner(args[0])
	})
}

func runHistory(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.ObjectHistory(args[0])
	})
}

func runRequests(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.ObjectRequests(args[0])
	})
}

func runLots(c *cli.Context) error {
	return query(c, 0, func(client *rpccalls.Client, _ []string) (interface{}, error) {
		return client.ListLots(c.String("start"), c.Int("count"))
	})
}

func runMemberLots(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.MemberLots(args[0])
	})
}

func runLot(c *cli.Context) error {
	return query(c, 2, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.GetLot(args[0], args[1])
	})
}

func runContract(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.GetContract(args[0])
	})
}

func runMemberContracts(c *cli.Context) error {
	return query(c, 1, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.MemberContracts(args[0])
	})
}

func runDocument(c *cli.Context) error {
	return query(c, 2, func(client *rpccalls.Client, args []string) (interface{}, error) {
		return client.GetDocument(args[0], args[1])
	})
}

func runInfo(c *cli.Context) error {
	return query(c, 0, func(client *rpccalls.Client, _ []string) (interface{}, error) {
		return client.GetInfo()
	})
}
