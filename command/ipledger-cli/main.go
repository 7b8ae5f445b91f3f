// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ipledgerd/command/ipledger-cli/rpccalls"
)

type metadata struct {
	options rpccalls.Options
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ipledger-cli"
	app.Usage = "submit transactions to and query an ipledgerd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " ipledgerd host/IP and port, `HOST:PORT`",
			EnvVar: "IPLEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:  "ca",
			Value: "",
			Usage: " verify the node certificate against CA `FILE`",
		},
		cli.StringFlag{
			Name:  "certificate",
			Value: "",
			Usage: " client certificate `FILE` for the private interface",
		},
		cli.StringFlag{
			Name:  "key",
			Value: "",
			Usage: " client certificate private key `FILE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "pack",
			Usage:     "pack a JSON record into an unsigned envelope",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*transaction type `NAME` e.g. OpenLot",
				},
				cli.StringFlag{
					Name:  "record, r",
					Value: "",
					Usage: "*record JSON `FILE`, - for stdin",
				},
			},
			Action: runPack,
		},
		{
			Name:      "sign",
			Usage:     "add a member signature to an envelope",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "envelope, e",
					Value: "",
					Usage: "*envelope JSON `FILE`, - for stdin",
				},
				cli.StringFlag{
					Name:  "member, m",
					Value: "",
					Usage: "*signing member `TYPE::ID`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "*member private key `FILE`",
				},
			},
			Action: runSign,
		},
		{
			Name:      "submit",
			Usage:     "submit a signed envelope",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "envelope, e",
					Value: "",
					Usage: "*envelope JSON `FILE`, - for stdin",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "tx",
			Usage:     "fetch a log entry",
			ArgsUsage: "TX-HASH",
			Action:    runTransaction,
		},
		{
			Name:      "participant",
			Usage:     "fetch a registered member",
			ArgsUsage: "TYPE::ID",
			Action:    runParticipant,
		},
		{
			Name:      "object",
			Usage:     "fetch the current record of an object",
			ArgsUsage: "CLASS::REG-NUMBER",
			Action:    runObject,
		},
		{
			Name:      "objects",
			Usage:     "list objects held by a member",
			ArgsUsage: "TYPE::ID",
			Action:    runObjects,
		},
		{
			Name:      "history",
			Usage:     "list transactions that changed an object",
			ArgsUsage: "CLASS::REG-NUMBER",
			Action:    runHistory,
		},
		{
			Name:      "requests",
			Usage:     "list pending data source requests of a member",
			ArgsUsage: "TYPE::ID",
			Action:    runRequests,
		},
		{
			Name:      "lots",
			Usage:     "page through all lots",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first lot `HASH` of the page",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " lots per page `COUNT`",
				},
			},
			Action: runLots,
		},
		{
			Name:      "member-lots",
			Usage:     "list lots a member sells or bid on",
			ArgsUsage: "TYPE::ID",
			Action:    runMemberLots,
		},
		{
			Name:      "lot",
			Usage:     "fetch a lot as a viewer sees it",
			ArgsUsage: "LOT-HASH VIEWER",
			Action:    runLot,
		},
		{
			Name:      "contract",
			Usage:     "fetch a contract",
			ArgsUsage: "CONTRACT-HASH",
			Action:    runContract,
		},
		{
			Name:      "member-contracts",
			Usage:     "list contracts a member is party to",
			ArgsUsage: "TYPE::ID",
			Action:    runMemberContracts,
		},
		{
			Name:      "document",
			Usage:     "fetch a document as a viewer sees it",
			ArgsUsage: "DOCUMENT-HASH VIEWER",
			Action:    runDocument,
		},
		{
			Name:   "info",
			Usage:  "display ipledgerd status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display ipledger-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			options: rpccalls.Options{
				Connect:     c.GlobalString("connect"),
				CA:          c.GlobalString("ca"),
				Certificate: c.GlobalString("certificate"),
				PrivateKey:  c.GlobalString("key"),
				Verbose:     c.GlobalBool("verbose"),
				Handle:      c.App.ErrWriter,
			},
			e: c.App.ErrWriter,
			w: c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
