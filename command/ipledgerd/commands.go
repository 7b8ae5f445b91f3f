// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/txlog"
	"github.com/bitmark-inc/logger"
)

const (
	identityPrivateKeyFilename = "participant.private"
	identityPublicKeyFilename  = "participant.public"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-identity", "id":
		privateKeyFilename := getFilenameWithDirectory(arguments, identityPrivateKeyFilename)
		publicKeyFilename := getFilenameWithDirectory(arguments, identityPublicKeyFilename)

		if err := makeIdentity(privateKeyFilename, publicKeyFilename); nil != err {
			fmt.Printf("generate identity: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "rebuild", "dump-log", "log":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate-identity [DIR]    (id)     - create participant private key in: %q\n", "DIR/"+identityPrivateKeyFilename)
		fmt.Printf("                                        and the public key in: %q\n", "DIR/"+identityPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  rebuild                             - drop derived state and replay the transaction log\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-log S [E]             (log)    - dump log entries S..E as JSON to stdout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// storage and the validator are running so these commands can
// access and/or change the database
func processDataCommand(log *logger.L, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "rebuild":
		log.Warn("forced rebuild")
		if err := storage.Reindex(); nil != err {
			exitwithstatus.Message("reindex error: %s", err)
		}
		if err := reservoir.Rebuild(); nil != err {
			exitwithstatus.Message("rebuild error: %s", err)
		}
		fmt.Printf("rebuilt from: %d log entries\n", txlog.Count())

	case "dump-log", "log":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing sequence number argument")
		}
		start, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err || start < 1 {
			exitwithstatus.Message("error: invalid sequence number: %q", arguments[0])
		}
		finish := start
		if len(arguments) >= 2 {
			finish, err = strconv.ParseUint(arguments[1], 10, 64)
			if nil != err || finish < start {
				exitwithstatus.Message("error: invalid ending sequence number: %q", arguments[1])
			}
		}
		if err := dumpLog(start, finish); nil != err {
			exitwithstatus.Message("dump log error: %s", err)
		}

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// stop after finish without failing the replay
var errDumpFinished = fmt.Errorf("dump finished")

func dumpLog(start uint64, finish uint64) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := txlog.Replay(start, func(entry txlog.Entry) error {
		if entry.Sequence > finish {
			return errDumpFinished
		}
		return encoder.Encode(struct {
			Sequence uint64 `json:"sequence"`
			TxHash   string `json:"tx_hash"`
			txlog.Entry
		}{
			Sequence: entry.Sequence,
			TxHash:   entry.Hash.String(),
			Entry:    entry,
		})
	})
	if errDumpFinished == err {
		return nil
	}
	return err
}

// a fresh participant key pair; the public key goes into AddParticipant
func makeIdentity(privateKeyFilename string, publicKeyFilename string) error {
	if fileExists(privateKeyFilename) {
		return fmt.Errorf("private key: %q already exists", privateKeyFilename)
	}

	key, err := account.NewPrivateKey(nil)
	if nil != err {
		return err
	}

	if err := ioutil.WriteFile(privateKeyFilename, []byte(key.String()+"\n"), 0600); nil != err {
		return err
	}
	if err := ioutil.WriteFile(publicKeyFilename, []byte(key.PublicKey().String()+"\n"), 0644); nil != err {
		_ = os.Remove(privateKeyFilename)
		return err
	}
	return nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
