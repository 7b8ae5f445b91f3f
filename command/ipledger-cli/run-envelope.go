// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/command/ipledger-cli/rpccalls"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

func runPack(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	typeName, err := checkFlag(c, "type")
	if nil != err {
		return err
	}
	recordFile, err := checkFlag(c, "record")
	if nil != err {
		return err
	}

	text, err := readInput(recordFile)
	if nil != err {
		return err
	}

	envelope, err := packRecord(typeName, text)
	if nil != err {
		return err
	}
	return printJson(m.w, envelope)
}

func runSign(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	envelopeFile, err := checkFlag(c, "envelope")
	if nil != err {
		return err
	}
	who, err := checkFlag(c, "member")
	if nil != err {
		return err
	}
	keyFile, err := checkFlag(c, "private-key")
	if nil != err {
		return err
	}

	envelope, err := readEnvelope(envelopeFile)
	if nil != err {
		return err
	}

	keyText, err := ioutil.ReadFile(keyFile)
	if nil != err {
		return err
	}

	if err := signEnvelope(envelope, who, string(keyText)); nil != err {
		return err
	}
	return printJson(m.w, envelope)
}

func runSubmit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	envelopeFile, err := checkFlag(c, "envelope")
	if nil != err {
		return err
	}

	envelope, err := readEnvelope(envelopeFile)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.options)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(envelope)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

// packRecord - decode a record of the named type and pack it for its
// own interface
func packRecord(typeName string, text []byte) (*transactionrecord.Envelope, error) {
	tag, ok := transactionrecord.TagFromName(typeName)
	if !ok {
		return nil, ErrUnknownType
	}
	record, ok := transactionrecord.New(tag)
	if !ok {
		return nil, ErrUnknownType
	}

	decoder := json.NewDecoder(strings.NewReader(string(text)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(record); nil != err {
		return nil, err
	}
	return transactionrecord.NewEnvelope(record)
}

// signEnvelope - sign as a member with a base58 private key
func signEnvelope(envelope *transactionrecord.Envelope, who string, keyText string) error {
	signer, err := member.Parse(who)
	if nil != err {
		return err
	}
	key, err := account.PrivateKeyFromBase58(strings.TrimSpace(keyText))
	if nil != err {
		return err
	}
	envelope.Sign(signer, key)
	return nil
}

func readEnvelope(name string) (*transactionrecord.Envelope, error) {
	text, err := readInput(name)
	if nil != err {
		return nil, err
	}
	var envelope transactionrecord.Envelope
	if err := json.Unmarshal(text, &envelope); nil != err {
		return nil, err
	}
	return &envelope, nil
}

func readInput(name string) ([]byte, error) {
	if "-" == name {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(name)
}

func checkFlag(c *cli.Context, name string) (string, error) {
	value := c.String(name)
	if "" == value {
		return "", cli.NewExitError(ErrMissingFlag.Error()+": --"+name, 1)
	}
	return value, nil
}
