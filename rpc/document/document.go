// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/reservoir"
	"github.com/bitmark-inc/ipledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitDocument = 200
	rateBurstDocument = 100
)

// Document - an RPC entry for the document index
type Document struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Rsvr    reservoir.Reservoir
}

// Arguments - one document seen by a viewer
type Arguments struct {
	Document merkle.Digest   `json:"document"`
	Viewer   member.Identity `json:"viewer"`
}

func New(log *logger.L, rsvr reservoir.Reservoir) *Document {
	return &Document{
		Log:     log,
		Limiter: ratelimit.New(rateLimitDocument, rateBurstDocument),
		Rsvr:    rsvr,
	}
}

// Get - a live document; hidden documents read as not found
func (d *Document) Get(arguments *Arguments, reply *document.Document) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	if nil == d.Rsvr {
		return fault.MissingReservoir
	}

	doc, err := d.Rsvr.Document(arguments.Document, arguments.Viewer)
	if nil != err {
		return err
	}
	*reply = doc
	return nil
}
