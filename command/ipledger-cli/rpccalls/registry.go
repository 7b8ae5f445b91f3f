// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/registry"
	rpcobject "github.com/bitmark-inc/ipledgerd/rpc/object"
	"github.com/bitmark-inc/ipledgerd/rpc/participant"
)

// GetParticipant - a registered member and its key
func (client *Client) GetParticipant(who string) (*registry.Participant, error) {
	m, err := member.Parse(who)
	if nil != err {
		return nil, err
	}

	var reply registry.Participant
	if err := client.call("Participant.Get", "Participant", participant.Arguments{Member: m}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetObject - the current record of an object
func (client *Client) GetObject(id string) (*registry.Object, error) {
	o, err := object.Parse(id)
	if nil != err {
		return nil, err
	}

	var reply registry.Object
	if err := client.call("Object.Get", "Object", rpcobject.Arguments{Object: o}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ObjectsByOwner - objects currently held by a member
func (client *Client) ObjectsByOwner(who string) (*rpcobject.ByOwnerReply, error) {
	m, err := member.Parse(who)
	if nil != err {
		return nil, err
	}

	var reply rpcobject.ByOwnerReply
	if err := client.call("Object.ByOwner", "Objects", rpcobject.MemberArguments{Member: m}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ObjectHistory - transactions that changed an object
func (client *Client) ObjectHistory(id string) (*rpcobject.HistoryReply, error) {
	o, err := object.Parse(id)
	if nil != err {
		return nil, err
	}

	var reply rpcobject.HistoryReply
	if err := client.call("Object.History", "History", rpcobject.Arguments{Object: o}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ObjectRequests - pending data source requests made by a member
func (client *Client) ObjectRequests(who string) (*rpcobject.RequestsReply, error) {
	m, err := member.Parse(who)
	if nil != err {
		return nil, err
	}

	var reply rpcobject.RequestsReply
	if err := client.call("Object.Requests", "Requests", rpcobject.MemberArguments{Member: m}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
