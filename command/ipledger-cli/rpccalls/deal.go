// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ipledgerd/contract"
	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	rpccontract "github.com/bitmark-inc/ipledgerd/rpc/contract"
	rpcdocument "github.com/bitmark-inc/ipledgerd/rpc/document"
	rpclot "github.com/bitmark-inc/ipledgerd/rpc/lot"
)

// ListLots - one page of lots starting at a hash, blank for the first
func (client *Client) ListLots(start string, count int) (*rpclot.ListReply, error) {
	arguments := rpclot.ListArguments{Count: count}
	if "" != start {
		if err := arguments.Start.UnmarshalText([]byte(start)); nil != err {
			return nil, err
		}
	}

	var reply rpclot.ListReply
	if err := client.call("Lot.List", "Lots", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// MemberLots - lots a member sells or bid on
func (client *Client) MemberLots(who string) (*rpclot.ByMemberReply, error) {
	m, err := member.Parse(who)
	if nil != err {
		return nil, err
	}

	var reply rpclot.ByMemberReply
	if err := client.call("Lot.ByMember", "Member Lots", rpclot.MemberArguments{Member: m}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetLot - a lot as the viewer may see it
func (client *Client) GetLot(hash string, viewer string) (*lot.View, error) {
	h, v, err := hashAndViewer(hash, viewer)
	if nil != err {
		return nil, err
	}

	var reply lot.View
	if err := client.call("Lot.Get", "Lot", rpclot.Arguments{Lot: h, Viewer: v}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetContract - the stored contract
func (client *Client) GetContract(hash string) (*contract.Contract, error) {
	var h merkle.Digest
	if err := h.UnmarshalText([]byte(hash)); nil != err {
		return nil, err
	}

	var reply contract.Contract
	if err := client.call("Contract.Get", "Contract", rpccontract.Arguments{Contract: h}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// MemberContracts - contracts a member is party to
func (client *Client) MemberContracts(who string) (*rpccontract.ByMemberReply, error) {
	m, err := member.Parse(who)
	if nil != err {
		return nil, err
	}

	var reply rpccontract.ByMemberReply
	if err := client.call("Contract.ByMember", "Member Contracts", rpccontract.MemberArguments{Member: m}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetDocument - a live document the viewer may see
func (client *Client) GetDocument(hash string, viewer string) (*document.Document, error) {
	h, v, err := hashAndViewer(hash, viewer)
	if nil != err {
		return nil, err
	}

	var reply document.Document
	if err := client.call("Document.Get", "Document", rpcdocument.Arguments{Document: h, Viewer: v}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func hashAndViewer(hash string, viewer string) (merkle.Digest, member.Identity, error) {
	var h merkle.Digest
	if err := h.UnmarshalText([]byte(hash)); nil != err {
		return merkle.Digest{}, member.Identity{}, err
	}
	v, err := member.Parse(viewer)
	if nil != err {
		return merkle.Digest{}, member.Identity{}, err
	}
	return h, v, nil
}
