// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(0)

	AddObjectRequestTag        = TagType(1)
	AddObjectGroupRequestTag   = TagType(2)
	AddObjectTag               = TagType(3)
	UpdateObjectTag            = TagType(4)
	AttachFileTag              = TagType(5)
	DeleteFilesTag             = TagType(6)
	AddAttachmentSignTag       = TagType(7)
	AddParticipantTag          = TagType(11)
	OpenLotTag                 = TagType(12)
	CloseLotTag                = TagType(13)
	EditLotStatusTag           = TagType(14)
	ExecuteLotTag              = TagType(15)
	AddBidTag                  = TagType(16)
	PublishBidsTag             = TagType(17)
	AcquireLotTag              = TagType(18)
	PurchaseOfferTag           = TagType(19)
	DraftContractTag           = TagType(20)
	RefuseContractTag          = TagType(21)
	ConfirmContractTag         = TagType(22)
	AttachContractFileTag      = TagType(23)
	DeleteContractFilesTag     = TagType(24)
	ApproveContractTag         = TagType(25)
	RejectContractTag          = TagType(26)
	UpdateContractTag          = TagType(27)
	RegisterContractTag        = TagType(28)
	AwaitUserActionContractTag = TagType(29)
	SignContractTag            = TagType(30)
	SubmitChecksTag            = TagType(31)
	AddTaxInfoTag              = TagType(32)
	ContractReferenceNumberTag = TagType(33)
	ExtendLotPeriodTag         = TagType(34)
)

// Origin - the interface a transaction must arrive on
type Origin uint8

// interfaces
const (
	Public  Origin = 1
	Private Origin = 2
)

func (o Origin) String() string {
	switch o {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Tag() TagType
	Pack() (Packed, error)
	Validate() error

	fields(c codec)
}

// Requested - public transactions name the member who sent them
type Requested interface {
	Transaction
	RequestedBy() member.Identity
}

type tagInfo struct {
	name   string
	origin Origin
	create func() Transaction
}

var tags = map[TagType]tagInfo{
	AddObjectRequestTag:        {"AddObjectRequest", Public, func() Transaction { return &AddObjectRequest{} }},
	AddObjectGroupRequestTag:   {"AddObjectGroupRequest", Public, func() Transaction { return &AddObjectGroupRequest{} }},
	AddObjectTag:               {"AddObject", Private, func() Transaction { return &AddObject{} }},
	UpdateObjectTag:            {"UpdateObject", Private, func() Transaction { return &UpdateObject{} }},
	AttachFileTag:              {"AttachFile", Public, func() Transaction { return &AttachFile{} }},
	DeleteFilesTag:             {"DeleteFiles", Public, func() Transaction { return &DeleteFiles{} }},
	AddAttachmentSignTag:       {"AddAttachmentSign", Public, func() Transaction { return &AddAttachmentSign{} }},
	AddParticipantTag:          {"AddParticipant", Private, func() Transaction { return &AddParticipant{} }},
	OpenLotTag:                 {"OpenLot", Public, func() Transaction { return &OpenLot{} }},
	CloseLotTag:                {"CloseLot", Public, func() Transaction { return &CloseLot{} }},
	EditLotStatusTag:           {"EditLotStatus", Private, func() Transaction { return &EditLotStatus{} }},
	ExecuteLotTag:              {"ExecuteLot", Private, func() Transaction { return &ExecuteLot{} }},
	AddBidTag:                  {"AddBid", Public, func() Transaction { return &AddBid{} }},
	PublishBidsTag:             {"PublishBids", Private, func() Transaction { return &PublishBids{} }},
	AcquireLotTag:              {"AcquireLot", Public, func() Transaction { return &AcquireLot{} }},
	PurchaseOfferTag:           {"PurchaseOffer", Public, func() Transaction { return &PurchaseOffer{} }},
	DraftContractTag:           {"DraftContract", Private, func() Transaction { return &DraftContract{} }},
	RefuseContractTag:          {"RefuseContract", Public, func() Transaction { return &RefuseContract{} }},
	ConfirmContractTag:         {"ConfirmContract", Public, func() Transaction { return &ConfirmContract{} }},
	AttachContractFileTag:      {"AttachContractFile", Public, func() Transaction { return &AttachContractFile{} }},
	DeleteContractFilesTag:     {"DeleteContractFiles", Public, func() Transaction { return &DeleteContractFiles{} }},
	ApproveContractTag:         {"ApproveContract", Private, func() Transaction { return &ApproveContract{} }},
	RejectContractTag:          {"RejectContract", Private, func() Transaction { return &RejectContract{} }},
	UpdateContractTag:          {"UpdateContract", Public, func() Transaction { return &UpdateContract{} }},
	RegisterContractTag:        {"RegisterContract", Private, func() Transaction { return &RegisterContract{} }},
	AwaitUserActionContractTag: {"AwaitUserActionContract", Private, func() Transaction { return &AwaitUserActionContract{} }},
	SignContractTag:            {"SignContract", Public, func() Transaction { return &SignContract{} }},
	SubmitChecksTag:            {"SubmitChecks", Private, func() Transaction { return &SubmitChecks{} }},
	AddTaxInfoTag:              {"AddTaxInfo", Public, func() Transaction { return &AddTaxInfo{} }},
	ContractReferenceNumberTag: {"ContractReferenceNumber", Private, func() Transaction { return &ContractReferenceNumber{} }},
	ExtendLotPeriodTag:         {"ExtendLotPeriod", Public, func() Transaction { return &ExtendLotPeriod{} }},
}

// IsValid - a known record type
func (tag TagType) IsValid() bool {
	_, ok := tags[tag]
	return ok
}

func (tag TagType) String() string {
	if info, ok := tags[tag]; ok {
		return info.name
	}
	return "Invalid"
}

// MarshalText - tags travel as record names
func (tag TagType) MarshalText() ([]byte, error) {
	if !tag.IsValid() {
		return nil, fault.Detailf(fault.TransactionTypeIsInvalid, "%d", uint64(tag))
	}
	return []byte(tag.String()), nil
}

// UnmarshalText - convert a record name to a tag
func (tag *TagType) UnmarshalText(s []byte) error {
	t, ok := TagFromName(string(s))
	if !ok {
		return fault.Detailf(fault.TransactionTypeIsInvalid, "%q", s)
	}
	*tag = t
	return nil
}

// Origin - the interface this record type is accepted on
func (tag TagType) Origin() Origin {
	return tags[tag].origin
}

// New - an empty record for a tag, ready for JSON decoding
func New(tag TagType) (Transaction, bool) {
	info, ok := tags[tag]
	if !ok {
		return nil, false
	}
	return info.create(), true
}

// TagFromName - find the tag for a record name
func TagFromName(name string) (TagType, bool) {
	for tag, info := range tags {
		if info.name == name {
			return tag, true
		}
	}
	return NullTag, false
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record Transaction) string {
	return record.Tag().String()
}
