// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ipledgerd/member"
)

// wire order of each record's fields

func (r *AddObjectRequest) Tag() TagType { return AddObjectRequestTag }
func (r *AddObjectRequest) Pack() (Packed, error) { return pack(r) }
func (r *AddObjectRequest) RequestedBy() member.Identity { return r.Requestor }
func (r *AddObjectRequest) fields(c codec) {
	c.identity(&r.Requestor)
	c.objectId(&r.Object)
	c.u64(&r.Nonce)
}

func (r *AddObjectGroupRequest) Tag() TagType { return AddObjectGroupRequestTag }
func (r *AddObjectGroupRequest) Pack() (Packed, error) { return pack(r) }
func (r *AddObjectGroupRequest) RequestedBy() member.Identity { return r.Requestor }
func (r *AddObjectGroupRequest) fields(c codec) {
	c.identity(&r.Requestor)
	c.u64(&r.Nonce)
}

func (r *AddObject) Tag() TagType { return AddObjectTag }
func (r *AddObject) Pack() (Packed, error) { return pack(r) }
func (r *AddObject) fields(c codec) {
	c.identity(&r.Owner)
	c.objectId(&r.Object)
	c.text(&r.Data)
	c.structure(&r.Ownership)
	c.structure(&r.Unstructured)
	c.u64(&r.Nonce)
}

func (r *UpdateObject) Tag() TagType { return UpdateObjectTag }
func (r *UpdateObject) Pack() (Packed, error) { return pack(r) }
func (r *UpdateObject) fields(c codec) {
	c.identity(&r.Owner)
	c.objectId(&r.Object)
	c.text(&r.Data)
	c.structure(&r.Ownership)
	c.structure(&r.Unstructured)
	c.u64(&r.Nonce)
}

func (r *AttachFile) Tag() TagType { return AttachFileTag }
func (r *AttachFile) Pack() (Packed, error) { return pack(r) }
func (r *AttachFile) RequestedBy() member.Identity { return r.Requestor }
func (r *AttachFile) fields(c codec) {
	c.identity(&r.Requestor)
	c.structure(&r.Attachment)
	c.identities(&r.Members)
	c.u64(&r.Nonce)
}

func (r *DeleteFiles) Tag() TagType { return DeleteFilesTag }
func (r *DeleteFiles) Pack() (Packed, error) { return pack(r) }
func (r *DeleteFiles) RequestedBy() member.Identity { return r.Requestor }
func (r *DeleteFiles) fields(c codec) {
	c.identity(&r.Requestor)
	c.digests(&r.Documents)
	c.u64(&r.Nonce)
}

func (r *AddAttachmentSign) Tag() TagType { return AddAttachmentSignTag }
func (r *AddAttachmentSign) Pack() (Packed, error) { return pack(r) }
func (r *AddAttachmentSign) RequestedBy() member.Identity { return r.Requestor }
func (r *AddAttachmentSign) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Document)
	c.blob((*[]byte)(&r.Signature))
	c.u64(&r.Nonce)
}

func (r *AddParticipant) Tag() TagType { return AddParticipantTag }
func (r *AddParticipant) Pack() (Packed, error) { return pack(r) }
func (r *AddParticipant) fields(c codec) {
	c.identity(&r.Member)
	c.text(&r.NodeName)
	c.structure(&r.PublicKey)
}

func (r *OpenLot) Tag() TagType { return OpenLotTag }
func (r *OpenLot) Pack() (Packed, error) { return pack(r) }
func (r *OpenLot) RequestedBy() member.Identity { return r.Requestor }
func (r *OpenLot) fields(c codec) {
	c.identity(&r.Requestor)
	c.structure(&r.Lot)
	c.structure(&r.Conditions)
	c.u64(&r.Nonce)
}

func (r *CloseLot) Tag() TagType { return CloseLotTag }
func (r *CloseLot) Pack() (Packed, error) { return pack(r) }
func (r *CloseLot) RequestedBy() member.Identity { return r.Requestor }
func (r *CloseLot) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Lot)
	c.u64(&r.Nonce)
}

func (r *EditLotStatus) Tag() TagType { return EditLotStatusTag }
func (r *EditLotStatus) Pack() (Packed, error) { return pack(r) }
func (r *EditLotStatus) fields(c codec) {
	c.digest(&r.Lot)
	c.u8((*uint8)(&r.Status))
	c.u64(&r.Nonce)
}

func (r *ExecuteLot) Tag() TagType { return ExecuteLotTag }
func (r *ExecuteLot) Pack() (Packed, error) { return pack(r) }
func (r *ExecuteLot) fields(c codec) {
	c.digest(&r.Lot)
	c.u64(&r.Nonce)
}

func (r *AddBid) Tag() TagType { return AddBidTag }
func (r *AddBid) Pack() (Packed, error) { return pack(r) }
func (r *AddBid) RequestedBy() member.Identity { return r.Requestor }
func (r *AddBid) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Lot)
	c.u64((*uint64)(&r.Value))
	c.u64(&r.Nonce)
}

func (r *PublishBids) Tag() TagType { return PublishBidsTag }
func (r *PublishBids) Pack() (Packed, error) { return pack(r) }
func (r *PublishBids) fields(c codec) {
	c.digest(&r.Lot)
	c.structure(&r.Values)
	c.u64(&r.Nonce)
}

func (r *AcquireLot) Tag() TagType { return AcquireLotTag }
func (r *AcquireLot) Pack() (Packed, error) { return pack(r) }
func (r *AcquireLot) RequestedBy() member.Identity { return r.Requestor }
func (r *AcquireLot) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Lot)
	c.u64(&r.Nonce)
}

func (r *PurchaseOffer) Tag() TagType { return PurchaseOfferTag }
func (r *PurchaseOffer) Pack() (Packed, error) { return pack(r) }
func (r *PurchaseOffer) RequestedBy() member.Identity { return r.Requestor }
func (r *PurchaseOffer) fields(c codec) {
	c.identity(&r.Requestor)
	c.identity(&r.Rightholder)
	c.u64((*uint64)(&r.Price))
	c.structure(&r.Conditions)
	c.u64(&r.Nonce)
}

func (r *DraftContract) Tag() TagType { return DraftContractTag }
func (r *DraftContract) Pack() (Packed, error) { return pack(r) }
func (r *DraftContract) fields(c codec) {
	c.digest(&r.Contract)
	c.digests(&r.Documents)
	c.digest(&r.Deed)
	c.digest(&r.Application)
	c.u64(&r.Nonce)
}

func (r *RefuseContract) Tag() TagType { return RefuseContractTag }
func (r *RefuseContract) Pack() (Packed, error) { return pack(r) }
func (r *RefuseContract) RequestedBy() member.Identity { return r.Requestor }
func (r *RefuseContract) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Contract)
	c.text(&r.Reason)
	c.u64(&r.Nonce)
}

func (r *ConfirmContract) Tag() TagType { return ConfirmContractTag }
func (r *ConfirmContract) Pack() (Packed, error) { return pack(r) }
func (r *ConfirmContract) RequestedBy() member.Identity { return r.Requestor }
func (r *ConfirmContract) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Contract)
	c.digest(&r.Deed)
	c.digest(&r.Application)
	c.digests(&r.Documents)
	c.u64(&r.Nonce)
}

func (r *AttachContractFile) Tag() TagType { return AttachContractFileTag }
func (r *AttachContractFile) Pack() (Packed, error) { return pack(r) }
func (r *AttachContractFile) RequestedBy() member.Identity { return r.Requestor }
func (r *AttachContractFile) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Contract)
	c.structure(&r.Attachment)
	c.u64(&r.Nonce)
}

func (r *DeleteContractFiles) Tag() TagType { return DeleteContractFilesTag }
func (r *DeleteContractFiles) Pack() (Packed, error) { return pack(r) }
func (r *DeleteContractFiles) RequestedBy() member.Identity { return r.Requestor }
func (r *DeleteContractFiles) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Contract)
	c.digests(&r.Documents)
	c.u64(&r.Nonce)
}

func (r *ApproveContract) Tag() TagType { return ApproveContractTag }
func (r *ApproveContract) Pack() (Packed, error) { return pack(r) }
func (r *ApproveContract) fields(c codec) {
	c.digest(&r.Contract)
	c.structure(&r.Attachment)
	c.u64(&r.Nonce)
}

func (r *RejectContract) Tag() TagType { return RejectContractTag }
func (r *RejectContract) Pack() (Packed, error) { return pack(r) }
func (r *RejectContract) fields(c codec) {
	c.digest(&r.Contract)
	c.text(&r.Reason)
	c.structure(&r.Attachment)
	c.u64(&r.Nonce)
}

func (r *UpdateContract) Tag() TagType { return UpdateContractTag }
func (r *UpdateContract) Pack() (Packed, error) { return pack(r) }
func (r *UpdateContract) RequestedBy() member.Identity { return r.Requestor }
func (r *UpdateContract) fields(c codec) {
	c.digest(&r.Contract)
	c.identity(&r.Requestor)
	c.u64((*uint64)(&r.Price))
	c.structure(&r.Conditions)
	c.u64(&r.Nonce)
}

func (r *RegisterContract) Tag() TagType { return RegisterContractTag }
func (r *RegisterContract) Pack() (Packed, error) { return pack(r) }
func (r *RegisterContract) fields(c codec) {
	c.digest(&r.Contract)
	c.u64(&r.Nonce)
}

func (r *AwaitUserActionContract) Tag() TagType { return AwaitUserActionContractTag }
func (r *AwaitUserActionContract) Pack() (Packed, error) { return pack(r) }
func (r *AwaitUserActionContract) fields(c codec) {
	c.digest(&r.Contract)
	c.u64(&r.Nonce)
}

func (r *SignContract) Tag() TagType { return SignContractTag }
func (r *SignContract) Pack() (Packed, error) { return pack(r) }
func (r *SignContract) RequestedBy() member.Identity { return r.Requestor }
func (r *SignContract) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Contract)
	c.blob((*[]byte)(&r.DeedSignature))
	c.blob((*[]byte)(&r.ApplicationSignature))
	c.u64(&r.Nonce)
}

func (r *SubmitChecks) Tag() TagType { return SubmitChecksTag }
func (r *SubmitChecks) Pack() (Packed, error) { return pack(r) }
func (r *SubmitChecks) fields(c codec) {
	c.digest(&r.Contract)
	c.structure(&r.Checks)
	c.u64(&r.Nonce)
}

func (r *AddTaxInfo) Tag() TagType { return AddTaxInfoTag }
func (r *AddTaxInfo) Pack() (Packed, error) { return pack(r) }
func (r *AddTaxInfo) RequestedBy() member.Identity { return r.Requestor }
func (r *AddTaxInfo) fields(c codec) {
	c.digest(&r.Contract)
	c.identity(&r.Requestor)
	c.text(&r.Number)
	c.timestamp(&r.PaymentDate)
	c.u64((*uint64)(&r.Amount))
	c.u64(&r.Nonce)
}

func (r *ContractReferenceNumber) Tag() TagType { return ContractReferenceNumberTag }
func (r *ContractReferenceNumber) Pack() (Packed, error) { return pack(r) }
func (r *ContractReferenceNumber) fields(c codec) {
	c.digest(&r.Contract)
	c.text(&r.ReferenceNumber)
	c.u64(&r.Nonce)
}

func (r *ExtendLotPeriod) Tag() TagType { return ExtendLotPeriodTag }
func (r *ExtendLotPeriod) Pack() (Packed, error) { return pack(r) }
func (r *ExtendLotPeriod) RequestedBy() member.Identity { return r.Requestor }
func (r *ExtendLotPeriod) fields(c codec) {
	c.identity(&r.Requestor)
	c.digest(&r.Lot)
	c.timestamp(&r.NewExpiration)
	c.u64(&r.Nonce)
}
