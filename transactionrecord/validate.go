// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"unicode/utf8"

	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
)

// structural checks only, nothing here reads ledger state

func validMember(name string, m member.Identity) error {
	if m.IsZero() {
		return fault.Detailf(fault.EmptyField, "%s", name)
	}
	if !m.IsValid() {
		return fault.Detailf(fault.MemberIdentityIsInvalid, "%s: %s", name, m)
	}
	return nil
}

func validObject(o object.Identity) error {
	if !o.IsValid() {
		return fault.Detailf(fault.ObjectIdentityIsInvalid, "%s", o)
	}
	return nil
}

func validReference(name string, d merkle.Digest) error {
	if d.IsZero() {
		return fault.Detailf(fault.EmptyField, "%s", name)
	}
	return nil
}

func validReferences(name string, empty error, list []merkle.Digest) error {
	if 0 == len(list) && nil != empty {
		return fault.Detailf(empty, "%s", name)
	}
	for _, d := range list {
		if err := validReference(name, d); nil != err {
			return err
		}
	}
	return nil
}

func validText(name string, s string, maximum int) error {
	n := utf8.RuneCountInString(s)
	if 0 == n {
		return fault.Detailf(fault.EmptyField, "%s", name)
	}
	if n > maximum {
		return fault.Detailf(fault.FieldTooLong, "%s", name)
	}
	return nil
}

func validPrice(name string, c currency.Cost) error {
	if 0 == c {
		return fault.Detailf(fault.PriceIsZero, "%s", name)
	}
	return nil
}

func validObjectData(owner member.Identity, obj object.Identity, entries []ownership.Ownership, unstructured []ownership.Unstructured) error {
	if err := validMember("owner", owner); nil != err {
		return err
	}
	if err := validObject(obj); nil != err {
		return err
	}
	for _, e := range entries {
		if err := e.Validate(); nil != err {
			return fault.Detailf(err, "object: %s", obj)
		}
	}
	for _, u := range unstructured {
		if "" == u.Data {
			return fault.Detailf(fault.EmptyField, "unstructured data")
		}
		if nil != u.Rightholder && !u.Rightholder.IsValid() {
			return fault.Detailf(fault.MemberIdentityIsInvalid, "unstructured rightholder: %s", u.Rightholder)
		}
	}
	return nil
}

// Validate - structural checks
func (r *AddObjectRequest) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	return validObject(r.Object)
}

// Validate - structural checks
func (r *AddObjectGroupRequest) Validate() error {
	return validMember("requestor", r.Requestor)
}

// Validate - structural checks
func (r *AddObject) Validate() error {
	return validObjectData(r.Owner, r.Object, r.Ownership, r.Unstructured)
}

// Validate - structural checks
func (r *UpdateObject) Validate() error {
	return validObjectData(r.Owner, r.Object, r.Ownership, r.Unstructured)
}

// Validate - structural checks
func (r *AttachFile) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	for _, m := range r.Members {
		if err := validMember("member", m); nil != err {
			return err
		}
	}
	return r.Attachment.Validate()
}

// Validate - structural checks
func (r *DeleteFiles) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	return validReferences("doc_tx_hashes", fault.EmptyDocumentList, r.Documents)
}

// Validate - structural checks
func (r *AddAttachmentSign) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("doc_tx_hash", r.Document); nil != err {
		return err
	}
	return validSignature("signature", r.Signature)
}

// Validate - structural checks
func (r *AddParticipant) Validate() error {
	if err := validMember("member", r.Member); nil != err {
		return err
	}
	if err := validText("node_name", r.NodeName, maxNodeNameLength); nil != err {
		return err
	}
	if r.PublicKey.IsZero() {
		return fault.Detailf(fault.EmptyField, "public_key")
	}
	return nil
}

// Validate - structural checks
func (r *OpenLot) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := r.Lot.Validate(); nil != err {
		return err
	}
	return r.Conditions.Validate()
}

// Validate - structural checks
func (r *CloseLot) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	return validReference("lot_tx_hash", r.Lot)
}

// Validate - only the verification outcomes can be set
func (r *EditLotStatus) Validate() error {
	if err := validReference("lot_tx_hash", r.Lot); nil != err {
		return err
	}
	if LotRejected != r.Status && LotVerified != r.Status {
		return fault.Detailf(fault.LotStatusIsInvalid, "%s", r.Status)
	}
	return nil
}

// Validate - structural checks
func (r *ExecuteLot) Validate() error {
	return validReference("lot_tx_hash", r.Lot)
}

// Validate - structural checks
func (r *AddBid) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("lot_tx_hash", r.Lot); nil != err {
		return err
	}
	return validPrice("value", r.Value)
}

// Validate - structural checks
func (r *PublishBids) Validate() error {
	if err := validReference("lot_tx_hash", r.Lot); nil != err {
		return err
	}
	if 0 == len(r.Values) {
		return fault.EmptyBidList
	}
	for _, v := range r.Values {
		if err := validPrice("value", v); nil != err {
			return err
		}
	}
	return nil
}

// Validate - structural checks
func (r *AcquireLot) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	return validReference("lot_tx_hash", r.Lot)
}

// Validate - structural checks
func (r *PurchaseOffer) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validMember("rightholder", r.Rightholder); nil != err {
		return err
	}
	if r.Requestor == r.Rightholder {
		return fault.SellerIsBuyer
	}
	if err := validPrice("price", r.Price); nil != err {
		return err
	}
	return r.Conditions.Validate()
}

// Validate - structural checks
func (r *DraftContract) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if err := validReference("deed_tx_hash", r.Deed); nil != err {
		return err
	}
	if err := validReference("application_tx_hash", r.Application); nil != err {
		return err
	}
	return validReferences("doc_tx_hashes", nil, r.Documents)
}

// Validate - structural checks
func (r *RefuseContract) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if utf8.RuneCountInString(r.Reason) > maxReasonLength {
		return fault.Detailf(fault.FieldTooLong, "reason")
	}
	return validReference("contract_tx_hash", r.Contract)
}

// Validate - structural checks
func (r *ConfirmContract) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if err := validReference("deed_tx_hash", r.Deed); nil != err {
		return err
	}
	if err := validReference("application_tx_hash", r.Application); nil != err {
		return err
	}
	return validReferences("doc_tx_hashes", nil, r.Documents)
}

// Validate - structural checks
func (r *AttachContractFile) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	return r.Attachment.Validate()
}

// Validate - structural checks
func (r *DeleteContractFiles) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	return validReferences("doc_tx_hashes", fault.EmptyDocumentList, r.Documents)
}

// Validate - structural checks
func (r *ApproveContract) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	return r.Attachment.Validate()
}

// Validate - structural checks
func (r *RejectContract) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if utf8.RuneCountInString(r.Reason) > maxReasonLength {
		return fault.Detailf(fault.FieldTooLong, "reason")
	}
	if nil != r.Attachment {
		return r.Attachment.Validate()
	}
	return nil
}

// Validate - structural checks
func (r *UpdateContract) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validPrice("price", r.Price); nil != err {
		return err
	}
	return r.Conditions.Validate()
}

// Validate - structural checks
func (r *RegisterContract) Validate() error {
	return validReference("contract_tx_hash", r.Contract)
}

// Validate - structural checks
func (r *AwaitUserActionContract) Validate() error {
	return validReference("contract_tx_hash", r.Contract)
}

// Validate - structural checks
func (r *SignContract) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if err := validSignature("deed_signature", r.DeedSignature); nil != err {
		return err
	}
	return validSignature("application_signature", r.ApplicationSignature)
}

// Validate - only external checks with a known result
func (r *SubmitChecks) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if 0 == len(r.Checks) {
		return fault.Detailf(fault.EmptyField, "checks")
	}
	for _, c := range r.Checks {
		if !c.Key.IsExternal() {
			return fault.Detailf(fault.CheckKeyIsInvalid, "%s", c.Key)
		}
		if !c.Info.Result.IsValid() {
			return fault.Detailf(fault.CheckResultIsInvalid, "%s: %d", c.Key, c.Info.Result)
		}
	}
	return nil
}

// Validate - structural checks
func (r *AddTaxInfo) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validText("number", r.Number, maxNodeNameLength); nil != err {
		return err
	}
	if r.PaymentDate.IsZero() {
		return fault.Detailf(fault.EmptyField, "payment_date")
	}
	if 0 == r.Amount {
		return fault.Detailf(fault.AmountIsInvalid, "amount")
	}
	return nil
}

// Validate - structural checks
func (r *ContractReferenceNumber) Validate() error {
	if err := validReference("contract_tx_hash", r.Contract); nil != err {
		return err
	}
	return validText("reference_number", r.ReferenceNumber, maxNodeNameLength)
}

// Validate - structural checks
func (r *ExtendLotPeriod) Validate() error {
	if err := validMember("requestor", r.Requestor); nil != err {
		return err
	}
	if err := validReference("lot_tx_hash", r.Lot); nil != err {
		return err
	}
	if r.NewExpiration.IsZero() {
		return fault.Detailf(fault.EmptyField, "new_expiration")
	}
	return nil
}
