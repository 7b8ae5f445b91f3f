// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/ownership"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
)

// Deal - the terms a contract starts from
type Deal struct {
	Lot        merkle.Digest
	Seller     member.Identity
	Buyer      member.Identity
	Price      currency.Cost
	Conditions ownership.Conditions
}

// Create - a new contract between two members
//
// the seller must still hold enough rights and both parties must be
// allowed to take part in the contract type
func Create(trx storage.Transaction, hash merkle.Digest, deal Deal) error {
	if deal.Seller == deal.Buyer {
		return fault.SellerIsBuyer
	}
	if trx.Has(storage.Pool.Contracts, hash[:]) {
		return fault.Detailf(fault.DuplicateTransaction, "contract: %s", hash)
	}
	checks, err := deal.Conditions.Evaluate(registry.Rights(trx), deal.Seller, deal.Buyer)
	if nil != err {
		return err
	}
	c := Contract{
		TxHash:     hash,
		Lot:        deal.Lot,
		Buyer:      deal.Buyer,
		Seller:     deal.Seller,
		Price:      deal.Price,
		Conditions: deal.Conditions,
		Status:     New,
		Documents:  []merkle.Digest{},
		Files:      []merkle.Digest{},
		Checks:     ownership.NewChecks(checks),
		Taxes:      []TaxInfo{},
	}
	if err := put(trx, c); nil != err {
		return err
	}
	trx.Put(storage.Pool.MemberContracts, memberKey(c.Buyer, hash), []byte{})
	trx.Put(storage.Pool.MemberContracts, memberKey(c.Seller, hash), []byte{})
	return nil
}

// Offer - a buyer proposes a contract directly to a right holder
func Offer(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.PurchaseOffer) error {
	return Create(trx, hash, Deal{
		Seller:     r.Rightholder,
		Buyer:      r.Requestor,
		Price:      r.Price,
		Conditions: r.Conditions,
	})
}

// Update - new price and conditions
//
// the contract goes back to new: bindings, confirmations and any
// partial signatures are void, attached documents stay
func Update(trx storage.Transaction, r *transactionrecord.UpdateContract) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if New != c.Status && !CanMove(c.Status, New) {
		return fault.Detailf(fault.ContractCannotBeModified, "contract: %s  status: %s", r.Contract, c.Status)
	}
	checks, err := r.Conditions.Evaluate(registry.Rights(trx), c.Seller, c.Buyer)
	if nil != err {
		return err
	}
	c.Price = r.Price
	c.Conditions = r.Conditions
	c.Status = New
	c.Deed = merkle.Digest{}
	c.Application = merkle.Digest{}
	c.Files = nil
	c.Confirmed = Parties{}
	c.Signed = Parties{}
	merge(&c, checks...)
	merge(&c, ownership.CheckDocumentsMatchCondition.Unknown())
	return put(trx, c)
}

// MakeDraft - bind the deed, the application and the document list
func MakeDraft(trx storage.Transaction, r *transactionrecord.DraftContract) error {
	c, err := Get(trx, r.Contract)
	if nil != err {
		return err
	}
	if !CanMove(c.Status, Draft) && Draft != c.Status {
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}

	if err := c.bindable(trx, r.Deed, transactionrecord.DeedAttachment, fault.DeedMismatch); nil != err {
		return err
	}
	if err := c.bindable(trx, r.Application, transactionrecord.ApplicationAttachment, fault.ApplicationMismatch); nil != err {
		return err
	}
	files := unique(r.Documents)
	for _, h := range files {
		if err := c.bindable(trx, h, 0, nil); nil != err {
			return err
		}
	}

	c.Deed = r.Deed
	c.Application = r.Application
	c.Files = files
	c.Confirmed = Parties{}
	c.Status = Draft
	merge(&c, ownership.CheckDocumentsMatchCondition.Ok())
	return put(trx, c)
}

// a document may be bound when it is live, attached to this contract
// and owned by one of the parties, mismatch is reported for the wrong
// document type
func (c Contract) bindable(g storage.Getter, hash merkle.Digest, fileType transactionrecord.AttachmentType, mismatch error) error {
	if !contains(c.Documents, hash) {
		return fault.Detailf(fault.DocumentNotFound, "contract: %s  document: %s", c.TxHash, hash)
	}
	d, err := document.Get(g, hash)
	if nil != err {
		return err
	}
	if !c.IsParty(d.Owner) {
		return fault.Detailf(fault.DocumentNotOwnedByParty, "document: %s", hash)
	}
	if nil != mismatch && fileType != d.Attachment.FileType {
		return fault.Detailf(mismatch, "document: %s  type: %s", hash, d.Attachment.FileType)
	}
	return nil
}

// Confirm - a party accepts the bound documents
//
// a repeated confirmation by the same party changes nothing
func Confirm(trx storage.Transaction, r *transactionrecord.ConfirmContract) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if Draft != c.Status {
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}

	if c.Deed.IsZero() {
		return fault.Detailf(fault.DeedNotBound, "contract: %s", r.Contract)
	}
	if c.Deed != r.Deed {
		return fault.Detailf(fault.DeedMismatch, "contract: %s  deed: %s", r.Contract, r.Deed)
	}
	if c.Application.IsZero() {
		return fault.Detailf(fault.ApplicationNotBound, "contract: %s", r.Contract)
	}
	if c.Application != r.Application {
		return fault.Detailf(fault.ApplicationMismatch, "contract: %s  application: %s", r.Contract, r.Application)
	}
	if !sameSet(c.Files, r.Documents) {
		return fault.Detailf(fault.DocumentListMismatch, "contract: %s", r.Contract)
	}

	checks, err := c.Conditions.Evaluate(registry.Rights(trx), c.Seller, c.Buyer)
	if nil != err {
		return err
	}
	merge(&c, checks...)

	if r.Requestor == c.Buyer {
		c.Confirmed.Buyer = true
	} else {
		c.Confirmed.Seller = true
	}
	if c.Confirmed.Both() {
		c.Status = Confirmed
	}
	return put(trx, c)
}

// Sign - a party signs the deed and the application
func Sign(trx storage.Transaction, verifier account.Verifier, r *transactionrecord.SignContract) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if Confirmed != c.Status {
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}
	if c.Deed.IsZero() {
		return fault.Detailf(fault.DeedNotBound, "contract: %s", r.Contract)
	}
	if c.Application.IsZero() {
		return fault.Detailf(fault.ApplicationNotBound, "contract: %s", r.Contract)
	}

	isBuyer := r.Requestor == c.Buyer
	if (isBuyer && c.Signed.Buyer) || (!isBuyer && c.Signed.Seller) {
		return fault.Detailf(fault.DocumentAlreadySigned, "contract: %s  signer: %s", r.Contract, r.Requestor)
	}

	key, err := registry.PublicKey(trx, r.Requestor)
	if nil != err {
		return err
	}
	if err := document.AddSignature(trx, verifier, key, c.Deed, r.Requestor, r.DeedSignature); nil != err {
		return fault.Detailf(err, "deed")
	}
	if err := document.AddSignature(trx, verifier, key, c.Application, r.Requestor, r.ApplicationSignature); nil != err {
		return fault.Detailf(err, "application")
	}

	if isBuyer {
		c.Signed.Buyer = true
	} else {
		c.Signed.Seller = true
	}
	if c.Signed.Both() {
		c.Status = Signed
	}
	return put(trx, c)
}

// Register - the signed contract was sent to the registry
func Register(trx storage.Transaction, r *transactionrecord.RegisterContract) error {
	return move(trx, r.Contract, Signed, Registering)
}

// AwaitUserAction - the registry needs more from the parties
func AwaitUserAction(trx storage.Transaction, r *transactionrecord.AwaitUserActionContract) error {
	return move(trx, r.Contract, Registering, AwaitingUserAction)
}

func move(trx storage.Transaction, hash merkle.Digest, from Status, to Status) error {
	c, err := Get(trx, hash)
	if nil != err {
		return err
	}
	if from != c.Status {
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", hash, c.Status)
	}
	c.Status = to
	return put(trx, c)
}

// Approve - registration succeeded, the notification is recorded as a
// document keyed by the approving transaction
//
// fromRegistering also allows approval without the user action step
func Approve(trx storage.Transaction, verifier account.Verifier, hash merkle.Digest, r *transactionrecord.ApproveContract, fromRegistering bool) (Contract, error) {
	c, err := Get(trx, r.Contract)
	if nil != err {
		return Contract{}, err
	}
	if AwaitingUserAction != c.Status && !(fromRegistering && Registering == c.Status) {
		return Contract{}, fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}
	if err := c.notify(trx, verifier, hash, r.Attachment); nil != err {
		return Contract{}, err
	}
	c.Status = Approved
	return c, put(trx, c)
}

// Reject - registration failed
//
// a rejection of a new contract needs no notification, later ones do
func Reject(trx storage.Transaction, verifier account.Verifier, hash merkle.Digest, r *transactionrecord.RejectContract) error {
	c, err := Get(trx, r.Contract)
	if nil != err {
		return err
	}
	switch c.Status {
	case New:
	case Registering, AwaitingUserAction:
		if nil == r.Attachment {
			return fault.Detailf(fault.MissingSignedAttachment, "contract: %s", r.Contract)
		}
	default:
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}
	if nil != r.Attachment {
		if err := c.notify(trx, verifier, hash, *r.Attachment); nil != err {
			return err
		}
	}
	c.Status = Rejected
	c.Reason = r.Reason
	return put(trx, c)
}

func (c *Contract) notify(trx storage.Transaction, verifier account.Verifier, hash merkle.Digest, sa transactionrecord.SignedAttachment) error {
	key, err := registry.PublicKey(trx, sa.Signer)
	if nil != err {
		return err
	}
	if err := document.Attach(trx, hash, sa.Signer, sa.File, []member.Identity{c.Buyer, c.Seller}, c.TxHash); nil != err {
		return err
	}
	if err := document.AddSignature(trx, verifier, key, hash, sa.Signer, sa.Signature); nil != err {
		return err
	}
	c.Notification = hash
	return nil
}

// Refuse - a party walks away before signing
func Refuse(trx storage.Transaction, r *transactionrecord.RefuseContract) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if !c.Status.IsPreSigned() {
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}
	c.Status = Refused
	c.Reason = r.Reason
	return put(trx, c)
}

// AttachFile - a party adds a document shared with the other party
func AttachFile(trx storage.Transaction, hash merkle.Digest, r *transactionrecord.AttachContractFile) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if !c.Status.IsPreSigned() {
		return fault.Detailf(fault.ContractCannotBeModified, "contract: %s  status: %s", r.Contract, c.Status)
	}
	if err := document.Attach(trx, hash, r.Requestor, r.Attachment, []member.Identity{c.other(r.Requestor)}, c.TxHash); nil != err {
		return err
	}
	c.Documents = append(c.Documents, hash)
	merge(&c, ownership.CheckDocumentsMatchCondition.Unknown())
	return put(trx, c)
}

// DeleteFiles - a party removes its own documents, a removed deed or
// application is no longer bound
//
// once confirmed the bound documents stay
func DeleteFiles(trx storage.Transaction, r *transactionrecord.DeleteContractFiles) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if !c.Status.IsPreSigned() {
		return fault.Detailf(fault.ContractCannotBeModified, "contract: %s  status: %s", r.Contract, c.Status)
	}

	hashes := unique(r.Documents)
	for _, h := range hashes {
		if !contains(c.Documents, h) {
			return fault.Detailf(fault.DocumentNotFound, "contract: %s  document: %s", r.Contract, h)
		}
		d, err := document.Get(trx, h)
		if nil != err {
			return err
		}
		if d.Owner != r.Requestor {
			return fault.Detailf(fault.NotTheDocumentOwner, "%s", h)
		}
		if Confirmed == c.Status && (h == c.Deed || h == c.Application || contains(c.Files, h)) {
			return fault.Detailf(fault.ContractCannotBeModified, "document: %s  is bound", h)
		}
	}

	for _, h := range hashes {
		if err := document.Delete(trx, h); nil != err {
			return err
		}
		c.Documents = remove(c.Documents, h)
		c.Files = remove(c.Files, h)
		if h == c.Deed {
			c.Deed = merkle.Digest{}
		}
		if h == c.Application {
			c.Application = merkle.Digest{}
		}
	}
	merge(&c, ownership.CheckDocumentsMatchCondition.Unknown())
	return put(trx, c)
}

// SubmitChecks - external check results, last write per key wins
func SubmitChecks(trx storage.Transaction, r *transactionrecord.SubmitChecks) error {
	c, err := Get(trx, r.Contract)
	if nil != err {
		return err
	}
	merge(&c, r.Checks...)
	return put(trx, c)
}

// AddTaxInfo - a party records a fee payment, payment numbers are
// unique across all contracts
func AddTaxInfo(trx storage.Transaction, r *transactionrecord.AddTaxInfo) error {
	c, err := party(trx, r.Contract, r.Requestor)
	if nil != err {
		return err
	}
	if Draft != c.Status && Confirmed != c.Status {
		return fault.Detailf(fault.WrongContractState, "contract: %s  status: %s", r.Contract, c.Status)
	}
	if other, ok := PaymentContract(trx, r.Number); ok {
		return fault.Detailf(fault.DuplicatePaymentNumber, "number: %q  contract: %s", r.Number, other)
	}
	trx.Put(storage.Pool.Payments, []byte(r.Number), c.TxHash[:])
	c.Taxes = append(c.Taxes, TaxInfo{
		Requestor:   r.Requestor,
		Number:      r.Number,
		PaymentDate: r.PaymentDate,
		Amount:      r.Amount,
	})
	merge(&c, ownership.CheckTaxPaymentInfoAdded.Ok())
	return put(trx, c)
}

// ReferenceNumber - the registry's number for the contract
func ReferenceNumber(trx storage.Transaction, r *transactionrecord.ContractReferenceNumber) error {
	c, err := Get(trx, r.Contract)
	if nil != err {
		return err
	}
	c.ReferenceNumber = r.ReferenceNumber
	return put(trx, c)
}

// load a contract and require the requestor to be a party
func party(g storage.Getter, hash merkle.Digest, requestor member.Identity) (Contract, error) {
	c, err := Get(g, hash)
	if nil != err {
		return Contract{}, err
	}
	if !c.IsParty(requestor) {
		return Contract{}, fault.NotAContractParty
	}
	return c, nil
}

func merge(c *Contract, checks ...ownership.Check) {
	if nil == c.Checks {
		c.Checks = ownership.Checks{}
	}
	c.Checks.Merge(checks)
}

func contains(list []merkle.Digest, hash merkle.Digest) bool {
	for _, h := range list {
		if h == hash {
			return true
		}
	}
	return false
}

func remove(list []merkle.Digest, hash merkle.Digest) []merkle.Digest {
	result := make([]merkle.Digest, 0, len(list))
	for _, h := range list {
		if h != hash {
			result = append(result, h)
		}
	}
	return result
}

func unique(list []merkle.Digest) []merkle.Digest {
	result := make([]merkle.Digest, 0, len(list))
	for _, h := range list {
		if !contains(result, h) {
			result = append(result, h)
		}
	}
	return result
}

func sameSet(a []merkle.Digest, b []merkle.Digest) bool {
	a = unique(a)
	b = unique(b)
	if len(a) != len(b) {
		return false
	}
	for _, h := range a {
		if !contains(b, h) {
			return false
		}
	}
	return true
}
