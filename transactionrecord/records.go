// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
)

// every record carries a nonce so that two otherwise identical
// requests get distinct transaction hashes

// AddObjectRequest - ask the data source to register an object
type AddObjectRequest struct {
	Requestor member.Identity `json:"requestor"`
	Object    object.Identity `json:"object"`
	Nonce     uint64          `json:"nonce"`
}

// AddObjectGroupRequest - ask the data source for all of a member's objects
type AddObjectGroupRequest struct {
	Requestor member.Identity `json:"requestor"`
	Nonce     uint64          `json:"nonce"`
}

// AddObject - register an object with its ownership
type AddObject struct {
	Owner        member.Identity          `json:"owner"`
	Object       object.Identity          `json:"object"`
	Data         string                   `json:"data"`
	Ownership    []ownership.Ownership    `json:"ownership"`
	Unstructured []ownership.Unstructured `json:"unstructured"`
	Nonce        uint64                   `json:"nonce"`
}

// UpdateObject - replace the ownership of a registered object
type UpdateObject struct {
	Owner        member.Identity          `json:"owner"`
	Object       object.Identity          `json:"object"`
	Data         string                   `json:"data"`
	Ownership    []ownership.Ownership    `json:"ownership"`
	Unstructured []ownership.Unstructured `json:"unstructured"`
	Nonce        uint64                   `json:"nonce"`
}

// AttachFile - attach a document visible to the listed members
type AttachFile struct {
	Requestor  member.Identity   `json:"requestor"`
	Attachment Attachment        `json:"attachment"`
	Members    []member.Identity `json:"members"`
	Nonce      uint64            `json:"nonce"`
}

// DeleteFiles - tombstone a group of the requestor's documents
type DeleteFiles struct {
	Requestor member.Identity `json:"requestor"`
	Documents []merkle.Digest `json:"doc_tx_hashes"`
	Nonce     uint64          `json:"nonce"`
}

// AddAttachmentSign - sign a document's content hash
type AddAttachmentSign struct {
	Requestor member.Identity   `json:"requestor"`
	Document  merkle.Digest     `json:"doc_tx_hash"`
	Signature account.Signature `json:"signature"`
	Nonce     uint64            `json:"nonce"`
}

// AddParticipant - register a member and its signing key
type AddParticipant struct {
	Member    member.Identity   `json:"member"`
	NodeName  string            `json:"node_name"`
	PublicKey account.PublicKey `json:"public_key"`
}

// OpenLot - offer objects for sale
type OpenLot struct {
	Requestor  member.Identity      `json:"requestor"`
	Lot        LotOffer             `json:"lot"`
	Conditions ownership.Conditions `json:"conditions"`
	Nonce      uint64               `json:"nonce"`
}

// CloseLot - withdraw a lot
type CloseLot struct {
	Requestor member.Identity `json:"requestor"`
	Lot       merkle.Digest   `json:"lot_tx_hash"`
	Nonce     uint64          `json:"nonce"`
}

// EditLotStatus - verification outcome for a new lot
type EditLotStatus struct {
	Lot    merkle.Digest `json:"lot_tx_hash"`
	Status LotStatus     `json:"status"`
	Nonce  uint64        `json:"nonce"`
}

// ExecuteLot - settle an auction
type ExecuteLot struct {
	Lot   merkle.Digest `json:"lot_tx_hash"`
	Nonce uint64        `json:"nonce"`
}

// AddBid - a sealed bid on a lot
type AddBid struct {
	Requestor member.Identity `json:"requestor"`
	Lot       merkle.Digest   `json:"lot_tx_hash"`
	Value     currency.Cost   `json:"value"`
	Nonce     uint64          `json:"nonce"`
}

// PublishBids - reveal recorded bid values
type PublishBids struct {
	Lot    merkle.Digest   `json:"lot_tx_hash"`
	Values []currency.Cost `json:"values"`
	Nonce  uint64          `json:"nonce"`
}

// AcquireLot - buy a private sale lot at its price
type AcquireLot struct {
	Requestor member.Identity `json:"requestor"`
	Lot       merkle.Digest   `json:"lot_tx_hash"`
	Nonce     uint64          `json:"nonce"`
}

// PurchaseOffer - propose a contract directly to a right holder
type PurchaseOffer struct {
	Requestor   member.Identity      `json:"requestor"`
	Rightholder member.Identity      `json:"rightholder"`
	Price       currency.Cost        `json:"price"`
	Conditions  ownership.Conditions `json:"conditions"`
	Nonce       uint64               `json:"nonce"`
}

// DraftContract - bind the contract documents
type DraftContract struct {
	Contract    merkle.Digest   `json:"contract_tx_hash"`
	Documents   []merkle.Digest `json:"doc_tx_hashes"`
	Deed        merkle.Digest   `json:"deed_tx_hash"`
	Application merkle.Digest   `json:"application_tx_hash"`
	Nonce       uint64          `json:"nonce"`
}

// RefuseContract - a party walks away
type RefuseContract struct {
	Requestor member.Identity `json:"requestor"`
	Contract  merkle.Digest   `json:"contract_tx_hash"`
	Reason    string          `json:"reason"`
	Nonce     uint64          `json:"nonce"`
}

// ConfirmContract - a party accepts the bound documents
type ConfirmContract struct {
	Requestor   member.Identity `json:"requestor"`
	Contract    merkle.Digest   `json:"contract_tx_hash"`
	Deed        merkle.Digest   `json:"deed_tx_hash"`
	Application merkle.Digest   `json:"application_tx_hash"`
	Documents   []merkle.Digest `json:"doc_tx_hashes"`
	Nonce       uint64          `json:"nonce"`
}

// AttachContractFile - add a document to a contract
type AttachContractFile struct {
	Requestor  member.Identity `json:"requestor"`
	Contract   merkle.Digest   `json:"contract_tx_hash"`
	Attachment Attachment      `json:"attachment"`
	Nonce      uint64          `json:"nonce"`
}

// DeleteContractFiles - remove documents from a contract
type DeleteContractFiles struct {
	Requestor member.Identity `json:"requestor"`
	Contract  merkle.Digest   `json:"contract_tx_hash"`
	Documents []merkle.Digest `json:"doc_tx_hashes"`
	Nonce     uint64          `json:"nonce"`
}

// ApproveContract - registration succeeded
type ApproveContract struct {
	Contract   merkle.Digest    `json:"contract_tx_hash"`
	Attachment SignedAttachment `json:"attachment"`
	Nonce      uint64           `json:"nonce"`
}

// RejectContract - registration failed
type RejectContract struct {
	Contract   merkle.Digest     `json:"contract_tx_hash"`
	Reason     string            `json:"reason"`
	Attachment *SignedAttachment `json:"attachment,omitempty"`
	Nonce      uint64            `json:"nonce"`
}

// UpdateContract - change price and conditions before signing
type UpdateContract struct {
	Contract   merkle.Digest        `json:"contract_tx_hash"`
	Requestor  member.Identity      `json:"requestor"`
	Price      currency.Cost        `json:"price"`
	Conditions ownership.Conditions `json:"conditions"`
	Nonce      uint64               `json:"nonce"`
}

// RegisterContract - sent to the registry
type RegisterContract struct {
	Contract merkle.Digest `json:"contract_tx_hash"`
	Nonce    uint64        `json:"nonce"`
}

// AwaitUserActionContract - registry needs more from the parties
type AwaitUserActionContract struct {
	Contract merkle.Digest `json:"contract_tx_hash"`
	Nonce    uint64        `json:"nonce"`
}

// SignContract - a party signs deed and application
type SignContract struct {
	Requestor            member.Identity   `json:"requestor"`
	Contract             merkle.Digest     `json:"contract_tx_hash"`
	DeedSignature        account.Signature `json:"deed_signature"`
	ApplicationSignature account.Signature `json:"application_signature"`
	Nonce                uint64            `json:"nonce"`
}

// SubmitChecks - results of external checks
type SubmitChecks struct {
	Contract merkle.Digest     `json:"contract_tx_hash"`
	Checks   []ownership.Check `json:"checks"`
	Nonce    uint64            `json:"nonce"`
}

// AddTaxInfo - evidence of fee payment
type AddTaxInfo struct {
	Contract    merkle.Digest   `json:"contract_tx_hash"`
	Requestor   member.Identity `json:"requestor"`
	Number      string          `json:"number"`
	PaymentDate time.Time       `json:"payment_date"`
	Amount      currency.Cost   `json:"amount"`
	Nonce       uint64          `json:"nonce"`
}

// ContractReferenceNumber - registry reference for a contract
type ContractReferenceNumber struct {
	Contract        merkle.Digest `json:"contract_tx_hash"`
	ReferenceNumber string        `json:"reference_number"`
	Nonce           uint64        `json:"nonce"`
}

// ExtendLotPeriod - move a lot's closing time later
type ExtendLotPeriod struct {
	Requestor     member.Identity `json:"requestor"`
	Lot           merkle.Digest   `json:"lot_tx_hash"`
	NewExpiration time.Time       `json:"new_expiration"`
	Nonce         uint64          `json:"nonce"`
}
