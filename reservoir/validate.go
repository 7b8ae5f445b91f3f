// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/contract"
	"github.com/bitmark-inc/ipledgerd/document"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/lot"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/registry"
	"github.com/bitmark-inc/ipledgerd/storage"
	"github.com/bitmark-inc/ipledgerd/transactionrecord"
	"github.com/bitmark-inc/ipledgerd/txlog"
)

// Submit - validate one transaction and apply it atomically
//
// the order of checks is structure, interface, duplicate, requestor
// signature, then the per type rules; nothing is written unless all
// of them pass
func (r *reservoirData) Submit(envelope *transactionrecord.Envelope, iface transactionrecord.Origin) (merkle.Digest, error) {
	r.Lock()
	defer r.Unlock()

	if !r.enabled {
		return merkle.Digest{}, fault.NotInitialised
	}
	if nil == envelope {
		return merkle.Digest{}, fault.NotATransactionPack
	}

	now := r.clock().UTC()
	hash := envelope.Hash()

	entry, err := r.accept(envelope, iface, now)
	if nil != err {
		r.log.Debugf("rejected: %s  kind: %s  error: %s", hash, fault.KindOf(err), err)
		return merkle.Digest{}, err
	}

	r.log.Infof("accepted: %s  sequence: %d  type: %s", entry.Hash, entry.Sequence, entry.Envelope.Packed.Type())
	return entry.Hash, nil
}

func (r *reservoirData) accept(envelope *transactionrecord.Envelope, iface transactionrecord.Origin, now time.Time) (txlog.Entry, error) {
	record, err := envelope.Packed.Unpack()
	if nil != err {
		return txlog.Entry{}, err
	}

	origin := record.Tag().Origin()
	if origin != envelope.Origin || origin != iface {
		return txlog.Entry{}, fault.Detailf(fault.InvalidInterface, "%s expects %s, envelope: %s  listener: %s", record.Tag(), origin, envelope.Origin, iface)
	}

	hash := envelope.Hash()
	if txlog.Has(storage.Committed, hash) {
		return txlog.Entry{}, fault.Detailf(fault.DuplicateTransaction, "%s", hash)
	}

	if err := r.authorise(storage.Committed, envelope, record); nil != err {
		return txlog.Entry{}, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return txlog.Entry{}, err
	}

	if err := r.apply(trx, hash, record, now); nil != err {
		trx.Abort()
		return txlog.Entry{}, err
	}

	entry, err := txlog.Append(trx, envelope, now)
	if nil != err {
		trx.Abort()
		return txlog.Entry{}, err
	}

	if err := trx.Commit(); nil != err {
		r.log.Criticalf("commit: %s  error: %s", hash, err)
		return txlog.Entry{}, err
	}
	return entry, nil
}

// public records must be signed by their registered requestor over
// the packed bytes
func (r *reservoirData) authorise(g storage.Getter, envelope *transactionrecord.Envelope, record transactionrecord.Transaction) error {
	requested, ok := record.(transactionrecord.Requested)
	if !ok {
		return nil
	}
	requestor := requested.RequestedBy()

	key, err := registry.PublicKey(g, requestor)
	if nil != err {
		return err
	}

	signature, ok := envelope.SignatureBy(requestor)
	if !ok {
		return fault.Detailf(fault.MissingRequestorSignature, "%s", requestor)
	}
	if !r.verifier.Verify(key, envelope.Packed, signature) {
		return fault.Detailf(fault.InvalidSignature, "requestor: %s", requestor)
	}
	return nil
}

// apply - fold one record into the derived state
//
// used both for new submissions and when rebuilding from the log, so
// it must depend only on the record, the hash and the evaluation time
func (r *reservoirData) apply(trx storage.Transaction, hash merkle.Digest, record transactionrecord.Transaction, now time.Time) error {

	switch tx := record.(type) {

	case *transactionrecord.AddObjectRequest:
		registry.AddRequest(trx, hash, tx.Requestor, tx.Tag())
		return nil

	case *transactionrecord.AddObjectGroupRequest:
		registry.AddRequest(trx, hash, tx.Requestor, tx.Tag())
		return nil

	case *transactionrecord.AddObject:
		return registry.Register(trx, hash, tx)

	case *transactionrecord.UpdateObject:
		return registry.Amend(trx, hash, tx)

	case *transactionrecord.AddParticipant:
		return registry.AddParticipant(trx, hash, tx)

	case *transactionrecord.AttachFile:
		return document.Attach(trx, hash, tx.Requestor, tx.Attachment, tx.Members, merkle.Digest{})

	case *transactionrecord.DeleteFiles:
		return document.DeleteGroup(trx, tx.Requestor, tx.Documents)

	case *transactionrecord.AddAttachmentSign:
		key, err := registry.PublicKey(trx, tx.Requestor)
		if nil != err {
			return err
		}
		return document.AddSignature(trx, r.verifier, key, tx.Document, tx.Requestor, tx.Signature)

	case *transactionrecord.OpenLot:
		return lot.Open(trx, hash, tx)

	case *transactionrecord.EditLotStatus:
		return lot.EditStatus(trx, tx, now)

	case *transactionrecord.AddBid:
		return lot.AddBid(trx, hash, tx, now)

	case *transactionrecord.PublishBids:
		return lot.PublishBids(trx, tx, now)

	case *transactionrecord.ExecuteLot:
		sale, err := lot.Execute(trx, hash, tx, now)
		if nil != err {
			return err
		}
		return sell(trx, hash, sale)

	case *transactionrecord.AcquireLot:
		sale, err := lot.Acquire(trx, hash, tx, now)
		if nil != err {
			return err
		}
		return sell(trx, hash, sale)

	case *transactionrecord.CloseLot:
		return lot.Close(trx, tx, now)

	case *transactionrecord.ExtendLotPeriod:
		return lot.Extend(trx, tx, now)

	case *transactionrecord.PurchaseOffer:
		return contract.Offer(trx, hash, tx)

	case *transactionrecord.UpdateContract:
		return contract.Update(trx, tx)

	case *transactionrecord.DraftContract:
		return contract.MakeDraft(trx, tx)

	case *transactionrecord.ConfirmContract:
		return contract.Confirm(trx, tx)

	case *transactionrecord.RefuseContract:
		return contract.Refuse(trx, tx)

	case *transactionrecord.AttachContractFile:
		return contract.AttachFile(trx, hash, tx)

	case *transactionrecord.DeleteContractFiles:
		return contract.DeleteFiles(trx, tx)

	case *transactionrecord.SignContract:
		return contract.Sign(trx, r.verifier, tx)

	case *transactionrecord.RegisterContract:
		return contract.Register(trx, tx)

	case *transactionrecord.AwaitUserActionContract:
		return contract.AwaitUserAction(trx, tx)

	case *transactionrecord.ApproveContract:
		c, err := contract.Approve(trx, r.verifier, hash, tx, r.approveFromRegistering)
		if nil != err {
			return err
		}
		if c.Lot.IsZero() {
			return nil
		}
		return lot.CloseSold(trx, c.Lot)

	case *transactionrecord.RejectContract:
		return contract.Reject(trx, r.verifier, hash, tx)

	case *transactionrecord.SubmitChecks:
		return contract.SubmitChecks(trx, tx)

	case *transactionrecord.AddTaxInfo:
		return contract.AddTaxInfo(trx, tx)

	case *transactionrecord.ContractReferenceNumber:
		return contract.ReferenceNumber(trx, tx)

	default:
		return fault.Detailf(fault.TransactionTypeIsInvalid, "%s", record.Tag())
	}
}

// a sold lot opens a contract keyed by the selling transaction
func sell(trx storage.Transaction, hash merkle.Digest, sale lot.Sale) error {
	return contract.Create(trx, hash, contract.Deal{
		Lot:        sale.Lot,
		Seller:     sale.Seller,
		Buyer:      sale.Buyer,
		Price:      sale.Price,
		Conditions: sale.Conditions,
	})
}
