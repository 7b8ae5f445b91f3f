// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type ConflictError GenericError
type ExistsError GenericError
type InconsistencyError GenericError
type MalformedError GenericError
type MissingError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type SignatureError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	AmountIsInvalid              = MalformedError("amount is invalid")
	ApplicationMismatch          = StateError("application document does not match contract")
	ApplicationNotBound          = StateError("application document is not bound to contract")
	AttachmentNameIsInvalid      = MalformedError("attachment name is invalid")
	AttachmentTypeIsInvalid      = MalformedError("attachment type is invalid")
	BidAlreadyPublished          = ConflictError("bid already published")
	BidderIsLotOwner             = AuthorizationError("lot owner cannot bid on own lot")
	BidNotAboveCurrentPrice      = ConflictError("bid must exceed current price")
	BidNotRecorded               = ConflictError("bid value does not match any recorded bid")
	CheckFailed                  = StateError("contract check failed")
	CheckKeyIsInvalid            = MalformedError("check key is invalid")
	CheckResultIsInvalid         = MalformedError("check result is invalid")
	ClassifierIsInvalid          = MalformedError("classifier is invalid")
	ConfigurationIsNotATable     = MalformedError("configuration did not return a table")
	ContractCannotBeModified     = StateError("contract cannot be modified in current state")
	ContractNotFound             = NotFoundError("contract not found")
	ContractTypeIsInvalid        = MalformedError("contract type is invalid")
	CorruptRecord                = InconsistencyError("stored record is corrupt")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DeedMismatch                 = StateError("deed document does not match contract")
	DeedNotBound                 = StateError("deed document is not bound to contract")
	DistributionIsInvalid        = MalformedError("distribution is invalid")
	DocumentAlreadySigned        = ExistsError("document already signed by member")
	DocumentListMismatch         = StateError("document list does not match contract")
	DocumentNotFound             = NotFoundError("document not found")
	DocumentNotOwnedByParty      = AuthorizationError("document does not belong to contract party")
	DuplicateObjects             = MalformedError("conditions contain duplicate objects")
	DuplicatePaymentNumber       = ConflictError("payment number already used")
	DuplicateTransaction         = ConflictError("transaction already committed")
	EmptyBidList                 = MissingError("bid list is empty")
	EmptyDocumentList            = MissingError("document list is empty")
	EmptyField                   = MissingError("required field is empty")
	EmptyObjectList              = MissingError("object list is empty")
	ExpirationNotAfterClosing    = MalformedError("new expiration must be after closing time")
	FieldTooLong                 = MalformedError("field is too long")
	IncompatibleDatabaseVersion  = ProcessError("incompatible database version")
	InvalidCertificate           = MalformedError("invalid certificate")
	InvalidCount                 = MalformedError("invalid count")
	InvalidCursor                = ProcessError("invalid cursor")
	InvalidDigest                = MalformedError("invalid digest")
	InvalidInterface             = AuthorizationError("transaction not accepted on this interface")
	InvalidIpAddress             = MalformedError("invalid IP address")
	InvalidLoggerChannel         = ProcessError("invalid logger channel")
	InvalidPrivateKey            = MalformedError("invalid private key")
	InvalidPublicKey             = MalformedError("invalid public key")
	InvalidSignature             = SignatureError("signature verification failed")
	LocationIsInvalid            = MalformedError("location is invalid")
	LotCannotAcceptBids          = StateError("lot cannot accept bids")
	LotCannotBeClosed            = StateError("lot cannot be closed in current state")
	LotCannotBeExecuted          = StateError("lot cannot be executed")
	LotCannotBeExtended          = StateError("lot period cannot be extended in current state")
	LotDescriptionIsInvalid      = MalformedError("lot description is too long")
	LotNameIsInvalid             = MalformedError("lot name is invalid")
	LotNotFound                  = NotFoundError("lot not found")
	LotNotPurchasable            = StateError("lot cannot be acquired")
	LotPeriodIsInvalid           = MalformedError("lot opening time must be before closing time")
	LotStatusIsInvalid           = MalformedError("lot status is invalid")
	MemberIdentityIsInvalid      = MalformedError("member identity is invalid")
	MissingParameters            = MissingError("missing parameters")
	MissingRequestorSignature    = SignatureError("requestor signature is missing")
	MissingReservoir             = ProcessError("reservoir is not running")
	MissingSignedAttachment      = MissingError("signed attachment is required")
	NoPublishedBids              = StateError("lot has no published bids")
	NotAContractParty            = AuthorizationError("requestor is not a contract party")
	NotALotOwner                 = AuthorizationError("requestor is not the lot rights-holder")
	NotARightsHolder             = AuthorizationError("requestor does not hold sufficient rights")
	NotATransactionPack          = MalformedError("not a transaction pack")
	NotHighestBidder             = AuthorizationError("requestor is not the winning bidder")
	NotInitialised               = ProcessError("not initialised")
	NotTheDocumentOwner          = AuthorizationError("requestor does not own the document")
	ObjectAlreadyRegistered      = ExistsError("object already registered")
	ObjectIdentityIsInvalid      = MalformedError("object identity is invalid")
	ObjectNotFound               = NotFoundError("object not found")
	ObjectsNotSellable           = MalformedError("conditions contain objects that cannot be sold")
	ParticipantAlreadyRegistered = ExistsError("participant already registered")
	PartyCannotBuy               = AuthorizationError("buyer cannot take part in this contract type")
	PartyCannotSell              = AuthorizationError("seller cannot take part in this contract type")
	PriceIsZero                  = MalformedError("price must be greater than zero")
	RateLimiting                 = ProcessError("rate limiting")
	ReplayDiverged               = InconsistencyError("replayed transaction failed")
	SaleTypeIsInvalid            = MalformedError("sale type is invalid")
	SellerIsBuyer                = AuthorizationError("buyer and seller must differ")
	TermExceedsRights            = AuthorizationError("contract term exceeds rights duration")
	TermIsInvalid                = MalformedError("term is invalid")
	TrademarkRequired            = MalformedError("concession agreement requires a trademark")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotFound          = NotFoundError("transaction not found")
	TransactionNotInUse          = ProcessError("transaction not in use")
	TransactionTypeIsInvalid     = MalformedError("transaction type is invalid")
	UnknownRequestor             = AuthorizationError("requestor is not a registered participant")
	WrongContractState           = StateError("operation not valid in current contract state")
	WrongLotState                = StateError("operation not valid in current lot state")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ConflictError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InconsistencyError) Error() string { return string(e) }
func (e MalformedError) Error() string     { return string(e) }
func (e MissingError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e SignatureError) Error() string     { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { var t AuthorizationError; return errors.As(e, &t) }
func IsErrConflict(e error) bool      { var t ConflictError; return errors.As(e, &t) }
func IsErrExists(e error) bool        { var t ExistsError; return errors.As(e, &t) }
func IsErrInconsistency(e error) bool { var t InconsistencyError; return errors.As(e, &t) }
func IsErrMalformed(e error) bool     { var t MalformedError; return errors.As(e, &t) }
func IsErrMissing(e error) bool       { var t MissingError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool      { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool       { var t ProcessError; return errors.As(e, &t) }
func IsErrSignature(e error) bool     { var t SignatureError; return errors.As(e, &t) }
func IsErrState(e error) bool         { var t StateError; return errors.As(e, &t) }

// DetailError - a fault with additional context, the wrapped fault
// still decides the class
type DetailError struct {
	err    error
	detail string
}

// Detailf - attach a formatted detail message to a fault
func Detailf(err error, format string, arguments ...interface{}) error {
	if nil == err {
		return nil
	}
	return &DetailError{
		err:    err,
		detail: fmt.Sprintf(format, arguments...),
	}
}

func (e *DetailError) Error() string {
	return e.err.Error() + ": " + e.detail
}

// Unwrap - the underlying fault
func (e *DetailError) Unwrap() error {
	return e.err
}

// Messages - the list of human readable strings for an error, the
// fault itself first followed by any detail
func Messages(err error) []string {
	if nil == err {
		return nil
	}
	details := []string{}
	base := err
	for e := err; nil != e; e = errors.Unwrap(e) {
		d, ok := e.(*DetailError)
		if !ok {
			base = e
			break
		}
		details = append(details, d.detail)
	}
	messages := []string{base.Error()}
	for i := len(details) - 1; i >= 0; i -= 1 {
		messages = append(messages, details[i])
	}
	return messages
}
