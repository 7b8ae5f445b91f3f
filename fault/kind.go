// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Kind - categorical rejection reason reported with every failed submission
type Kind int

// rejection kinds
const (
	KindNone Kind = iota
	KindMalformedInput
	KindMissingOrEmptyField
	KindAuthorizationDenied
	KindReferenceNotFound
	KindInvalidStateTransition
	KindSignatureVerificationFailed
	KindDuplicateOrConflictingBid
	KindInternalInconsistency
	KindInternal
)

var kindNames = map[Kind]string{
	KindNone:                        "None",
	KindMalformedInput:              "MalformedInput",
	KindMissingOrEmptyField:         "MissingOrEmptyField",
	KindAuthorizationDenied:         "AuthorizationDenied",
	KindReferenceNotFound:           "ReferenceNotFound",
	KindInvalidStateTransition:      "InvalidStateTransition",
	KindSignatureVerificationFailed: "SignatureVerificationFailed",
	KindDuplicateOrConflictingBid:   "DuplicateOrConflictingBid",
	KindInternalInconsistency:       "InternalInconsistency",
	KindInternal:                    "Internal",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// MarshalText - kinds travel as their names
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - unknown names read as KindInternal
func (k *Kind) UnmarshalText(s []byte) error {
	for kind, name := range kindNames {
		if name == string(s) {
			*k = kind
			return nil
		}
	}
	*k = KindInternal
	return nil
}

// Recoverable - false only for faults that must halt derivation
func (k Kind) Recoverable() bool {
	return KindInternalInconsistency != k
}

// KindOf - classify an error
//
// exists errors count as conflicts since they reject a second
// submission of something already recorded
func KindOf(err error) Kind {
	switch {
	case nil == err:
		return KindNone
	case IsErrMalformed(err):
		return KindMalformedInput
	case IsErrMissing(err):
		return KindMissingOrEmptyField
	case IsErrAuthorization(err):
		return KindAuthorizationDenied
	case IsErrNotFound(err):
		return KindReferenceNotFound
	case IsErrState(err):
		return KindInvalidStateTransition
	case IsErrSignature(err):
		return KindSignatureVerificationFailed
	case IsErrConflict(err), IsErrExists(err):
		return KindDuplicateOrConflictingBid
	case IsErrInconsistency(err):
		return KindInternalInconsistency
	default:
		return KindInternal
	}
}
