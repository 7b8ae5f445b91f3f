// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
)

var (
	ErrMalformedOne     = fault.MalformedError("malformed one")
	ErrMissingOne       = fault.MissingError("missing one")
	ErrAuthorizationOne = fault.AuthorizationError("authorization one")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrStateOne         = fault.StateError("state one")
	ErrSignatureOne     = fault.SignatureError("signature one")
	ErrConflictOne      = fault.ConflictError("conflict one")
	ErrExistsOne        = fault.ExistsError("exists one")
	ErrInconsistentOne  = fault.InconsistencyError("inconsistent one")
	ErrProcessOne       = fault.ProcessError("process one")
)

// test that each class of error maps to exactly one kind
func TestKindOf(t *testing.T) {
	errorList := []struct {
		err  error
		kind fault.Kind
	}{
		{nil, fault.KindNone},
		{ErrMalformedOne, fault.KindMalformedInput},
		{ErrMissingOne, fault.KindMissingOrEmptyField},
		{ErrAuthorizationOne, fault.KindAuthorizationDenied},
		{ErrNotFoundOne, fault.KindReferenceNotFound},
		{ErrStateOne, fault.KindInvalidStateTransition},
		{ErrSignatureOne, fault.KindSignatureVerificationFailed},
		{ErrConflictOne, fault.KindDuplicateOrConflictingBid},
		{ErrExistsOne, fault.KindDuplicateOrConflictingBid},
		{ErrInconsistentOne, fault.KindInternalInconsistency},
		{ErrProcessOne, fault.KindInternal},
		{fault.Detailf(ErrStateOne, "lot: %d", 7), fault.KindInvalidStateTransition},
	}

	for i, e := range errorList {
		assert.Equal(t, e.kind, fault.KindOf(e.err), "%d: wrong kind for: %v", i, e.err)
	}
}

func TestIsErr(t *testing.T) {
	errorList := []struct {
		err       error
		malformed bool
		notFound  bool
		state     bool
		conflict  bool
	}{
		{ErrMalformedOne, true, false, false, false},
		{ErrNotFoundOne, false, true, false, false},
		{ErrStateOne, false, false, true, false},
		{ErrConflictOne, false, false, false, true},
		{fault.Detailf(ErrNotFoundOne, "x"), false, true, false, false},
	}

	for i, e := range errorList {
		assert.Equal(t, e.malformed, fault.IsErrMalformed(e.err), "%d: malformed", i)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(e.err), "%d: not found", i)
		assert.Equal(t, e.state, fault.IsErrState(e.err), "%d: state", i)
		assert.Equal(t, e.conflict, fault.IsErrConflict(e.err), "%d: conflict", i)
	}
}

func TestMessages(t *testing.T) {
	err := fault.Detailf(fault.Detailf(fault.LotNotFound, "lot: abc"), "while closing")
	assert.Equal(t, []string{"lot not found", "lot: abc", "while closing"}, fault.Messages(err))
	assert.Equal(t, "lot not found: lot: abc: while closing", err.Error())
	assert.Nil(t, fault.Messages(nil))
	assert.Nil(t, fault.Detailf(nil, "ignored"))
}

func TestRecoverable(t *testing.T) {
	assert.True(t, fault.KindOf(fault.LotNotFound).Recoverable())
	assert.False(t, fault.KindOf(fault.CorruptRecord).Recoverable())
}
