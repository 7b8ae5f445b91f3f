// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/ownership"
)

type rightsEntry struct {
	rights     ownership.Rights
	structured bool
}

type testRights map[object.Identity]rightsEntry

func (r testRights) Rights(holder member.Identity, obj object.Identity) (ownership.Rights, bool, error) {
	e, ok := r[obj]
	if !ok {
		return ownership.Rights{}, false, fault.ObjectNotFound
	}
	return e.rights, e.structured, nil
}

func forever(obj object.Identity) ownership.ObjectOwnership {
	return ownership.ObjectOwnership{
		Object:        obj,
		ContractTerm:  ownership.Term{Specification: ownership.SpecificationForever},
		CanDistribute: ownership.DistributionUnable,
	}
}

func resultOf(checks []ownership.Check, key ownership.CheckKey) (ownership.CheckResult, bool) {
	for _, c := range checks {
		if c.Key == key {
			return c.Info.Result, true
		}
	}
	return 0, false
}

func TestConditionsCheck(t *testing.T) {
	appellation, _ := object.Parse("appellation_of_origin::12")
	custom, _ := ownership.ParseLocation("a field")

	plain := ownership.Conditions{
		ContractType: ownership.ContractLicense,
		Objects:      []ownership.ObjectOwnership{forever(invention)},
	}
	checks := plain.Check()
	r, _ := resultOf(checks, ownership.CheckLocationValid)
	assert.Equal(t, ownership.ResultOk, r)
	r, _ = resultOf(checks, ownership.CheckObjectsSellable)
	assert.Equal(t, ownership.ResultOk, r)
	_, ok := resultOf(checks, ownership.CheckContainsTrademark)
	assert.False(t, ok, "trademark check only for concessions")
	assert.Nil(t, ownership.FirstError(checks))

	freeText := forever(invention)
	freeText.Locations = []ownership.Location{custom}
	dup := ownership.Conditions{
		ContractType: ownership.ContractLicense,
		Objects:      []ownership.ObjectOwnership{freeText, forever(invention)},
	}
	checks = dup.Check()
	r, _ = resultOf(checks, ownership.CheckLocationValid)
	assert.Equal(t, ownership.ResultUnknown, r)
	r, _ = resultOf(checks, ownership.CheckObjectDuplicates)
	assert.Equal(t, ownership.ResultError, r)
	assert.True(t, fault.IsErrMalformed(ownership.FirstError(checks)))

	unsellable := ownership.Conditions{
		ContractType: ownership.ContractLicense,
		Objects:      []ownership.ObjectOwnership{forever(appellation)},
	}
	assert.Equal(t, fault.ObjectsNotSellable, unwrap(ownership.FirstError(unsellable.Check())))

	concession := ownership.Conditions{
		ContractType: ownership.ContractConcessionAgreement,
		Objects:      []ownership.ObjectOwnership{forever(invention)},
	}
	assert.Equal(t, fault.TrademarkRequired, unwrap(ownership.FirstError(concession.Check())))
}

func unwrap(err error) error {
	for {
		d, ok := err.(*fault.DetailError)
		if !ok {
			return err
		}
		err = d.Unwrap()
	}
}

func TestConditionsParties(t *testing.T) {
	concession := ownership.Conditions{
		ContractType: ownership.ContractConcessionAgreement,
		Objects:      []ownership.ObjectOwnership{forever(trademark)},
	}
	assert.Equal(t, ownership.ResultError, concession.CheckSeller(person).Info.Result)
	assert.Equal(t, ownership.ResultOk, concession.CheckSeller(company).Info.Result)
	assert.Equal(t, ownership.ResultError, concession.CheckBuyer(person).Info.Result)

	expropriation := ownership.Conditions{
		ContractType: ownership.ContractExpropriation,
		Objects:      []ownership.ObjectOwnership{forever(trademark)},
	}
	assert.Equal(t, ownership.ResultError, expropriation.CheckBuyer(person).Info.Result)
	assert.Equal(t, ownership.ResultOk, expropriation.CheckBuyer(company).Info.Result)
	assert.Equal(t, ownership.ResultOk, expropriation.CheckSeller(person).Info.Result)

	err := ownership.FirstError([]ownership.Check{expropriation.CheckBuyer(person)})
	assert.True(t, fault.IsErrAuthorization(err))
}

func TestConditionsCheckRights(t *testing.T) {
	owned := ownership.Ownership{
		Rightholder:  company,
		Distribution: ownership.DistributionAble,
		StartingTime: at("2020-01-01T00:00:00Z"),
	}.Rights()
	nothing := ownership.Ownership{
		Rightholder:  company,
		ContractType: ownership.ContractLicense,
		Distribution: ownership.DistributionUnable,
	}.Rights()

	source := testRights{
		invention: {owned, true},
		trademark: {ownership.Rights{}, false},
		program:   {nothing, true},
	}

	c := ownership.Conditions{
		ContractType: ownership.ContractLicense,
		Objects:      []ownership.ObjectOwnership{forever(invention)},
	}
	checks, err := c.CheckRights(source, company)
	assert.Nil(t, err)
	r, _ := resultOf(checks, ownership.CheckDurationValid)
	assert.Equal(t, ownership.ResultOk, r)
	r, _ = resultOf(checks, ownership.CheckNoUnstructuredData)
	assert.Equal(t, ownership.ResultOk, r)

	c.Objects = append(c.Objects, forever(trademark))
	checks, err = c.CheckRights(source, company)
	assert.Nil(t, err)
	r, _ = resultOf(checks, ownership.CheckNoUnstructuredData)
	assert.Equal(t, ownership.ResultUnknown, r)

	c.Objects = []ownership.ObjectOwnership{forever(program)}
	_, err = c.CheckRights(source, company)
	assert.True(t, fault.IsErrAuthorization(err))

	gone, _ := object.Parse("database::77")
	c.Objects = []ownership.ObjectOwnership{forever(gone)}
	_, err = c.CheckRights(source, company)
	assert.True(t, fault.IsErrNotFound(err))
}

func TestChecksMerge(t *testing.T) {
	checks := ownership.Checks{}
	checks.Merge([]ownership.Check{ownership.CheckBlacklist.Unknown()})
	checks.Merge([]ownership.Check{ownership.CheckBlacklist.Ok()})
	assert.Equal(t, ownership.ResultOk, checks[ownership.CheckBlacklist].Result)
	assert.Equal(t, 1, len(checks))

	buffer, err := json.Marshal(checks)
	assert.Nil(t, err)
	decoded := ownership.Checks{}
	assert.Nil(t, json.Unmarshal(buffer, &decoded))
	assert.Equal(t, checks, decoded)
}

func TestCheckBuilder(t *testing.T) {
	b := ownership.CheckDurationValid.Builder()
	assert.Equal(t, ownership.ResultOk, b.Finish().Info.Result)
	b.And(ownership.ResultUnknown).And(ownership.ResultOk)
	assert.Equal(t, ownership.ResultUnknown, b.Finish().Info.Result)
	b.And(ownership.ResultError).And(ownership.ResultUnknown)
	assert.Equal(t, ownership.ResultError, b.Finish().Info.Result)

	assert.True(t, ownership.CheckBlacklist.IsExternal())
	assert.False(t, ownership.CheckCanSell.IsExternal())
	assert.False(t, ownership.CheckKey(40000).IsExternal())
}
