// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/object"
)

// ContractType - the legal form of a rights transfer
type ContractType uint8

// contract types, values are part of the wire format
const (
	ContractUndefined              ContractType = 0
	ContractLicense                ContractType = 1
	ContractSublicense             ContractType = 2
	ContractConcessionAgreement    ContractType = 4
	ContractSubconcessionAgreement ContractType = 8
	ContractExpropriation          ContractType = 16
)

var contractTypeNames = map[ContractType]string{
	ContractUndefined:              "undefined",
	ContractLicense:                "license",
	ContractSublicense:             "sublicense",
	ContractConcessionAgreement:    "concession_agreement",
	ContractSubconcessionAgreement: "subconcession_agreement",
	ContractExpropriation:          "expropriation",
}

// IsValid - known contract type
func (c ContractType) IsValid() bool {
	_, ok := contractTypeNames[c]
	return ok
}

func (c ContractType) String() string {
	if name, ok := contractTypeNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - contract types travel as their names
func (c ContractType) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fault.ContractTypeIsInvalid
	}
	return []byte(c.String()), nil
}

// UnmarshalText - convert a name back to the code
func (c *ContractType) UnmarshalText(text []byte) error {
	for code, name := range contractTypeNames {
		if name == string(text) {
			*c = code
			return nil
		}
	}
	return fault.Detailf(fault.ContractTypeIsInvalid, "%q", text)
}

// ObjectOwnership - the terms offered for one object
type ObjectOwnership struct {
	Object        object.Identity `json:"object"`
	ContractTerm  Term            `json:"contract_term"`
	Exclusive     bool            `json:"exclusive"`
	CanDistribute Distribution    `json:"can_distribute"`
	Locations     []Location      `json:"location"`
	Classifiers   []Classifier    `json:"classifiers"`
}

// Validate - check all the parts of the offered terms
func (o ObjectOwnership) Validate() error {
	if !o.Object.IsValid() {
		return fault.Detailf(fault.ObjectIdentityIsInvalid, "%s", o.Object)
	}
	if err := o.ContractTerm.Validate(); nil != err {
		return fault.Detailf(err, "object: %s", o.Object)
	}
	if _, ok := distributionNames[o.CanDistribute]; !ok {
		return fault.Detailf(fault.DistributionIsInvalid, "object: %s", o.Object)
	}
	for _, l := range o.Locations {
		if err := l.Validate(); nil != err {
			return fault.Detailf(err, "object: %s", o.Object)
		}
	}
	for _, c := range o.Classifiers {
		if err := c.Validate(); nil != err {
			return fault.Detailf(err, "object: %s", o.Object)
		}
	}
	return nil
}

func (o ObjectOwnership) allLocationsOktmo() bool {
	for _, l := range o.Locations {
		if !l.IsOktmo() {
			return false
		}
	}
	return true
}

// Conditions - the terms of a lot or contract
type Conditions struct {
	ContractType          ContractType      `json:"contract_type"`
	Objects               []ObjectOwnership `json:"objects"`
	PaymentConditions     string            `json:"payment_conditions"`
	PaymentComment        string            `json:"payment_comment"`
	TerminationConditions []string          `json:"termination_conditions"`
	ContractExtras        []string          `json:"contract_extras"`
}

// Validate - structural checks only, business checks are in Check
func (c Conditions) Validate() error {
	if !c.ContractType.IsValid() {
		return fault.Detailf(fault.ContractTypeIsInvalid, "%d", c.ContractType)
	}
	if 0 == len(c.Objects) {
		return fault.EmptyObjectList
	}
	for _, o := range c.Objects {
		if err := o.Validate(); nil != err {
			return err
		}
	}
	return nil
}

// IsConcessionAgreement - either form of concession
func (c Conditions) IsConcessionAgreement() bool {
	return ContractConcessionAgreement == c.ContractType ||
		ContractSubconcessionAgreement == c.ContractType
}

// IsExpropriation - alienation of the exclusive right
func (c Conditions) IsExpropriation() bool {
	return ContractExpropriation == c.ContractType
}

// ContainsTrademark - any object is a trademark
func (c Conditions) ContainsTrademark() bool {
	for _, o := range c.Objects {
		if o.Object.IsTrademark() {
			return true
		}
	}
	return false
}

// ObjectIdentities - the objects in order
func (c Conditions) ObjectIdentities() []object.Identity {
	ids := make([]object.Identity, len(c.Objects))
	for i, o := range c.Objects {
		ids[i] = o.Object
	}
	return ids
}

// Check - the checks that need nothing but the conditions themselves
func (c Conditions) Check() []Check {
	results := []Check{
		c.checkLocations(),
		c.checkDuplicateObjects(),
	}
	if !c.ContainsTrademark() {
		results = append(results, c.checkObjectsSellable())
	}
	if c.IsConcessionAgreement() {
		results = append(results, c.checkContainsTrademark())
	}
	return results
}

// CheckSeller - persons cannot grant a concession
func (c Conditions) CheckSeller(seller member.Identity) Check {
	if c.IsConcessionAgreement() && seller.IsPerson() {
		return CheckCanSell.Error()
	}
	return CheckCanSell.Ok()
}

// CheckBuyer - persons cannot receive a concession or acquire a
// trademark by expropriation
func (c Conditions) CheckBuyer(buyer member.Identity) Check {
	switch {
	case c.IsConcessionAgreement() && buyer.IsPerson():
		return CheckCanBuy.Error()
	case c.IsExpropriation() && c.ContainsTrademark() && buyer.IsPerson():
		return CheckCanBuy.Error()
	default:
		return CheckCanBuy.Ok()
	}
}

// RightsSource - how the checks see an object's recorded ownership
type RightsSource interface {
	Rights(holder member.Identity, obj object.Identity) (rights Rights, structured bool, err error)
}

// CheckRights - the seller must hold sufficient rights for every
// object and the requested terms must fit within them
//
// an object with unstructured ownership cannot be judged, so both
// checks fall to unknown for it
func (c Conditions) CheckRights(source RightsSource, seller member.Identity) ([]Check, error) {
	term := CheckDurationValid.Builder()
	structured := CheckNoUnstructuredData.Builder()

	for _, o := range c.Objects {
		rights, isStructured, err := source.Rights(seller, o.Object)
		if nil != err {
			return nil, err
		}
		if !isStructured {
			term.And(ResultUnknown)
			structured.And(ResultUnknown)
			continue
		}
		if !rights.Sufficient(o) {
			return nil, fault.Detailf(fault.NotARightsHolder, "object: %s", o.Object)
		}
		r, err := rights.CheckTerm(o.Object, o.ContractTerm)
		if nil != err {
			return nil, err
		}
		term.And(r)
		structured.And(ResultOk)
	}
	return []Check{term.Finish(), structured.Finish()}, nil
}

func (c Conditions) checkLocations() Check {
	for _, o := range c.Objects {
		if !o.allLocationsOktmo() {
			return CheckLocationValid.Unknown()
		}
	}
	return CheckLocationValid.Ok()
}

func (c Conditions) checkDuplicateObjects() Check {
	seen := make(map[object.Identity]struct{}, len(c.Objects))
	for _, o := range c.Objects {
		if _, ok := seen[o.Object]; ok {
			return CheckObjectDuplicates.Error()
		}
		seen[o.Object] = struct{}{}
	}
	return CheckObjectDuplicates.Ok()
}

func (c Conditions) checkObjectsSellable() Check {
	for _, o := range c.Objects {
		if !o.Object.IsSellable() {
			return CheckObjectsSellable.Error()
		}
	}
	return CheckObjectsSellable.Ok()
}

func (c Conditions) checkContainsTrademark() Check {
	if c.ContainsTrademark() {
		return CheckContainsTrademark.Ok()
	}
	return CheckContainsTrademark.Error()
}

// Evaluate - every automatic check for a deal, buyer is zero while it
// is not yet known
//
// the first failing check is returned as a fault
func (c Conditions) Evaluate(source RightsSource, seller member.Identity, buyer member.Identity) ([]Check, error) {
	checks := c.Check()
	checks = append(checks, c.CheckSeller(seller))
	if !buyer.IsZero() {
		checks = append(checks, c.CheckBuyer(buyer))
	}
	rights, err := c.CheckRights(source, seller)
	if nil != err {
		return nil, err
	}
	checks = append(checks, rights...)
	if err := FirstError(checks); nil != err {
		return nil, err
	}
	return checks, nil
}
