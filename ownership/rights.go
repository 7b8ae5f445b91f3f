// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"time"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/object"
)

// Distribution - whether a right holder may pass rights on
type Distribution uint8

// distribution values, part of the wire format
const (
	DistributionAble                  Distribution = 1
	DistributionWithWrittenPermission Distribution = 2
	DistributionUnable                Distribution = 3
)

var distributionNames = map[Distribution]string{
	DistributionAble:                  "able",
	DistributionWithWrittenPermission: "with_written_permission",
	DistributionUnable:                "unable",
}

func (d Distribution) String() string {
	if name, ok := distributionNames[d]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - distributions travel as their names
func (d Distribution) MarshalText() ([]byte, error) {
	if _, ok := distributionNames[d]; !ok {
		return nil, fault.DistributionIsInvalid
	}
	return []byte(d.String()), nil
}

// UnmarshalText - convert a name back to the code
func (d *Distribution) UnmarshalText(text []byte) error {
	for code, name := range distributionNames {
		if name == string(text) {
			*d = code
			return nil
		}
	}
	return fault.Detailf(fault.DistributionIsInvalid, "%q", text)
}

// Ownership - one structured ownership entry of an object
type Ownership struct {
	Rightholder    member.Identity `json:"rightholder"`
	ContractType   ContractType    `json:"contract_type"`
	Exclusive      bool            `json:"exclusive"`
	Distribution   Distribution    `json:"distribution"`
	Locations      []Location      `json:"location"`
	Classifiers    []Classifier    `json:"classifiers"`
	StartingTime   time.Time       `json:"starting_time"`
	ExpirationTime *time.Time      `json:"expiration_time,omitempty"`
}

// Unstructured - ownership information the data source could not parse
type Unstructured struct {
	Data        string           `json:"data"`
	Rightholder *member.Identity `json:"rightholder,omitempty"`
	Exclusive   *bool            `json:"exclusive,omitempty"`
}

// Validate - check all the parts of an entry
func (o Ownership) Validate() error {
	if !o.Rightholder.IsValid() {
		return fault.Detailf(fault.MemberIdentityIsInvalid, "rightholder: %s", o.Rightholder)
	}
	if !o.ContractType.IsValid() {
		return fault.Detailf(fault.ContractTypeIsInvalid, "%d", o.ContractType)
	}
	if _, ok := distributionNames[o.Distribution]; !ok {
		return fault.Detailf(fault.DistributionIsInvalid, "%d", o.Distribution)
	}
	for _, l := range o.Locations {
		if err := l.Validate(); nil != err {
			return fault.Detailf(err, "%s", l)
		}
	}
	for _, c := range o.Classifiers {
		if err := c.Validate(); nil != err {
			return fault.Detailf(err, "%s", c)
		}
	}
	if nil != o.ExpirationTime && !o.ExpirationTime.After(o.StartingTime) {
		return fault.Detailf(fault.TermIsInvalid, "expiration before start")
	}
	return nil
}

// Flag - bits summarising a holder's position
type Flag uint16

// rights flags
const (
	FlagExclusive             Flag = 1
	FlagCanDistribute         Flag = 8
	FlagWithWrittenPermission Flag = 16
	FlagOwner                 Flag = 128
)

// Rights - what a member may do with an object
type Rights struct {
	Flags          Flag
	ContractType   ContractType
	Locations      []Location
	Classifiers    []Classifier
	StartingTime   time.Time
	ExpirationTime *time.Time
}

// Rights - summarise an ownership entry
func (o Ownership) Rights() Rights {
	flags := Flag(0)
	if o.Exclusive {
		flags |= FlagExclusive
	}
	if ContractUndefined == o.ContractType {
		flags |= FlagOwner
	}
	switch o.Distribution {
	case DistributionAble:
		flags |= FlagCanDistribute
	case DistributionWithWrittenPermission:
		flags |= FlagWithWrittenPermission
	}
	return Rights{
		Flags:          flags,
		ContractType:   o.ContractType,
		Locations:      o.Locations,
		Classifiers:    o.Classifiers,
		StartingTime:   o.StartingTime,
		ExpirationTime: o.ExpirationTime,
	}
}

// RightsOf - the rights a member derives from a list of entries, the
// latest entry for the member wins
func RightsOf(entries []Ownership, holder member.Identity) (Rights, bool) {
	for i := len(entries) - 1; i >= 0; i -= 1 {
		if entries[i].Rightholder == holder {
			return entries[i].Rights(), true
		}
	}
	return Rights{}, false
}

func (r Rights) has(f Flag) bool { return f == r.Flags&f }

// IsOwner - holds the original right
func (r Rights) IsOwner() bool { return r.has(FlagOwner) }

// IsExclusive - holds an exclusive right
func (r Rights) IsExclusive() bool { return r.has(FlagExclusive) }

// CanDistribute - may pass the right on without permission
func (r Rights) CanDistribute() bool { return r.has(FlagCanDistribute) }

// Sufficient - may offer the requested terms to someone else
func (r Rights) Sufficient(requested ObjectOwnership) bool {
	if !r.IsOwner() && !r.IsExclusive() && !r.CanDistribute() {
		return false
	}
	if requested.Exclusive && !r.IsOwner() && !r.IsExclusive() {
		return false
	}
	return locationsCover(r.Locations, requested.Locations) &&
		classifiersCover(r.Classifiers, requested.Classifiers)
}

// default protection periods per object class
const year = 365 * 24 * time.Hour

var defaultDurations = map[object.Class]time.Duration{
	object.Invention:       20 * year,
	object.UtilityModel:    10 * year,
	object.IndustrialModel: 5 * year,
	object.Tims:            10 * year,
	object.Database:        15 * year,
}

// CheckTerm - compare a requested term against the expiry of the rights
//
// returns 1 when the term fits, -1 when it runs past expiry and 0
// when it cannot be decided automatically
func (r Rights) CheckTerm(obj object.Identity, term Term) (CheckResult, error) {
	switch obj.Class {
	case object.Trademark, object.WellknownTrademark, object.AppellationOfOrigin,
		object.AppellationOfOriginRights, object.GeographicalIndication:
		return ResultOk, nil
	case object.Program, object.Pharmaceutical:
		return ResultUnknown, nil
	}
	defaultDuration, ok := defaultDurations[obj.Class]
	if !ok {
		return ResultUnknown, fault.Detailf(fault.ObjectIdentityIsInvalid, "%s", obj)
	}

	expiration := r.StartingTime.Add(defaultDuration)
	if nil != r.ExpirationTime {
		expiration = *r.ExpirationTime
	}

	switch term.Specification {
	case SpecificationFor:
		return ResultUnknown, nil
	case SpecificationTo, SpecificationUntil:
		if nil == term.Date {
			return ResultUnknown, fault.Detailf(fault.TermIsInvalid, "%s: missing date", term.Specification)
		}
		if term.Date.After(expiration) {
			return ResultError, nil
		}
		return ResultOk, nil
	case SpecificationForever:
		return ResultOk, nil
	default:
		return ResultUnknown, fault.Detailf(fault.TermIsInvalid, "specification: %d", term.Specification)
	}
}
