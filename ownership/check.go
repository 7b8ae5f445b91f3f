// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"strconv"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// CheckKey - identifies one automated or external check
type CheckKey uint16

// internal checks are computed by the node, external ones are
// submitted by the private interface
const (
	CheckDocumentsMatchCondition CheckKey = 0
	CheckCanSell                 CheckKey = 1
	CheckCanBuy                  CheckKey = 2
	CheckLocationValid           CheckKey = 3
	CheckObjectDuplicates        CheckKey = 4
	CheckObjectsSellable         CheckKey = 5
	CheckContainsTrademark       CheckKey = 6
	CheckNoUnstructuredData      CheckKey = 7

	CheckTaxPaymentInfoAdded      CheckKey = 32768
	CheckBlacklist                CheckKey = 32769
	CheckSellerDataValid          CheckKey = 32770
	CheckDurationValid            CheckKey = 32771
	CheckUsecasesMatch            CheckKey = 32772
	CheckRegisteredChanges        CheckKey = 32773
	CheckPublicExpropriationOffer CheckKey = 32774

	firstExternalCheck = CheckTaxPaymentInfoAdded
)

var checkKeyNames = map[CheckKey]string{
	CheckDocumentsMatchCondition:  "documents_match_condition",
	CheckCanSell:                  "can_sell",
	CheckCanBuy:                   "can_buy",
	CheckLocationValid:            "location_valid",
	CheckObjectDuplicates:         "object_duplicates",
	CheckObjectsSellable:          "objects_sellable",
	CheckContainsTrademark:        "contains_trademark",
	CheckNoUnstructuredData:       "no_unstructured_data",
	CheckTaxPaymentInfoAdded:      "tax_payment_info_added",
	CheckBlacklist:                "blacklist",
	CheckSellerDataValid:          "seller_data_valid",
	CheckDurationValid:            "duration_valid",
	CheckUsecasesMatch:            "usecases_match",
	CheckRegisteredChanges:        "registered_changes",
	CheckPublicExpropriationOffer: "public_expropriation_offer",
}

// IsValid - a known key
func (k CheckKey) IsValid() bool {
	_, ok := checkKeyNames[k]
	return ok
}

// IsExternal - may be submitted through SubmitChecks
func (k CheckKey) IsExternal() bool {
	return k >= firstExternalCheck && k.IsValid()
}

func (k CheckKey) String() string {
	if name, ok := checkKeyNames[k]; ok {
		return name
	}
	return "check_" + strconv.Itoa(int(k))
}

// MarshalText - keys travel as names so they can be JSON map keys
func (k CheckKey) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fault.CheckKeyIsInvalid
	}
	return []byte(k.String()), nil
}

// UnmarshalText - convert a name back to the key
func (k *CheckKey) UnmarshalText(text []byte) error {
	for key, name := range checkKeyNames {
		if name == string(text) {
			*k = key
			return nil
		}
	}
	return fault.Detailf(fault.CheckKeyIsInvalid, "%q", text)
}

// CheckResult - -1 failed, 0 unknown, 1 passed
type CheckResult int8

// check results
const (
	ResultError   CheckResult = -1
	ResultUnknown CheckResult = 0
	ResultOk      CheckResult = 1
)

// IsValid - one of the three results
func (r CheckResult) IsValid() bool {
	return r >= ResultError && r <= ResultOk
}

// CheckInfo - the outcome of a check with a human readable note
type CheckInfo struct {
	Result      CheckResult `json:"result"`
	Description string      `json:"description"`
}

// IsError - the check failed
func (i CheckInfo) IsError() bool {
	return i.Result < ResultUnknown
}

// Check - a keyed check outcome
type Check struct {
	Key  CheckKey  `json:"key"`
	Info CheckInfo `json:"info"`
}

var okDescriptions = map[CheckKey]string{
	CheckDocumentsMatchCondition: "document set matches the contract conditions",
	CheckCanSell:                 "seller may take part in this contract type",
	CheckCanBuy:                  "buyer may take part in this contract type",
	CheckLocationValid:           "territory is given by registry code",
	CheckObjectDuplicates:        "no object appears twice",
	CheckObjectsSellable:         "all objects may be transferred",
	CheckContainsTrademark:       "a trademark is included",
	CheckNoUnstructuredData:      "all ownership information is structured",
	CheckTaxPaymentInfoAdded:     "fee payment confirmed",
	CheckDurationValid:           "term ends before the exclusive right expires",
	CheckBlacklist:               "no active blacklist entries",
}

var errorDescriptions = map[CheckKey]string{
	CheckCanSell:             "seller may not take part in this contract type",
	CheckCanBuy:              "buyer may not take part in this contract type",
	CheckObjectDuplicates:    "an object appears more than once",
	CheckObjectsSellable:     "some objects may not be transferred",
	CheckContainsTrademark:   "no trademark is included",
	CheckTaxPaymentInfoAdded: "fee payment not confirmed",
	CheckDurationValid:       "term runs past the expiry of the exclusive right",
}

var unknownDescriptions = map[CheckKey]string{
	CheckDocumentsMatchCondition: "document set not yet compared with the conditions",
	CheckNoUnstructuredData:      "unstructured ownership information needs manual review",
	CheckLocationValid:           "free text territory",
	CheckBlacklist:               "active blacklist entries present",
}

// Ok - a passing check
func (k CheckKey) Ok() Check {
	return Check{Key: k, Info: CheckInfo{Result: ResultOk, Description: okDescriptions[k]}}
}

// Error - a failing check
func (k CheckKey) Error() Check {
	return Check{Key: k, Info: CheckInfo{Result: ResultError, Description: errorDescriptions[k]}}
}

// Unknown - a check that could not be decided
func (k CheckKey) Unknown() Check {
	return Check{Key: k, Info: CheckInfo{Result: ResultUnknown, Description: unknownDescriptions[k]}}
}

// WithResult - the canonical check for a result
func (k CheckKey) WithResult(r CheckResult) Check {
	switch {
	case r < ResultUnknown:
		return k.Error()
	case r > ResultUnknown:
		return k.Ok()
	default:
		return k.Unknown()
	}
}

// Builder - start a chain that keeps the worst result
func (k CheckKey) Builder() *CheckBuilder {
	return &CheckBuilder{key: k, result: ResultOk}
}

// CheckBuilder - accumulates results keeping the worst
type CheckBuilder struct {
	key    CheckKey
	result CheckResult
}

// And - fold in another result
func (b *CheckBuilder) And(r CheckResult) *CheckBuilder {
	if r < b.result {
		b.result = r
	}
	return b
}

// Finish - the accumulated check
func (b *CheckBuilder) Finish() Check {
	return b.key.WithResult(b.result)
}

// FirstError - the first failing check, if any, as a fault
//
// rights and party checks are authorization failures, the rest
// describe malformed conditions
func FirstError(checks []Check) error {
	for _, c := range checks {
		if !c.Info.IsError() {
			continue
		}
		switch c.Key {
		case CheckCanSell:
			return fault.Detailf(fault.PartyCannotSell, "%s", c.Info.Description)
		case CheckCanBuy:
			return fault.Detailf(fault.PartyCannotBuy, "%s", c.Info.Description)
		case CheckDurationValid:
			return fault.Detailf(fault.TermExceedsRights, "%s", c.Info.Description)
		case CheckObjectDuplicates:
			return fault.Detailf(fault.DuplicateObjects, "%s", c.Info.Description)
		case CheckObjectsSellable:
			return fault.Detailf(fault.ObjectsNotSellable, "%s", c.Info.Description)
		case CheckContainsTrademark:
			return fault.Detailf(fault.TrademarkRequired, "%s", c.Info.Description)
		default:
			return fault.Detailf(fault.CheckFailed, "%s: %s", c.Key, c.Info.Description)
		}
	}
	return nil
}

// Checks - a set of check outcomes, last write per key wins
type Checks map[CheckKey]CheckInfo

// Merge - record each check over any earlier one for the same key
func (cs Checks) Merge(checks []Check) {
	for _, c := range checks {
		cs[c.Key] = c.Info
	}
}

// NewChecks - a check set from a list
func NewChecks(checks []Check) Checks {
	cs := make(Checks, len(checks))
	cs.Merge(checks)
	return cs
}
