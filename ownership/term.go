// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Specification - how a contract term is bounded
type Specification uint8

// term specifications, values are part of the wire format
const (
	SpecificationFor     Specification = 1
	SpecificationTo      Specification = 2
	SpecificationUntil   Specification = 3
	SpecificationForever Specification = 4
)

var specificationNames = map[Specification]string{
	SpecificationFor:     "for",
	SpecificationTo:      "to",
	SpecificationUntil:   "until",
	SpecificationForever: "forever",
}

func (s Specification) String() string {
	if name, ok := specificationNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - specifications travel as their names
func (s Specification) MarshalText() ([]byte, error) {
	if _, ok := specificationNames[s]; !ok {
		return nil, fault.TermIsInvalid
	}
	return []byte(s.String()), nil
}

// UnmarshalText - convert a name back to the code
func (s *Specification) UnmarshalText(text []byte) error {
	for code, name := range specificationNames {
		if name == string(text) {
			*s = code
			return nil
		}
	}
	return fault.Detailf(fault.TermIsInvalid, "specification: %q", text)
}

// Duration - "months:days"
type Duration struct {
	Months uint16
	Days   uint16
}

// ParseDuration - decode the text form
func ParseDuration(s string) (Duration, error) {
	parts := strings.Split(s, ":")
	if 2 != len(parts) {
		return Duration{}, fault.Detailf(fault.TermIsInvalid, "duration: %q", s)
	}
	months, err := strconv.ParseUint(parts[0], 10, 16)
	if nil != err {
		return Duration{}, fault.Detailf(fault.TermIsInvalid, "duration: %q", s)
	}
	days, err := strconv.ParseUint(parts[1], 10, 16)
	if nil != err {
		return Duration{}, fault.Detailf(fault.TermIsInvalid, "duration: %q", s)
	}
	return Duration{Months: uint16(months), Days: uint16(days)}, nil
}

func (d Duration) String() string {
	return strconv.Itoa(int(d.Months)) + ":" + strconv.Itoa(int(d.Days))
}

// MarshalText - durations travel in their text form
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - parse the text form
func (d *Duration) UnmarshalText(s []byte) error {
	p, err := ParseDuration(string(s))
	if nil != err {
		return err
	}
	*d = p
	return nil
}

// Term - the period for which rights are transferred
type Term struct {
	Specification Specification `json:"specification"`
	Duration      *Duration     `json:"duration,omitempty"`
	Date          *time.Time    `json:"date,omitempty"`
}

// Validate - each specification needs its own bound
func (t Term) Validate() error {
	switch t.Specification {
	case SpecificationFor:
		if nil == t.Duration {
			return fault.Detailf(fault.TermIsInvalid, "for: missing duration")
		}
	case SpecificationTo, SpecificationUntil:
		if nil == t.Date {
			return fault.Detailf(fault.TermIsInvalid, "%s: missing date", t.Specification)
		}
	case SpecificationForever:
	default:
		return fault.Detailf(fault.TermIsInvalid, "specification: %d", t.Specification)
	}
	return nil
}
