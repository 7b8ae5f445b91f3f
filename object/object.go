// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package object

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Class - kind of intellectual property
type Class uint8

// object classes, values are part of the wire format
const (
	Undefined                 Class = 0
	Trademark                 Class = 1
	WellknownTrademark        Class = 2
	AppellationOfOrigin       Class = 3
	AppellationOfOriginRights Class = 4
	Pharmaceutical            Class = 5
	Invention                 Class = 6
	UtilityModel              Class = 7
	IndustrialModel           Class = 8
	Tims                      Class = 9
	Program                   Class = 10
	Database                  Class = 11
	GeographicalIndication    Class = 12
)

const (
	separator            = "::"
	maxRegNumberLength   = 20
	maxNumericSequence  = 255
	appellationSeparator = "/"
)

var classNames = []string{
	Undefined:                 "undefined",
	Trademark:                 "trademark",
	WellknownTrademark:        "wellknown_trademark",
	AppellationOfOrigin:       "appellation_of_origin",
	AppellationOfOriginRights: "appellation_of_origin_rights",
	Pharmaceutical:            "pharmaceutical",
	Invention:                 "invention",
	UtilityModel:              "utility_model",
	IndustrialModel:           "industrial_model",
	Tims:                      "tims",
	Program:                   "program",
	Database:                  "database",
	GeographicalIndication:    "geographical_indication",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// ClassFromString - decode a class name
func ClassFromString(s string) (Class, bool) {
	for i, name := range classNames {
		if name == s {
			return Class(i), true
		}
	}
	return Undefined, false
}

// Identity - a registered object, written as "class::reg_number"
type Identity struct {
	Class     Class
	RegNumber string
}

// New - create and validate an identity
func New(class Class, regNumber string) (Identity, error) {
	o := Identity{Class: class, RegNumber: regNumber}
	if !o.IsValid() {
		return Identity{}, fault.Detailf(fault.ObjectIdentityIsInvalid, "%q", o.String())
	}
	return o, nil
}

// Parse - decode the text form
func Parse(s string) (Identity, error) {
	n := strings.Index(s, separator)
	if n < 0 {
		return Identity{}, fault.Detailf(fault.ObjectIdentityIsInvalid, "%q", s)
	}
	class, ok := ClassFromString(s[:n])
	if !ok {
		return Identity{}, fault.Detailf(fault.ObjectIdentityIsInvalid, "%q", s)
	}
	return New(class, s[n+len(separator):])
}

func (o Identity) String() string {
	return o.Class.String() + separator + o.RegNumber
}

// IsValid - check class and registration number format
func (o Identity) IsValid() bool {
	switch o.Class {
	case Undefined:
		return false
	case AppellationOfOrigin:
		return validAppellation(o.RegNumber)
	case AppellationOfOriginRights:
		parts := strings.Split(o.RegNumber, appellationSeparator)
		return 2 == len(parts) && validAppellation(parts[0]) && numeric(parts[1])
	default:
		if int(o.Class) >= len(classNames) {
			return false
		}
		return validRegNumber(o.RegNumber)
	}
}

// IsSellable - appellations and geographical indications cannot be
// transferred
func (o Identity) IsSellable() bool {
	switch o.Class {
	case AppellationOfOrigin, AppellationOfOriginRights, GeographicalIndication:
		return false
	default:
		return true
	}
}

// IsTrademark - plain trademark only
func (o Identity) IsTrademark() bool {
	return Trademark == o.Class
}

// MarshalText - identities travel in their text form
func (o Identity) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText - parse and validate the text form
func (o *Identity) UnmarshalText(s []byte) error {
	p, err := Parse(string(s))
	if nil != err {
		return err
	}
	*o = p
	return nil
}

func validRegNumber(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > maxRegNumberLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= 'а' && c <= 'я':
		case c >= 'А' && c <= 'Я':
		case 'ё' == c, 'Ё' == c, '-' == c, '_' == c:
		default:
			return false
		}
	}
	return true
}

func numeric(s string) bool {
	if 0 == len(s) || len(s) > maxNumericSequence {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validAppellation(s string) bool {
	return "0" != s && numeric(s)
}
