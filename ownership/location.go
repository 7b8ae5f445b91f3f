// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// LocationRegistry - how a territory is described
type LocationRegistry uint8

// location registries, values are part of the wire format
const (
	LocationUndefined     LocationRegistry = 0
	LocationOktmo         LocationRegistry = 1
	LocationOktmoExtended LocationRegistry = 2
	LocationCustom        LocationRegistry = 128
)

const oktmoPrefix = "oktmo" + separator

// Location - "oktmo::code", "oktmo::code::text" or free text
type Location struct {
	Registry    LocationRegistry
	Code        uint64
	Description string
}

// ParseLocation - decode the text form
//
// anything not starting with the oktmo prefix is a custom name
func ParseLocation(s string) (Location, error) {
	if "" == s {
		return Location{}, fault.Detailf(fault.LocationIsInvalid, "empty location")
	}
	if !strings.HasPrefix(s, oktmoPrefix) {
		return Location{Registry: LocationCustom, Description: s}, nil
	}

	rest := s[len(oktmoPrefix):]
	code := rest
	description := ""
	extended := false
	if n := strings.Index(rest, separator); n >= 0 {
		code = rest[:n]
		description = rest[n+len(separator):]
		extended = true
	}
	value, err := strconv.ParseUint(code, 10, 64)
	if nil != err {
		return Location{}, fault.Detailf(fault.LocationIsInvalid, "%q", s)
	}
	if !extended {
		return Location{Registry: LocationOktmo, Code: value}, nil
	}
	l := Location{Registry: LocationOktmoExtended, Code: value, Description: description}
	if err := l.Validate(); nil != err {
		return Location{}, fault.Detailf(err, "%q", s)
	}
	return l, nil
}

// Validate - registry must be known and named forms need their text
func (l Location) Validate() error {
	switch l.Registry {
	case LocationOktmo:
		return nil
	case LocationOktmoExtended, LocationCustom:
		if "" == l.Description {
			return fault.LocationIsInvalid
		}
		return nil
	default:
		return fault.LocationIsInvalid
	}
}

// IsOktmo - any form carrying an OKTMO code
func (l Location) IsOktmo() bool {
	return LocationOktmo == l.Registry || LocationOktmoExtended == l.Registry
}

// IsCustom - free text territory
func (l Location) IsCustom() bool {
	return LocationCustom == l.Registry
}

func (l Location) String() string {
	switch l.Registry {
	case LocationOktmo:
		return oktmoPrefix + strconv.FormatUint(l.Code, 10)
	case LocationOktmoExtended:
		return oktmoPrefix + strconv.FormatUint(l.Code, 10) + separator + l.Description
	default:
		return l.Description
	}
}

// Covers - true if this territory includes the other
//
// OKTMO codes are hierarchical so coverage is a prefix match on the
// decimal code; code zero is the whole country; free text cannot be
// compared automatically and is accepted against free text
func (l Location) Covers(other Location) bool {
	switch {
	case l.IsOktmo() && 0 == l.Code:
		return true
	case l.IsOktmo() && other.IsOktmo():
		return strings.HasPrefix(strconv.FormatUint(other.Code, 10), strconv.FormatUint(l.Code, 10))
	case l.IsCustom() && other.IsCustom():
		return true
	default:
		return false
	}
}

// MarshalText - locations travel in their text form
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText - parse and validate the text form
func (l *Location) UnmarshalText(s []byte) error {
	p, err := ParseLocation(string(s))
	if nil != err {
		return err
	}
	*l = p
	return nil
}

// locationsCover - an empty grant covers everything
func locationsCover(granted []Location, requested []Location) bool {
	if 0 == len(granted) {
		return true
	}
	if 0 == len(requested) {
		requested = []Location{{Registry: LocationOktmo}}
	}
next_request:
	for _, r := range requested {
		for _, g := range granted {
			if g.Covers(r) {
				continue next_request
			}
		}
		return false
	}
	return true
}
