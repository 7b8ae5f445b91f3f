// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package member

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Type - the registry a member identity is drawn from
type Type uint8

// member types, values are part of the wire format
const (
	Ogrn   Type = 0 // legal entity
	Ogrnip Type = 1 // individual entrepreneur
	Snils  Type = 2 // person
)

const separator = "::"

var typeNames = map[Type]string{
	Ogrn:   "ogrn",
	Ogrnip: "ogrnip",
	Snils:  "snils",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Identity - a network member, written as "type::id"
type Identity struct {
	Type   Type
	Number string
}

// New - create and validate an identity
func New(t Type, number string) (Identity, error) {
	m := Identity{Type: t, Number: number}
	if !m.IsValid() {
		return Identity{}, fault.MemberIdentityIsInvalid
	}
	return m, nil
}

// Parse - decode the "type::id" text form
func Parse(s string) (Identity, error) {
	parts := strings.Split(s, separator)
	if 2 != len(parts) {
		return Identity{}, fault.Detailf(fault.MemberIdentityIsInvalid, "%q", s)
	}
	for t, name := range typeNames {
		if name == parts[0] {
			m, err := New(t, parts[1])
			if nil != err {
				return Identity{}, fault.Detailf(err, "%q", s)
			}
			return m, nil
		}
	}
	return Identity{}, fault.Detailf(fault.MemberIdentityIsInvalid, "%q", s)
}

// String - the "type::id" form, also used as a storage key
func (m Identity) String() string {
	return m.Type.String() + separator + m.Number
}

// IsZero - true if unset
func (m Identity) IsZero() bool {
	return "" == m.Number
}

// IsLegalEntity - registered company
func (m Identity) IsLegalEntity() bool {
	return Ogrn == m.Type
}

// IsEntrepreneur - registered sole trader
func (m Identity) IsEntrepreneur() bool {
	return Ogrnip == m.Type
}

// IsPerson - private individual
func (m Identity) IsPerson() bool {
	return Snils == m.Type
}

// IsValid - check the number against the rules for its type
func (m Identity) IsValid() bool {
	switch m.Type {
	case Ogrn:
		return validOgrn(m.Number)
	case Ogrnip:
		return validOgrnip(m.Number)
	case Snils:
		return validSnils(m.Number)
	default:
		return false
	}
}

// MarshalText - identities travel in their text form
func (m Identity) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText - parse and validate the text form
func (m *Identity) UnmarshalText(s []byte) error {
	p, err := Parse(string(s))
	if nil != err {
		return err
	}
	*m = p
	return nil
}

func digits(s string, length int) (uint64, bool) {
	if length != len(s) {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return n, nil == err
}

// 13 digits, leading 1 or 5, check digit is (n/10) mod 11 mod 10
func validOgrn(s string) bool {
	n, ok := digits(s, 13)
	if !ok || ('1' != s[0] && '5' != s[0]) {
		return false
	}
	return n%10 == n/10%11%10
}

// 15 digits, leading 3, check digit is (n/10) mod 13 mod 10
func validOgrnip(s string) bool {
	n, ok := digits(s, 15)
	if !ok || '3' != s[0] {
		return false
	}
	return n%10 == n/10%13%10
}

// 11 digits, last two are the weighted sum of the first nine mod 101 mod 100
func validSnils(s string) bool {
	n, ok := digits(s, 11)
	if !ok {
		return false
	}
	base := n / 100
	control := n % 100
	sum := uint64(0)
	for i := uint64(1); i <= 9; i += 1 {
		sum += base % 10 * i
		base /= 10
	}
	return control == sum%101%100
}
