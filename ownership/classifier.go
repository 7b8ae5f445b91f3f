// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"strings"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Registry - classification scheme of a classifier
type Registry uint8

// classifier registries, values are part of the wire format
const (
	RegistryAll  Registry = 0 // unrestricted, carries no value
	RegistryMktu Registry = 1
	RegistryMpk  Registry = 2
	RegistrySpk  Registry = 3
	RegistryMkpo Registry = 4
)

const separator = "::"

var registryNames = []string{
	RegistryAll:  "all",
	RegistryMktu: "mktu",
	RegistryMpk:  "mpk",
	RegistrySpk:  "spk",
	RegistryMkpo: "mkpo",
}

func (r Registry) String() string {
	if int(r) < len(registryNames) {
		return registryNames[r]
	}
	return "unknown"
}

// Classifier - "registry::value[::description]"
type Classifier struct {
	Registry    Registry
	Value       string
	Description string
}

// ParseClassifier - decode the text form
func ParseClassifier(s string) (Classifier, error) {
	parts := strings.Split(s, separator)
	r := -1
	for i, name := range registryNames {
		if name == parts[0] {
			r = i
			break
		}
	}
	if r < 0 {
		return Classifier{}, fault.Detailf(fault.ClassifierIsInvalid, "%q", s)
	}

	c := Classifier{Registry: Registry(r)}
	switch {
	case RegistryAll == c.Registry && 1 == len(parts):
	case RegistryAll != c.Registry && 2 == len(parts):
		c.Value = parts[1]
	case RegistryAll != c.Registry && 3 == len(parts):
		c.Value = parts[1]
		c.Description = parts[2]
	default:
		return Classifier{}, fault.Detailf(fault.ClassifierIsInvalid, "%q", s)
	}
	if err := c.Validate(); nil != err {
		return Classifier{}, fault.Detailf(err, "%q", s)
	}
	return c, nil
}

// Validate - only the "all" registry may omit the value
func (c Classifier) Validate() error {
	if int(c.Registry) >= len(registryNames) {
		return fault.ClassifierIsInvalid
	}
	if (RegistryAll == c.Registry) != ("" == c.Value) {
		return fault.ClassifierIsInvalid
	}
	return nil
}

func (c Classifier) String() string {
	if RegistryAll == c.Registry {
		return c.Registry.String()
	}
	s := c.Registry.String() + separator + c.Value
	if "" != c.Description {
		s += separator + c.Description
	}
	return s
}

// Covers - true if this classifier includes the other
func (c Classifier) Covers(other Classifier) bool {
	if RegistryAll == c.Registry {
		return true
	}
	return c.Registry == other.Registry && c.Value == other.Value
}

// MarshalText - classifiers travel in their text form
func (c Classifier) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - parse and validate the text form
func (c *Classifier) UnmarshalText(s []byte) error {
	p, err := ParseClassifier(string(s))
	if nil != err {
		return err
	}
	*c = p
	return nil
}

// classifiersCover - an empty grant covers everything
func classifiersCover(granted []Classifier, requested []Classifier) bool {
	if 0 == len(granted) {
		return true
	}
	if 0 == len(requested) {
		requested = []Classifier{{Registry: RegistryAll}}
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
