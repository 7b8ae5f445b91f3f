// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ipledgerd/fault"
)

// Cost - an amount in hundredths of the currency unit
type Cost uint64

// digits, optionally followed by a point or comma and up to two digits
var costPattern = regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)

// ParseCost - convert "123", "123.4" or "123.45" to hundredths
func ParseCost(s string) (Cost, error) {
	if !costPattern.MatchString(s) {
		return 0, fault.Detailf(fault.AmountIsInvalid, "%q", s)
	}

	whole := s
	fraction := "00"
	if n := len(s) - 2; n > 0 && !isDigit(s[n]) {
		whole, fraction = s[:n], s[n+1:]+"0"
	} else if n := len(s) - 3; n > 0 && !isDigit(s[n]) {
		whole, fraction = s[:n], s[n+1:]
	}

	units, err := strconv.ParseUint(whole, 10, 64)
	if nil != err {
		return 0, fault.Detailf(fault.AmountIsInvalid, "%q", s)
	}
	cents, err := strconv.ParseUint(fraction, 10, 64)
	if nil != err {
		return 0, fault.Detailf(fault.AmountIsInvalid, "%q", s)
	}
	if units > (^uint64(0)-cents)/100 {
		return 0, fault.Detailf(fault.AmountIsInvalid, "%q: overflow", s)
	}
	return Cost(units*100 + cents), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String - always two fraction digits
func (c Cost) String() string {
	cents := strconv.FormatUint(uint64(c)%100, 10)
	return strconv.FormatUint(uint64(c)/100, 10) + "." + strings.Repeat("0", 2-len(cents)) + cents
}
