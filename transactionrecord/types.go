// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bitmark-inc/ipledgerd/account"
	"github.com/bitmark-inc/ipledgerd/currency"
	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
)

// byte sizes for various fields
const (
	maxLotNameLength        = 256
	maxLotDescriptionLength = 10240
	maxFileNameLength       = 256
	maxNodeNameLength       = 256
	maxReasonLength         = 4096
	maxSignatureLength      = 8192
)

// SaleType - how a lot is sold
type SaleType uint8

// sale types
const (
	Auction     SaleType = 1
	PrivateSale SaleType = 2
)

var saleTypeNames = map[SaleType]string{
	Auction:     "auction",
	PrivateSale: "private_sale",
}

func (s SaleType) String() string {
	if name, ok := saleTypeNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - sale types travel as names
func (s SaleType) MarshalText() ([]byte, error) {
	if _, ok := saleTypeNames[s]; !ok {
		return nil, fault.SaleTypeIsInvalid
	}
	return []byte(s.String()), nil
}

// UnmarshalText - convert a name to a sale type
func (s *SaleType) UnmarshalText(text []byte) error {
	for code, name := range saleTypeNames {
		if name == string(text) {
			*s = code
			return nil
		}
	}
	return fault.Detailf(fault.SaleTypeIsInvalid, "%q", text)
}

// LotStatus - stored and derived states of a lot
type LotStatus uint8

// lot states, values are part of the wire format
const (
	LotNew       LotStatus = 0
	LotRejected  LotStatus = 1
	LotVerified  LotStatus = 2
	LotCompleted LotStatus = 3
	LotExecuted  LotStatus = 4
	LotClosed    LotStatus = 5
	LotUndefined LotStatus = 255
)

var lotStatusNames = map[LotStatus]string{
	LotNew:       "new",
	LotRejected:  "rejected",
	LotVerified:  "verified",
	LotCompleted: "completed",
	LotExecuted:  "executed",
	LotClosed:    "closed",
	LotUndefined: "undefined",
}

// IsValid - a known status
func (s LotStatus) IsValid() bool {
	_, ok := lotStatusNames[s]
	return ok
}

func (s LotStatus) String() string {
	if name, ok := lotStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - statuses travel as names
func (s LotStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fault.LotStatusIsInvalid
	}
	return []byte(s.String()), nil
}

// UnmarshalText - convert a name to a status
func (s *LotStatus) UnmarshalText(text []byte) error {
	for code, name := range lotStatusNames {
		if name == string(text) {
			*s = code
			return nil
		}
	}
	return fault.Detailf(fault.LotStatusIsInvalid, "%q", text)
}

// LotOffer - what the seller puts up for sale
type LotOffer struct {
	Name        string        `json:"name"`
	Description string        `json:"desc"`
	Price       currency.Cost `json:"price"`
	SaleType    SaleType      `json:"sale_type"`
	OpeningTime time.Time     `json:"opening_time"`
	ClosingTime time.Time     `json:"closing_time"`
}

// Validate - name, description, sale type and period
func (l LotOffer) Validate() error {
	n := utf8.RuneCountInString(l.Name)
	if 0 == n {
		return fault.Detailf(fault.EmptyField, "name")
	}
	if n > maxLotNameLength {
		return fault.LotNameIsInvalid
	}
	if utf8.RuneCountInString(l.Description) > maxLotDescriptionLength {
		return fault.LotDescriptionIsInvalid
	}
	if _, ok := saleTypeNames[l.SaleType]; !ok {
		return fault.Detailf(fault.SaleTypeIsInvalid, "%d", l.SaleType)
	}
	if PrivateSale == l.SaleType && 0 == l.Price {
		return fault.PriceIsZero
	}
	if !l.OpeningTime.Before(l.ClosingTime) {
		return fault.Detailf(fault.LotPeriodIsInvalid, "%s >= %s", l.OpeningTime.Format(time.RFC3339), l.ClosingTime.Format(time.RFC3339))
	}
	return nil
}

// AttachmentType - the role of a document
type AttachmentType uint8

// attachment types
const (
	OtherAttachment       AttachmentType = 0
	DeedAttachment        AttachmentType = 1
	ApplicationAttachment AttachmentType = 2
)

var attachmentTypeNames = map[AttachmentType]string{
	OtherAttachment:       "other",
	DeedAttachment:        "deed",
	ApplicationAttachment: "application",
}

func (a AttachmentType) String() string {
	if name, ok := attachmentTypeNames[a]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - attachment types travel as names
func (a AttachmentType) MarshalText() ([]byte, error) {
	if _, ok := attachmentTypeNames[a]; !ok {
		return nil, fault.AttachmentTypeIsInvalid
	}
	return []byte(a.String()), nil
}

// UnmarshalText - convert a name to an attachment type
func (a *AttachmentType) UnmarshalText(text []byte) error {
	for code, name := range attachmentTypeNames {
		if name == string(text) {
			*a = code
			return nil
		}
	}
	return fault.Detailf(fault.AttachmentTypeIsInvalid, "%q", text)
}

// Attachment - document metadata, the bytes are held off ledger and
// referenced by their SHA3-256 hash
type Attachment struct {
	Name        string         `json:"name"`
	Description string         `json:"desc"`
	FileType    AttachmentType `json:"file_type"`
	Hash        merkle.Digest  `json:"hash"`
}

// Validate - file name rules and a content reference
func (a Attachment) Validate() error {
	if err := ValidFileName(a.Name); nil != err {
		return err
	}
	if _, ok := attachmentTypeNames[a.FileType]; !ok {
		return fault.Detailf(fault.AttachmentTypeIsInvalid, "%d", a.FileType)
	}
	if a.Hash.IsZero() {
		return fault.Detailf(fault.EmptyField, "hash")
	}
	return nil
}

// ValidFileName - non empty, bounded, no NUL, colon or slash
func ValidFileName(name string) error {
	n := utf8.RuneCountInString(name)
	if 0 == n {
		return fault.Detailf(fault.EmptyField, "file name")
	}
	if n > maxFileNameLength || strings.ContainsAny(name, "\x00:/") {
		return fault.Detailf(fault.AttachmentNameIsInvalid, "%q", name)
	}
	return nil
}

// SignedAttachment - a document issued with the signature of its
// issuer over the content hash
type SignedAttachment struct {
	File      Attachment        `json:"file"`
	Signer    member.Identity   `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Validate - the file and a signature from a valid member
func (s SignedAttachment) Validate() error {
	if err := s.File.Validate(); nil != err {
		return err
	}
	if !s.Signer.IsValid() {
		return fault.Detailf(fault.MemberIdentityIsInvalid, "signer: %s", s.Signer)
	}
	return validSignature("signature", s.Signature)
}

func validSignature(name string, s account.Signature) error {
	if 0 == len(s) {
		return fault.Detailf(fault.EmptyField, "%s", name)
	}
	if len(s) > maxSignatureLength {
		return fault.Detailf(fault.InvalidSignature, "%s: too long", name)
	}
	return nil
}
