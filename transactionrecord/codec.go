// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/ipledgerd/fault"
	"github.com/bitmark-inc/ipledgerd/member"
	"github.com/bitmark-inc/ipledgerd/merkle"
	"github.com/bitmark-inc/ipledgerd/object"
	"github.com/bitmark-inc/ipledgerd/util"
)

// maximum length of any variable length field
const maxFieldLength = 1 << 20

// codec - walks the fields of a record in wire order, the same
// walk both packs and unpacks
type codec interface {
	u64(v *uint64)
	u8(v *uint8)
	flag(v *bool)
	text(v *string)
	blob(v *[]byte)
	digest(v *merkle.Digest)
	digests(v *[]merkle.Digest)
	identity(v *member.Identity)
	identities(v *[]member.Identity)
	objectId(v *object.Identity)
	timestamp(v *time.Time)
	structure(v interface{})
}

// packer - appends each field as Varint64 or length prefixed bytes
type packer struct {
	buffer Packed
}

func (p *packer) u64(v *uint64) {
	p.buffer = append(p.buffer, util.ToVarint64(*v)...)
}

func (p *packer) u8(v *uint8) {
	p.buffer = append(p.buffer, util.ToVarint64(uint64(*v))...)
}

func (p *packer) flag(v *bool) {
	b := uint64(0)
	if *v {
		b = 1
	}
	p.u64(&b)
}

func (p *packer) blob(v *[]byte) {
	p.buffer = append(p.buffer, util.ToVarint64(uint64(len(*v)))...)
	p.buffer = append(p.buffer, *v...)
}

func (p *packer) text(v *string) {
	b := []byte(*v)
	p.blob(&b)
}

func (p *packer) digest(v *merkle.Digest) {
	b := v[:]
	p.blob(&b)
}

func (p *packer) digests(v *[]merkle.Digest) {
	count := uint64(len(*v))
	p.u64(&count)
	for i := range *v {
		p.digest(&(*v)[i])
	}
}

func (p *packer) identity(v *member.Identity) {
	s := v.String()
	p.text(&s)
}

func (p *packer) identities(v *[]member.Identity) {
	count := uint64(len(*v))
	p.u64(&count)
	for i := range *v {
		p.identity(&(*v)[i])
	}
}

func (p *packer) objectId(v *object.Identity) {
	s := v.String()
	p.text(&s)
}

func (p *packer) timestamp(v *time.Time) {
	s := v.UTC().Format(time.RFC3339Nano)
	p.text(&s)
}

// nested structures use their JSON form so field order is fixed by
// the struct definitions
func (p *packer) structure(v interface{}) {
	b, err := json.Marshal(v)
	if nil != err {
		panic(err)
	}
	p.blob(&b)
}

// unpacker - reads fields back, any failure panics and is recovered
// by Unpack
type unpacker struct {
	buffer []byte
	n      int
}

func (u *unpacker) u64(v *uint64) {
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		panic(fault.NotATransactionPack)
	}
	u.n += count
	*v = value
}

func (u *unpacker) u8(v *uint8) {
	value := uint64(0)
	u.u64(&value)
	if value > 0xff {
		panic(fault.NotATransactionPack)
	}
	*v = uint8(value)
}

func (u *unpacker) flag(v *bool) {
	value := uint64(0)
	u.u64(&value)
	switch value {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		panic(fault.NotATransactionPack)
	}
}

func (u *unpacker) take() []byte {
	length := uint64(0)
	u.u64(&length)
	if length > maxFieldLength || int(length) > len(u.buffer)-u.n {
		panic(fault.NotATransactionPack)
	}
	b := make([]byte, length)
	copy(b, u.buffer[u.n:u.n+int(length)])
	u.n += int(length)
	return b
}

func (u *unpacker) blob(v *[]byte) {
	*v = u.take()
}

func (u *unpacker) text(v *string) {
	*v = string(u.take())
}

func (u *unpacker) digest(v *merkle.Digest) {
	if err := merkle.DigestFromBytes(v, u.take()); nil != err {
		panic(err)
	}
}

func (u *unpacker) count() int {
	count := uint64(0)
	u.u64(&count)
	// every element needs at least one byte
	if count > uint64(len(u.buffer)-u.n) {
		panic(fault.NotATransactionPack)
	}
	return int(count)
}

// empty lists unpack as nil to match an unset field
func (u *unpacker) digests(v *[]merkle.Digest) {
	n := u.count()
	if 0 == n {
		*v = nil
		return
	}
	list := make([]merkle.Digest, n)
	for i := range list {
		u.digest(&list[i])
	}
	*v = list
}

func (u *unpacker) identity(v *member.Identity) {
	m, err := member.Parse(string(u.take()))
	if nil != err {
		panic(err)
	}
	*v = m
}

func (u *unpacker) identities(v *[]member.Identity) {
	n := u.count()
	if 0 == n {
		*v = nil
		return
	}
	list := make([]member.Identity, n)
	for i := range list {
		u.identity(&list[i])
	}
	*v = list
}

func (u *unpacker) objectId(v *object.Identity) {
	o, err := object.Parse(string(u.take()))
	if nil != err {
		panic(err)
	}
	*v = o
}

func (u *unpacker) timestamp(v *time.Time) {
	t, err := time.Parse(time.RFC3339Nano, string(u.take()))
	if nil != err {
		panic(fault.NotATransactionPack)
	}
	*v = t.UTC()
}

func (u *unpacker) structure(v interface{}) {
	if err := json.Unmarshal(u.take(), v); nil != err {
		panic(fault.Detailf(fault.NotATransactionPack, "%s", err))
	}
}

// Pack - validate then pack Varint64(tag) followed by the fields
func pack(t Transaction) (Packed, error) {
	if err := t.Validate(); nil != err {
		return nil, err
	}
	p := &packer{buffer: util.ToVarint64(uint64(t.Tag()))}
	t.fields(p)
	return p.buffer, nil
}

// Unpack - turn a byte slice into a validated record
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *transactionrecord.OpenLot:
func (record Packed) Unpack() (t Transaction, e error) {
	defer func() {
		if r := recover(); nil != r {
			t = nil
			if err, ok := r.(error); ok && fault.IsErrMalformed(err) {
				e = err
			} else {
				e = fault.NotATransactionPack
			}
		}
	}()

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.NotATransactionPack
	}
	t, ok := New(TagType(recordType))
	if !ok {
		return nil, fault.Detailf(fault.TransactionTypeIsInvalid, "tag: %d", recordType)
	}

	u := &unpacker{buffer: record, n: n}
	t.fields(u)
	if u.n != len(record) {
		return nil, fault.Detailf(fault.NotATransactionPack, "%d trailing bytes", len(record)-u.n)
	}
	if err := t.Validate(); nil != err {
		return nil, err
	}
	return t, nil
}
