// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk data store
//
// A single LevelDB database is split into a series of pools.  Each
// pool is defined by a prefix byte obtained from the prefix tag in
// the struct defining the available pools.  Keeping every pool in one
// database lets a single batch commit the log entry together with all
// derived state.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. txId      = transaction digest as 32 byte SHA3-256(packed)
// 4. seq       = log position as big endian uint64 (8 bytes)
// 5. member    = member identity text "type::id"
// 6. object    = object identity text "class::reg_number"
// 7. *records* = JSON encoded derived entities
//
// Log:
//
//   T ++ txId             - accepted transactions
//                           data: seq ++ log entry
//   S ++ seq              - log order
//                           data: txId
//
// Registry:
//
//   P ++ member           - participants
//                           data: participant record
//   O ++ object           - object records
//                           data: object record
//   W ++ member ++ 0x00 ++ object
//                         - objects by owner
//                           data: nil
//   Q ++ member ++ 0x00 ++ txId
//                         - outstanding object requests
//                           data: request tag
//
// Documents:
//
//   F ++ txId             - document records
//                           data: document record
//
// Lots:
//
//   L ++ txId             - lot records
//                           data: lot record
//   M ++ member ++ 0x00 ++ txId
//                         - lots by member (owner or bidder)
//                           data: nil
//   B ++ txId             - bid records
//                           data: bid record
//
// Contracts:
//
//   C ++ txId             - contract records
//                           data: contract record
//   K ++ member ++ 0x00 ++ txId
//                         - contracts by party
//                           data: nil
//   Y ++ payment number   - tax payment numbers in use
//                           data: contract txId
//
// Testing:
//   Z ++ key              - testing data
package storage
