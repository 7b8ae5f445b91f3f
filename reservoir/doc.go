// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - the single writer in front of the ledger:
// 1. validates submitted transactions and applies each one atomically
//    to the log and the derived registry, document, lot and contract
//    state
// 2. rebuilds the derived state from the log after a reindex
// 3. answers queries from the latest committed state
package reservoir
