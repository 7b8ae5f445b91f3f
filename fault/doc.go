// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error sentinels and their kinds
//
// every rejection is one of the sentinels here, possibly wrapped with
// detail by Detailf; KindOf maps it onto the category returned to
// the submitter
package fault
